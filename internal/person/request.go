package person

import (
	"directory/pkg/domain"
	"directory/pkg/validation"
	"time"
)

// AddRequest carries the fields of a new person. DateOfBirth uses the
// yyyy-MM-dd layout and may be empty; Gender may be empty.
type AddRequest struct {
	Name               string            `json:"name"               validate:"required"`
	Email              string            `json:"email"              validate:"required,email"`
	DateOfBirth        string            `json:"dateOfBirth"        validate:"omitempty,datetime=2006-01-02"`
	Gender             domain.Gender     `json:"gender"             validate:"omitempty,oneof=Male Female Other"`
	CountryID          *domain.CountryID `json:"countryId"`
	Address            string            `json:"address"`
	ReceiveNewsLetters bool              `json:"receiveNewsLetters"`
}

// UpdateRequest identifies a stored person and carries the new value of every
// mutable field.
type UpdateRequest struct {
	ID domain.PersonID `json:"id"`
	AddRequest
}

// apply overwrites the mutable fields of p. The request must be validated.
func (r *AddRequest) apply(p *domain.Person) {
	p.Name = r.Name
	p.Email = r.Email
	p.DateOfBirth = nil
	if r.DateOfBirth != "" {
		dob, _ := time.Parse(validation.DateLayout, r.DateOfBirth)
		p.DateOfBirth = &dob
	}
	p.Gender = string(r.Gender)
	p.CountryID = nil
	if r.CountryID != nil {
		id := *r.CountryID
		p.CountryID = &id
	}
	p.Address = r.Address
	p.ReceiveNewsLetters = r.ReceiveNewsLetters
	p.Country = nil
}
