package person

import (
	"directory/pkg/domain"
	"directory/pkg/serrors"
	"directory/pkg/validation"
	"math"
	"time"
)

// View is a person as returned to callers: the stored fields plus the values
// derived at read time.
type View struct {
	ID                 domain.PersonID   `json:"id"`
	Name               string            `json:"name"`
	Email              string            `json:"email"`
	DateOfBirth        *time.Time        `json:"dateOfBirth"`
	Gender             string            `json:"gender"`
	CountryID          *domain.CountryID `json:"countryId"`
	Address            string            `json:"address"`
	ReceiveNewsLetters bool              `json:"receiveNewsLetters"`

	// Age is nil when DateOfBirth is unknown.
	Age *int `json:"age"`
	// Country is the referenced country's name, nil when it can't be resolved.
	Country *string `json:"country"`
}

// Age returns the number of 365.25-day years between dateOfBirth and now,
// rounded half to even.
func Age(dateOfBirth *time.Time, now time.Time) *int {
	if dateOfBirth == nil {
		return nil
	}

	days := now.Sub(*dateOfBirth).Hours() / 24
	age := int(math.RoundToEven(days / 365.25))

	return &age
}

// ToView builds the view of p. countryName is the resolved name of the
// referenced country, if any.
func ToView(p domain.Person, countryName *string, now time.Time) View {
	return View{
		ID:                 p.ID,
		Name:               p.Name,
		Email:              p.Email,
		DateOfBirth:        p.DateOfBirth,
		Gender:             p.Gender,
		CountryID:          p.CountryID,
		Address:            p.Address,
		ReceiveNewsLetters: p.ReceiveNewsLetters,
		Age:                Age(p.DateOfBirth, now),
		Country:            countryName,
	}
}

// ToUpdateRequest converts the view back into an update request carrying the
// same values. It fails when the stored gender text is not a known Gender.
func (v View) ToUpdateRequest() (*UpdateRequest, error) {
	var gender domain.Gender
	if v.Gender != "" {
		g, err := domain.ParseGender(v.Gender)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrValidation, &serrors.ValidationError{
				Messages: []string{err.Error()},
			}, "could not convert person %s", v.ID)
		}
		gender = g
	}

	var dob string
	if v.DateOfBirth != nil {
		dob = v.DateOfBirth.Format(validation.DateLayout)
	}

	return &UpdateRequest{
		ID: v.ID,
		AddRequest: AddRequest{
			Name:               v.Name,
			Email:              v.Email,
			DateOfBirth:        dob,
			Gender:             gender,
			CountryID:          v.CountryID,
			Address:            v.Address,
			ReceiveNewsLetters: v.ReceiveNewsLetters,
		},
	}, nil
}
