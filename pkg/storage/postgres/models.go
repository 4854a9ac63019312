package postgres

import (
	"database/sql"
	"directory/pkg/domain"
	"time"

	"github.com/google/uuid"
)

// PgCountry is the row shape of the countries table.
type PgCountry struct {
	// Seq preserves insertion order; it is assigned by the database.
	Seq  int64     `db:"seq"  goqu:"skipinsert,skipupdate"`
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
}

func (p *PgCountry) ToDomain() *domain.Country {
	return &domain.Country{
		ID:   domain.CountryID(p.ID),
		Name: p.Name,
	}
}

func (p *PgCountry) FromDomain(country domain.Country) {
	*p = PgCountry{
		ID:   uuid.UUID(country.ID),
		Name: country.Name,
	}
}

// PgPerson is the row shape of the persons table.
type PgPerson struct {
	Seq int64     `db:"seq" goqu:"skipinsert,skipupdate"`
	ID  uuid.UUID `db:"id"  goqu:"skipupdate"`

	Name        sql.NullString `db:"name"`
	Email       sql.NullString `db:"email"`
	DateOfBirth sql.NullTime   `db:"date_of_birth"`
	Gender      sql.NullString `db:"gender"`
	Address     sql.NullString `db:"address"`
	CountryID   uuid.NullUUID  `db:"country_id"`

	ReceiveNewsLetters bool `db:"receive_news_letters"`
}

// PgPersonRow is a persons row joined with the name of its country.
type PgPersonRow struct {
	PgPerson

	CountryName sql.NullString `db:"country_name"`
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (p *PgPerson) ToDomain() *domain.Person {
	person := &domain.Person{
		ID:                 domain.PersonID(p.ID),
		Name:               p.Name.String,
		Email:              p.Email.String,
		Gender:             p.Gender.String,
		Address:            p.Address.String,
		ReceiveNewsLetters: p.ReceiveNewsLetters,
	}
	if p.DateOfBirth.Valid {
		dob := time.Date(p.DateOfBirth.Time.Year(), p.DateOfBirth.Time.Month(), p.DateOfBirth.Time.Day(),
			0, 0, 0, 0, time.UTC)
		person.DateOfBirth = &dob
	}
	if p.CountryID.Valid {
		countryID := domain.CountryID(p.CountryID.UUID)
		person.CountryID = &countryID
	}

	return person
}

func (p *PgPerson) FromDomain(person domain.Person) {
	*p = PgPerson{
		ID:                 uuid.UUID(person.ID),
		Name:               nullString(person.Name),
		Email:              nullString(person.Email),
		Gender:             nullString(person.Gender),
		Address:            nullString(person.Address),
		ReceiveNewsLetters: person.ReceiveNewsLetters,
	}
	if person.DateOfBirth != nil {
		p.DateOfBirth = sql.NullTime{Time: *person.DateOfBirth, Valid: true}
	}
	if person.CountryID != nil {
		p.CountryID = uuid.NullUUID{UUID: uuid.UUID(*person.CountryID), Valid: true}
	}
}

// ToDomain converts the joined row. Country is only set when the join found
// the referenced country.
func (r *PgPersonRow) ToDomain() *domain.Person {
	person := r.PgPerson.ToDomain()
	if person.CountryID != nil && r.CountryName.Valid {
		person.Country = &domain.Country{
			ID:   *person.CountryID,
			Name: r.CountryName.String,
		}
	}

	return person
}

func pgPersonRowsToDomain(rows []PgPersonRow) []domain.Person {
	out := make([]domain.Person, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}
