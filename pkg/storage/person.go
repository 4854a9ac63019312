package storage

import (
	"context"
	"directory/pkg/domain"
)

// PersonStorage defines the persistence operations for persons. Listing order
// is the insertion order of the backend.
type PersonStorage interface {
	// StorePerson inserts a person and returns it as stored.
	StorePerson(ctx context.Context, person domain.Person) (*domain.Person, error)
	// Persons returns every stored person. When includeCountry is true, the
	// referenced country (if it exists) is loaded into Person.Country.
	Persons(ctx context.Context, includeCountry bool) ([]domain.Person, error)
	// PersonByID returns the person with the given ID together with its
	// referenced country, or nil when not found.
	PersonByID(ctx context.Context, ID domain.PersonID) (*domain.Person, error)
	// UpdatePerson overwrites every mutable field of the stored person with the
	// same ID.
	UpdatePerson(ctx context.Context, person domain.Person) error
	// DeletePerson removes the stored person with the same ID.
	DeletePerson(ctx context.Context, person domain.Person) error
}
