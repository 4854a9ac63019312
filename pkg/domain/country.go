package domain

import "github.com/google/uuid"

// CountryID uniquely identifies a country.
// It wraps uuid.UUID to provide type safety at the domain layer.
type CountryID uuid.UUID

// NewCountryID generates a new random CountryID.
func NewCountryID() CountryID { return CountryID(uuid.New()) }

// IsZero reports whether id is the zero value, which is treated as "no id".
func (id CountryID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

func (id CountryID) String() string { return uuid.UUID(id).String() }

// Country is a named country persons can reference. Names are unique.
type Country struct {
	// ID is the unique identifier of the country. It never changes once created.
	ID CountryID `json:"id"`
	// Name is the unique, non-empty display name of the country.
	Name string `json:"name"`
}

// MarshalText encodes the id in its canonical UUID form.
func (id CountryID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes a UUID string into id.
func (id *CountryID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
