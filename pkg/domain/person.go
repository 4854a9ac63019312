package domain

import (
	"time"

	"github.com/google/uuid"
)

// PersonID uniquely identifies a person.
type PersonID uuid.UUID

// NewPersonID generates a new random PersonID.
func NewPersonID() PersonID { return PersonID(uuid.New()) }

// IsZero reports whether id is the zero value, which is treated as "no id".
func (id PersonID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

func (id PersonID) String() string { return uuid.UUID(id).String() }

func (id PersonID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *PersonID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// Person is the stored shape of a person. Derived values such as age or the
// referenced country's name are never part of it.
type Person struct {
	// ID is the unique identifier of the person. It never changes once created.
	ID PersonID

	Name  string
	Email string
	// DateOfBirth is a calendar date (midnight UTC); nil when unknown.
	DateOfBirth *time.Time
	// Gender holds the textual form of a Gender value, or "" when unknown.
	Gender  string
	Address string
	// CountryID references a Country. It is not checked for existence on write.
	CountryID *CountryID

	ReceiveNewsLetters bool

	// Country is filled by storage implementations when the referenced country
	// was loaded together with the person. It is read-only and never written.
	Country *Country
}
