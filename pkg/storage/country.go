package storage

import (
	"context"
	"directory/pkg/domain"
)

// CountryStorage defines the persistence operations for countries. Listing
// order is the insertion order of the backend.
type CountryStorage interface {
	// StoreCountry inserts a country and returns it as stored. Backends that
	// enforce unique names return an error matching ErrDuplicate on conflict.
	StoreCountry(ctx context.Context, country domain.Country) (*domain.Country, error)
	// Countries returns every stored country.
	Countries(ctx context.Context) ([]domain.Country, error)
	// CountryByID returns the country with the given ID, or nil when not found.
	CountryByID(ctx context.Context, ID domain.CountryID) (*domain.Country, error)
	// CountryCountByName returns how many countries have exactly the given name.
	CountryCountByName(ctx context.Context, name string) (int64, error)
}
