package country

import (
	"context"
	"directory/pkg/domain"
	"directory/pkg/logger"
	"directory/pkg/serrors"
	"directory/pkg/storage"
	"directory/pkg/validation"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// service is the concrete implementation of the Service interface.
type service struct {
	storage storage.CountryStorage
}

// AddCountry validates the request, rejects names that are already stored and
// persists a new country under a freshly generated ID.
func (s service) AddCountry(ctx context.Context, req *AddRequest) (*domain.Country, error) {
	if req == nil {
		return nil, serrors.With(serrors.ErrNullRequest, "country add request is required")
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	count, err := s.storage.CountryCountByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("could not count countries: %w", err)
	}
	if count > 0 {
		return nil, duplicateName(req.Name)
	}

	// the unique index still catches a concurrent add that passed the count above.
	country, err := s.storage.StoreCountry(ctx, domain.Country{
		ID:   domain.NewCountryID(),
		Name: req.Name,
	})
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, duplicateName(req.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("could not store country: %w", err)
	}

	logger.Info(ctx, "country added", zap.Stringer("country_id", country.ID))

	return country, nil
}

// GetAllCountries returns every country in storage order.
func (s service) GetAllCountries(ctx context.Context) ([]domain.Country, error) {
	countries, err := s.storage.Countries(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get countries: %w", err)
	}

	return countries, nil
}

// GetCountryByID returns nil without an error when the ID is zero or unknown.
func (s service) GetCountryByID(ctx context.Context, ID domain.CountryID) (*domain.Country, error) {
	if ID.IsZero() {
		return nil, nil //nolint: nilnil
	}

	country, err := s.storage.CountryByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get country: %w", err)
	}

	return country, nil
}

// New creates a new Service backed by the provided storage.
func New(storage storage.CountryStorage) Service {
	return &service{storage: storage}
}
