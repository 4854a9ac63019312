package country

import (
	"context"
	"directory/pkg/domain"
)

// AddRequest carries the fields needed to create a country.
type AddRequest struct {
	Name string `json:"name" validate:"required"`
}

//go:generate mockgen -package mockcountry -source=interface.go -destination=mock/mockcountry.go *
type Service interface {
	AddCountry(ctx context.Context, req *AddRequest) (*domain.Country, error)
	GetAllCountries(ctx context.Context) ([]domain.Country, error)
	GetCountryByID(ctx context.Context, ID domain.CountryID) (*domain.Country, error)
}
