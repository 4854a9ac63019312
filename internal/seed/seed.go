// Package seed loads initial countries and persons from JSON documents through
// the country and person services, so seeded records pass the same validation
// as records created over the API.
package seed

import (
	"context"
	"directory/internal/country"
	"directory/internal/person"
	"directory/pkg/domain"
	"directory/pkg/logger"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Person is a seeded person. Country names a seeded country and is resolved
// to its ID; it takes precedence over countryId.
type Person struct {
	person.AddRequest

	Country string `json:"country"`
}

// Result counts the records created by Load.
type Result struct {
	Countries int
	Persons   int
}

// Load creates the countries read from countriesR, skipping names that
// already exist, and then the persons read from personsR. Either reader may
// be nil.
func Load(ctx context.Context,
	countries country.Service,
	persons person.Service,
	countriesR, personsR io.Reader) (Result, error) {
	var res Result

	if countriesR != nil {
		var reqs []country.AddRequest
		if err := json.NewDecoder(countriesR).Decode(&reqs); err != nil {
			return res, fmt.Errorf("could not decode countries: %w", err)
		}

		for i := range reqs {
			_, err := countries.AddCountry(ctx, &reqs[i])
			if errors.Is(err, country.ErrDuplicateName) {
				logger.Debug(ctx, "country already seeded", zap.String("name", reqs[i].Name))

				continue
			}
			if err != nil {
				return res, fmt.Errorf("could not add country %q: %w", reqs[i].Name, err)
			}
			res.Countries++
		}
	}

	if personsR == nil {
		return res, nil
	}

	var seeds []Person
	if err := json.NewDecoder(personsR).Decode(&seeds); err != nil {
		return res, fmt.Errorf("could not decode persons: %w", err)
	}

	all, err := countries.GetAllCountries(ctx)
	if err != nil {
		return res, fmt.Errorf("could not get countries: %w", err)
	}
	byName := make(map[string]domain.CountryID, len(all))
	for _, c := range all {
		byName[c.Name] = c.ID
	}

	for i := range seeds {
		req := seeds[i].AddRequest
		if seeds[i].Country != "" {
			id, ok := byName[seeds[i].Country]
			if !ok {
				logger.Warn(ctx, "unknown seed country", zap.String("country", seeds[i].Country))
			} else {
				req.CountryID = &id
			}
		}

		if _, err := persons.AddPerson(ctx, &req); err != nil {
			return res, fmt.Errorf("could not add person #%d: %w", i, err)
		}
		res.Persons++
	}

	return res, nil
}
