package seed_test

import (
	"context"
	"directory/internal/country"
	"directory/internal/person"
	"directory/internal/seed"
	"directory/pkg/serrors"
	"directory/pkg/storage/memory"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	countriesJSON = `[{"name":"Japan"},{"name":"Peru"},{"name":"Japan"}]`
	personsJSON   = `[
		{"name":"Ann","email":"ann@example.com","dateOfBirth":"1990-04-02","gender":"Female","country":"Peru"},
		{"name":"Bob","email":"bob@example.com","country":"Atlantis","receiveNewsLetters":true}
	]`
)

func newServices() (country.Service, person.Service) {
	st := memory.New()
	countries := country.New(st)

	return countries, person.New(st, countries, person.Options{})
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	countries, persons := newServices()

	res, err := seed.Load(ctx, countries, persons, strings.NewReader(countriesJSON), strings.NewReader(personsJSON))
	require.NoError(t, err)
	require.Equal(t, seed.Result{Countries: 2, Persons: 2}, res)

	all, err := persons.GetAllPersons(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "Peru", *all[0].Country)
	require.Nil(t, all[1].CountryID)
	require.True(t, all[1].ReceiveNewsLetters)

	// seeding again only adds persons
	res, err = seed.Load(ctx, countries, persons, strings.NewReader(countriesJSON), nil)
	require.NoError(t, err)
	require.Equal(t, seed.Result{}, res)
}

func TestLoad_InvalidPerson(t *testing.T) {
	countries, persons := newServices()

	_, err := seed.Load(context.Background(), countries, persons, nil, strings.NewReader(`[{"name":"Ann"}]`))
	require.ErrorIs(t, err, serrors.ErrValidation)
}

func TestLoad_MalformedJSON(t *testing.T) {
	countries, persons := newServices()

	_, err := seed.Load(context.Background(), countries, persons, strings.NewReader(`{`), nil)
	require.Error(t, err)
}
