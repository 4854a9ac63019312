package postgres_test

import (
	"context"
	"directory/pkg/domain"
	"directory/pkg/storage"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreCountry(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	c := domain.Country{ID: domain.NewCountryID(), Name: "Ethiopia"}
	stored, err := pgSQL.StoreCountry(ctx, c)
	require.NoError(t, err)
	require.Equal(t, c, *stored)

	t.Run("duplicate name is rejected by the unique index", func(t *testing.T) {
		_, err := pgSQL.StoreCountry(ctx, domain.Country{ID: domain.NewCountryID(), Name: "Ethiopia"})
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("names are case sensitive", func(t *testing.T) {
		_, err := pgSQL.StoreCountry(ctx, domain.Country{ID: domain.NewCountryID(), Name: "ethiopia"})
		require.NoError(t, err)
	})
}

func TestPgSQL_Countries_InsertionOrder(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	names := []string{"USA", "Canada", "Brazil"}
	for _, name := range names {
		_, err := pgSQL.StoreCountry(ctx, domain.Country{ID: domain.NewCountryID(), Name: name})
		require.NoError(t, err)
	}

	countries, err := pgSQL.Countries(ctx)
	require.NoError(t, err)
	require.Len(t, countries, 3)
	for i, name := range names {
		require.Equal(t, name, countries[i].Name)
	}
}

func TestPgSQL_CountryByIDAndCount(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, err := pgSQL.StoreCountry(ctx, domain.Country{ID: domain.NewCountryID(), Name: "Japan"})
	require.NoError(t, err)

	got, err := pgSQL.CountryByID(ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Japan", got.Name)

	missing, err := pgSQL.CountryByID(ctx, domain.NewCountryID())
	require.NoError(t, err)
	require.Nil(t, missing)

	count, err := pgSQL.CountryCountByName(ctx, "Japan")
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	count, err = pgSQL.CountryCountByName(ctx, "JAPAN")
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}
