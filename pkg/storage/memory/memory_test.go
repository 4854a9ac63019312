package memory_test

import (
	"context"
	"directory/pkg/domain"
	"directory/pkg/storage"
	"directory/pkg/storage/memory"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemory_Countries(t *testing.T) {
	ctx := context.Background()
	m := memory.New()

	usa := domain.Country{ID: domain.NewCountryID(), Name: "USA"}
	eth := domain.Country{ID: domain.NewCountryID(), Name: "ETH"}
	_, err := m.StoreCountry(ctx, usa)
	require.NoError(t, err)
	_, err = m.StoreCountry(ctx, eth)
	require.NoError(t, err)

	_, err = m.StoreCountry(ctx, domain.Country{ID: domain.NewCountryID(), Name: "USA"})
	require.ErrorIs(t, err, storage.ErrDuplicate)

	all, err := m.Countries(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.Country{usa, eth}, all)

	got, err := m.CountryByID(ctx, eth.ID)
	require.NoError(t, err)
	require.Equal(t, eth, *got)

	got, err = m.CountryByID(ctx, domain.NewCountryID())
	require.NoError(t, err)
	require.Nil(t, got)

	count, err := m.CountryCountByName(ctx, "USA")
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestMemory_Persons(t *testing.T) {
	ctx := context.Background()
	m := memory.New()

	country := domain.Country{ID: domain.NewCountryID(), Name: "Kenya"}
	_, err := m.StoreCountry(ctx, country)
	require.NoError(t, err)

	p1 := domain.Person{ID: domain.NewPersonID(), Name: "One", CountryID: &country.ID}
	p2 := domain.Person{ID: domain.NewPersonID(), Name: "Two"}
	_, err = m.StorePerson(ctx, p1)
	require.NoError(t, err)
	_, err = m.StorePerson(ctx, p2)
	require.NoError(t, err)

	withCountry, err := m.Persons(ctx, true)
	require.NoError(t, err)
	require.Len(t, withCountry, 2)
	require.Equal(t, "Kenya", withCountry[0].Country.Name)
	require.Nil(t, withCountry[1].Country)

	plain, err := m.Persons(ctx, false)
	require.NoError(t, err)
	require.Nil(t, plain[0].Country)

	p1.Name = "Uno"
	require.NoError(t, m.UpdatePerson(ctx, p1))
	got, err := m.PersonByID(ctx, p1.ID)
	require.NoError(t, err)
	require.Equal(t, "Uno", got.Name)
	require.Equal(t, "Kenya", got.Country.Name)

	require.NoError(t, m.DeletePerson(ctx, p1))
	got, err = m.PersonByID(ctx, p1.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	rest, err := m.Persons(ctx, false)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	require.Equal(t, p2.ID, rest[0].ID)
}

func TestMemory_Transactions(t *testing.T) {
	ctx := context.Background()
	m := memory.New()

	require.ErrorIs(t, m.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, m.Rollback(), storage.ErrNotInTx)

	tx, err := m.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.(*memory.Memory).Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	_, err = tx.StoreCountry(ctx, domain.Country{ID: domain.NewCountryID(), Name: "Pending"})
	require.NoError(t, err)
	count, err := m.CountryCountByName(ctx, "Pending")
	require.NoError(t, err)
	require.Zero(t, count)

	require.NoError(t, tx.Commit())
	count, err = m.CountryCountByName(ctx, "Pending")
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	err = m.WithTx(ctx, func(s storage.AllStorage) error {
		_, _ = s.StoreCountry(ctx, domain.Country{ID: domain.NewCountryID(), Name: "Discarded"})

		return errors.New("boom")
	})
	require.Error(t, err)
	count, err = m.CountryCountByName(ctx, "Discarded")
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestMemory_CommitKeepsOutsideWrites(t *testing.T) {
	ctx := context.Background()
	m := memory.New()

	ann := domain.Person{ID: domain.NewPersonID(), Name: "Ann"}
	_, err := m.StorePerson(ctx, ann)
	require.NoError(t, err)

	tx, err := m.Begin(ctx)
	require.NoError(t, err)

	_, err = m.StoreCountry(ctx, domain.Country{ID: domain.NewCountryID(), Name: "Japan"})
	require.NoError(t, err)

	require.NoError(t, tx.DeletePerson(ctx, ann))
	require.NoError(t, tx.Commit())

	countries, err := m.Countries(ctx)
	require.NoError(t, err)
	require.Len(t, countries, 1)

	persons, err := m.Persons(ctx, false)
	require.NoError(t, err)
	require.Empty(t, persons)
}

func TestMemory_CommitConflictLeavesParent(t *testing.T) {
	ctx := context.Background()
	m := memory.New()

	tx, err := m.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.StorePerson(ctx, domain.Person{ID: domain.NewPersonID(), Name: "Ann"})
	require.NoError(t, err)
	_, err = tx.StoreCountry(ctx, domain.Country{ID: domain.NewCountryID(), Name: "Japan"})
	require.NoError(t, err)

	_, err = m.StoreCountry(ctx, domain.Country{ID: domain.NewCountryID(), Name: "Japan"})
	require.NoError(t, err)

	require.ErrorIs(t, tx.Commit(), storage.ErrDuplicate)

	persons, err := m.Persons(ctx, false)
	require.NoError(t, err)
	require.Empty(t, persons)
	count, err := m.CountryCountByName(ctx, "Japan")
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}
