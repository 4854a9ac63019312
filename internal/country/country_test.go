package country_test

import (
	"context"
	"directory/internal/country"
	"directory/pkg/domain"
	"directory/pkg/serrors"
	"directory/pkg/storage"
	"directory/pkg/storage/memory"
	"errors"
	"testing"

	mockstorage "directory/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_AddCountry(t *testing.T) {
	ctx := context.Background()
	s := country.New(memory.New())

	added, err := s.AddCountry(ctx, &country.AddRequest{Name: "Japan"})
	require.NoError(t, err)
	require.False(t, added.ID.IsZero())
	require.Equal(t, "Japan", added.Name)

	found, err := s.GetCountryByID(ctx, added.ID)
	require.NoError(t, err)
	require.Equal(t, added, found)

	all, err := s.GetAllCountries(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.Country{*added}, all)
}

func TestService_AddCountry_Invalid(t *testing.T) {
	ctx := context.Background()
	s := country.New(memory.New())

	_, err := s.AddCountry(ctx, nil)
	require.ErrorIs(t, err, serrors.ErrNullRequest)

	_, err = s.AddCountry(ctx, &country.AddRequest{})
	require.ErrorIs(t, err, serrors.ErrValidation)
	require.Equal(t, []string{"name can't be blank"}, serrors.Messages(err))
}

func TestService_AddCountry_DuplicateName(t *testing.T) {
	ctx := context.Background()
	s := country.New(memory.New())

	_, err := s.AddCountry(ctx, &country.AddRequest{Name: "Japan"})
	require.NoError(t, err)

	_, err = s.AddCountry(ctx, &country.AddRequest{Name: "Japan"})
	require.ErrorIs(t, err, serrors.ErrValidation)
	require.ErrorIs(t, err, country.ErrDuplicateName)
	require.Equal(t, []string{`country name "Japan" already exists`}, serrors.Messages(err))

	// matching is exact, so a different case is a different name
	_, err = s.AddCountry(ctx, &country.AddRequest{Name: "japan"})
	require.NoError(t, err)

	all, err := s.GetAllCountries(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestService_AddCountry_LostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := country.New(st)

	st.EXPECT().CountryCountByName(gomock.Any(), "Japan").Return(int64(0), nil)
	st.EXPECT().StoreCountry(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicate)

	_, err := s.AddCountry(context.Background(), &country.AddRequest{Name: "Japan"})
	require.ErrorIs(t, err, country.ErrDuplicateName)
	require.ErrorIs(t, err, serrors.ErrValidation)
}

func TestService_AddCountry_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := country.New(st)

	boom := errors.New("boom")
	st.EXPECT().CountryCountByName(gomock.Any(), "Japan").Return(int64(0), boom)

	_, err := s.AddCountry(context.Background(), &country.AddRequest{Name: "Japan"})
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, serrors.ErrValidation)
}

func TestService_GetCountryByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := country.New(st)
	ctx := context.Background()

	// zero id never reaches storage
	c, err := s.GetCountryByID(ctx, domain.CountryID{})
	require.NoError(t, err)
	require.Nil(t, c)

	id := domain.NewCountryID()
	st.EXPECT().CountryByID(gomock.Any(), id).Return(nil, nil)
	c, err = s.GetCountryByID(ctx, id)
	require.NoError(t, err)
	require.Nil(t, c)
}
