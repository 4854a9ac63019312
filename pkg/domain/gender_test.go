package domain_test

import (
	"directory/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGender(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.Gender
		wantErr bool
	}{
		{in: "Male", want: domain.GenderMale},
		{in: "Female", want: domain.GenderFemale},
		{in: "Other", want: domain.GenderOther},
		{in: "male", wantErr: true},
		{in: "", wantErr: true},
		{in: "Unknown", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseGender(tt.in)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestIDs_IsZero(t *testing.T) {
	require.True(t, domain.PersonID{}.IsZero())
	require.False(t, domain.NewPersonID().IsZero())
	require.True(t, domain.CountryID{}.IsZero())
	require.False(t, domain.NewCountryID().IsZero())
}
