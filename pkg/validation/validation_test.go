package validation_test

import (
	"directory/pkg/serrors"
	"directory/pkg/validation"
	"testing"

	"github.com/stretchr/testify/require"
)

type request struct {
	Name   string `json:"name"   validate:"required"`
	Email  string `json:"email"  validate:"required,email"`
	Born   string `json:"born"   validate:"omitempty,datetime=2006-01-02"`
	Colour string `json:"colour" validate:"omitempty,oneof=Red Blue"`
	Note   string
}

func TestStruct_Valid(t *testing.T) {
	require.NoError(t, validation.Struct(request{Name: "a", Email: "a@b.com"}))
	require.NoError(t, validation.Struct(&request{Name: "a", Email: "a@b.com", Born: "2000-02-29", Colour: "Red"}))
}

func TestStruct_AggregatesMessages(t *testing.T) {
	err := validation.Struct(request{Email: "not-an-email", Born: "2001-02-29", Colour: "Green"})
	require.ErrorIs(t, err, serrors.ErrValidation)
	require.Equal(t, []string{
		"name can't be blank",
		"email should be a proper email address",
		"born should be a valid date (yyyy-MM-dd)",
		"colour should be one of: Red, Blue",
	}, serrors.Messages(err))
}

func TestStruct_RequiredEmail(t *testing.T) {
	err := validation.Struct(request{Name: "a"})
	require.ErrorIs(t, err, serrors.ErrValidation)
	require.Equal(t, []string{"email can't be blank"}, serrors.Messages(err))
}
