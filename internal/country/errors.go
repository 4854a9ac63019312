package country

import (
	"directory/pkg/serrors"
	"fmt"
)

// ErrDuplicateName is matched (together with serrors.ErrValidation) by errors
// returned when adding a country whose name is already taken.
var ErrDuplicateName = serrors.NewKind("DUPLICATE_NAME")

func duplicateName(name string) error {
	cause := serrors.Wrap(ErrDuplicateName, &serrors.ValidationError{
		Messages: []string{fmt.Sprintf("country name %q already exists", name)},
	}, "")

	return serrors.Wrap(serrors.ErrValidation, cause, "validation failed")
}
