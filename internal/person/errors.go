package person

import "directory/pkg/serrors"

// ErrPersonNotFound is matched (together with serrors.ErrValidation) by errors
// returned when updating a person ID that is not stored.
var ErrPersonNotFound = serrors.NewKind("PERSON_NOT_FOUND")
