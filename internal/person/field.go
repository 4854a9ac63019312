package person

import (
	"cmp"
	"directory/pkg/serrors"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Field names a View field that persons can be searched or sorted by.
type Field string

const (
	FieldName               Field = "Name"
	FieldEmail              Field = "Email"
	FieldDateOfBirth        Field = "DateOfBirth"
	FieldAge                Field = "Age"
	FieldGender             Field = "Gender"
	FieldCountry            Field = "Country"
	FieldAddress            Field = "Address"
	FieldReceiveNewsLetters Field = "ReceiveNewsLetters"
)

// fieldAliases maps alternative spellings to their field.
var fieldAliases = map[string]Field{ //nolint: gochecknoglobals
	"PersonName": FieldName,
}

// Fields returns every Field in display order.
func Fields() []Field {
	return []Field{
		FieldName, FieldEmail, FieldDateOfBirth, FieldAge,
		FieldGender, FieldCountry, FieldAddress, FieldReceiveNewsLetters,
	}
}

// ParseField resolves s (case-insensitively) to a Field. The second result is
// false when s names no known field.
func ParseField(s string) (Field, bool) {
	for _, f := range Fields() {
		if strings.EqualFold(string(f), s) {
			return f, true
		}
	}
	for alias, f := range fieldAliases {
		if strings.EqualFold(alias, s) {
			return f, true
		}
	}

	return "", false
}

// SearchField describes a field the listing can be filtered by.
type SearchField struct {
	Field Field  `json:"field"`
	Label string `json:"label"`
}

// SearchFields returns the filterable fields with their display labels.
func SearchFields() []SearchField {
	return []SearchField{
		{Field: FieldName, Label: "Person Name"},
		{Field: FieldEmail, Label: "Email"},
		{Field: FieldDateOfBirth, Label: "Date Of Birth"},
		{Field: FieldGender, Label: "Gender"},
		{Field: FieldAddress, Label: "Address"},
	}
}

// SortOrder is the direction persons are sorted in.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// ParseSortOrder resolves s (case-insensitively) to a SortOrder; empty text
// means SortAsc.
func ParseSortOrder(s string) (SortOrder, error) {
	switch {
	case s == "", strings.EqualFold(s, string(SortAsc)):
		return SortAsc, nil
	case strings.EqualFold(s, string(SortDesc)):
		return SortDesc, nil
	default:
		return "", serrors.With(serrors.ErrBadRequest, "unknown sort order %q", s)
	}
}

// fold returns the caseless form of s. A cases.Caser keeps state, so one is
// created per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

// compareIgnoreCase orders a and b by their upper-cased forms, so "aZ" sorts
// before "a_".
func compareIgnoreCase(a, b string) int {
	return strings.Compare(strings.ToUpper(a), strings.ToUpper(b))
}

// comparePtr orders nil before any value.
func comparePtr[T any](a, b *T, compare func(a, b T) int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return compare(*a, *b)
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func compareTime(a, b time.Time) int { return a.Compare(b) }

func compareInt(a, b int) int { return cmp.Compare(a, b) }
