package person

import "strings"

// FilterDateLayout is how a date of birth is rendered for text search.
const FilterDateLayout = "02 January 2006"

type predicate func(v View, text string) bool

// filters holds the search predicate of every searchable field. A person
// whose target field is empty always matches.
var filters = map[Field]predicate{ //nolint: gochecknoglobals
	FieldName:  func(v View, text string) bool { return containsFold(v.Name, text) },
	FieldEmail: func(v View, text string) bool { return containsFold(v.Email, text) },
	FieldDateOfBirth: func(v View, text string) bool {
		if v.DateOfBirth == nil {
			return true
		}

		return containsFold(v.DateOfBirth.Format(FilterDateLayout), text)
	},
	FieldGender: func(v View, text string) bool {
		return v.Gender == "" || fold(v.Gender) == fold(text)
	},
	FieldAddress: func(v View, text string) bool { return containsFold(v.Address, text) },
}

func containsFold(value, text string) bool {
	return value == "" || strings.Contains(fold(value), fold(text))
}

// Filter returns the persons matching text on the field named by searchBy.
// The input is returned unchanged when either argument is empty or searchBy
// names no searchable field.
func Filter(persons []View, searchBy, text string) []View {
	if searchBy == "" || text == "" {
		return persons
	}
	field, ok := ParseField(searchBy)
	if !ok {
		return persons
	}
	match, ok := filters[field]
	if !ok {
		return persons
	}

	res := make([]View, 0, len(persons))
	for _, p := range persons {
		if match(p, text) {
			res = append(res, p)
		}
	}

	return res
}
