package person

import "slices"

type comparator func(a, b View) int

var comparators = map[Field]comparator{ //nolint: gochecknoglobals
	FieldName:  func(a, b View) int { return compareIgnoreCase(a.Name, b.Name) },
	FieldEmail: func(a, b View) int { return compareIgnoreCase(a.Email, b.Email) },
	FieldDateOfBirth: func(a, b View) int {
		return comparePtr(a.DateOfBirth, b.DateOfBirth, compareTime)
	},
	FieldAge:     func(a, b View) int { return comparePtr(a.Age, b.Age, compareInt) },
	FieldGender:  func(a, b View) int { return compareIgnoreCase(a.Gender, b.Gender) },
	FieldCountry: func(a, b View) int { return comparePtr(a.Country, b.Country, compareIgnoreCase) },
	FieldAddress: func(a, b View) int { return compareIgnoreCase(a.Address, b.Address) },
	FieldReceiveNewsLetters: func(a, b View) int {
		return compareBool(a.ReceiveNewsLetters, b.ReceiveNewsLetters)
	},
}

// Sort returns a sorted copy of persons. Equal elements keep their relative
// order in both directions. The input is returned unchanged when sortBy is
// empty or names no known field.
func Sort(persons []View, sortBy string, order SortOrder) []View {
	if sortBy == "" {
		return persons
	}
	field, ok := ParseField(sortBy)
	if !ok {
		return persons
	}
	compare := comparators[field]

	res := slices.Clone(persons)
	if order == SortDesc {
		slices.SortStableFunc(res, func(a, b View) int { return compare(b, a) })
	} else {
		slices.SortStableFunc(res, compare)
	}

	return res
}
