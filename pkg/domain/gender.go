package domain

import "fmt"

// Gender is the closed set of genders a person can have.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Genders returns every known Gender in declaration order.
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOther}
}

// ParseGender converts stored text back into a Gender. Matching is exact; text
// that is not a known member is an error rather than a silent default.
func ParseGender(s string) (Gender, error) {
	for _, g := range Genders() {
		if string(g) == s {
			return g, nil
		}
	}

	return "", fmt.Errorf("unknown gender %q", s)
}

func (g Gender) String() string { return string(g) }
