package memory

import (
	"context"
	"directory/pkg/domain"
	"slices"
)

// copyPerson detaches p from the stored slice so callers cannot mutate state
// through pointer fields.
func copyPerson(p domain.Person) domain.Person {
	if p.DateOfBirth != nil {
		dob := *p.DateOfBirth
		p.DateOfBirth = &dob
	}
	if p.CountryID != nil {
		id := *p.CountryID
		p.CountryID = &id
	}
	p.Country = nil

	return p
}

func (m *Memory) withCountry(p domain.Person) domain.Person {
	p = copyPerson(p)
	if p.CountryID != nil {
		p.Country = m.countryByID(*p.CountryID)
	}

	return p
}

func (m *Memory) StorePerson(_ context.Context, person domain.Person) (*domain.Person, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_ = m.apply(func(s *state) error {
		s.persons = append(s.persons, copyPerson(person))

		return nil
	})
	stored := copyPerson(person)

	return &stored, nil
}

func (m *Memory) Persons(_ context.Context, includeCountry bool) ([]domain.Person, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Person, 0, len(m.state.persons))
	for _, p := range m.state.persons {
		if includeCountry {
			out = append(out, m.withCountry(p))
		} else {
			out = append(out, copyPerson(p))
		}
	}

	return out, nil
}

func (m *Memory) PersonByID(_ context.Context, id domain.PersonID) (*domain.Person, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := slices.IndexFunc(m.state.persons, func(p domain.Person) bool { return p.ID == id })
	if i < 0 {
		return nil, nil
	}
	p := m.withCountry(m.state.persons[i])

	return &p, nil
}

// UpdatePerson replaces the stored person in place, keeping its position.
// Unknown IDs are ignored.
func (m *Memory) UpdatePerson(_ context.Context, person domain.Person) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.apply(func(s *state) error {
		i := slices.IndexFunc(s.persons, func(p domain.Person) bool { return p.ID == person.ID })
		if i >= 0 {
			s.persons[i] = copyPerson(person)
		}

		return nil
	})
}

func (m *Memory) DeletePerson(_ context.Context, person domain.Person) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.apply(func(s *state) error {
		s.persons = slices.DeleteFunc(s.persons, func(p domain.Person) bool { return p.ID == person.ID })

		return nil
	})
}
