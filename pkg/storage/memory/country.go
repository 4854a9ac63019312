package memory

import (
	"context"
	"directory/pkg/domain"
	"directory/pkg/storage"
	"slices"
)

// StoreCountry appends a country. Names are unique, mirroring the unique index
// of the relational schema.
func (m *Memory) StoreCountry(_ context.Context, country domain.Country) (*domain.Country, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.apply(func(s *state) error {
		if slices.ContainsFunc(s.countries, func(c domain.Country) bool { return c.Name == country.Name }) {
			return storage.ErrDuplicate
		}
		s.countries = append(s.countries, country)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &country, nil
}

func (m *Memory) Countries(_ context.Context) ([]domain.Country, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.state.countries), nil
}

func (m *Memory) CountryByID(_ context.Context, id domain.CountryID) (*domain.Country, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.countryByID(id), nil
}

func (m *Memory) countryByID(id domain.CountryID) *domain.Country {
	i := slices.IndexFunc(m.state.countries, func(c domain.Country) bool { return c.ID == id })
	if i < 0 {
		return nil
	}
	c := m.state.countries[i]

	return &c
}

func (m *Memory) CountryCountByName(_ context.Context, name string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var count int64
	for _, c := range m.state.countries {
		if c.Name == name {
			count++
		}
	}

	return count, nil
}
