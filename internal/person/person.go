package person

import (
	"context"
	"directory/internal/country"
	"directory/pkg/domain"
	"directory/pkg/logger"
	"directory/pkg/serrors"
	"directory/pkg/storage"
	"directory/pkg/validation"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// Options configure the person service.
type Options struct {
	// Now returns the current time used to derive ages. Defaults to time.Now.
	Now func() time.Time
}

// service is the concrete implementation of the Service interface.
type service struct {
	now       func() time.Time
	storage   storage.Storage
	countries country.Service
}

// AddPerson validates the request and persists a new person under a freshly
// generated ID. The country reference is not checked for existence.
func (s service) AddPerson(ctx context.Context, req *AddRequest) (*View, error) {
	if req == nil {
		return nil, serrors.With(serrors.ErrNullRequest, "person add request is required")
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	p := domain.Person{ID: domain.NewPersonID()}
	req.apply(&p)

	stored, err := s.storage.StorePerson(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("could not store person: %w", err)
	}

	logger.Info(ctx, "person added", zap.Stringer("person_id", stored.ID))

	return s.lookupView(ctx, *stored)
}

// GetAllPersons returns the views of every stored person in storage order.
func (s service) GetAllPersons(ctx context.Context) ([]View, error) {
	persons, err := s.storage.Persons(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("could not get persons: %w", err)
	}

	now := s.now()
	views := make([]View, 0, len(persons))
	for _, p := range persons {
		views = append(views, ToView(p, loadedCountryName(p), now))
	}

	return views, nil
}

// GetPersonByID returns nil without an error when the ID is zero or unknown.
func (s service) GetPersonByID(ctx context.Context, ID domain.PersonID) (*View, error) {
	if ID.IsZero() {
		return nil, nil //nolint: nilnil
	}

	p, err := s.storage.PersonByID(ctx, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get person: %w", err)
	}
	if p == nil {
		return nil, nil //nolint: nilnil
	}

	view := ToView(*p, loadedCountryName(*p), s.now())

	return &view, nil
}

// GetFilteredPersons lists every person and keeps the ones matching searchText
// on the field named by searchBy. See Filter.
func (s service) GetFilteredPersons(ctx context.Context, searchBy, searchText string) ([]View, error) {
	views, err := s.GetAllPersons(ctx)
	if err != nil {
		return nil, err
	}

	return Filter(views, searchBy, searchText), nil
}

// GetSortedPersons orders persons without touching storage. See Sort.
func (s service) GetSortedPersons(persons []View, sortBy string, order SortOrder) []View {
	return Sort(persons, sortBy, order)
}

// UpdatePerson overwrites every mutable field of the stored person with the
// request's values. An unknown ID is reported as a validation failure.
func (s service) UpdatePerson(ctx context.Context, req *UpdateRequest) (*View, error) {
	if req == nil {
		return nil, serrors.With(serrors.ErrNullRequest, "person update request is required")
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	var updated domain.Person
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		found, err := tx.PersonByID(ctx, req.ID)
		if err != nil {
			return fmt.Errorf("could not get person: %w", err)
		}
		if found == nil {
			return serrors.Wrap(serrors.ErrValidation, serrors.KindOnly(ErrPersonNotFound), "person id doesn't exist")
		}

		req.apply(found)
		if err := tx.UpdatePerson(ctx, *found); err != nil {
			return fmt.Errorf("could not update person: %w", err)
		}
		updated = *found

		return nil
	}); err != nil {
		return nil, err
	}

	logger.Info(ctx, "person updated", zap.Stringer("person_id", updated.ID))

	return s.lookupView(ctx, updated)
}

// DeletePerson removes the person with the given ID. It reports false when no
// such person is stored.
func (s service) DeletePerson(ctx context.Context, ID domain.PersonID) (bool, error) {
	if ID.IsZero() {
		return false, serrors.With(serrors.ErrNullRequest, "person id is required")
	}

	deleted := false
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		found, err := tx.PersonByID(ctx, ID)
		if err != nil {
			return fmt.Errorf("could not get person: %w", err)
		}
		if found == nil {
			return nil
		}

		if err := tx.DeletePerson(ctx, *found); err != nil {
			return fmt.Errorf("could not delete person: %w", err)
		}
		deleted = true

		return nil
	}); err != nil {
		return false, err
	}

	if deleted {
		logger.Info(ctx, "person deleted", zap.Stringer("person_id", ID))
	}

	return deleted, nil
}

// ExportPersonsCSV writes every person, in listing order, as CSV to w.
func (s service) ExportPersonsCSV(ctx context.Context, w io.Writer) error {
	views, err := s.GetAllPersons(ctx)
	if err != nil {
		return err
	}

	return WriteCSV(w, views)
}

// lookupView resolves the country name through the country service.
func (s service) lookupView(ctx context.Context, p domain.Person) (*View, error) {
	var name *string
	if p.CountryID != nil {
		c, err := s.countries.GetCountryByID(ctx, *p.CountryID)
		if err != nil {
			return nil, fmt.Errorf("could not resolve country: %w", err)
		}
		if c != nil {
			name = &c.Name
		}
	}

	view := ToView(p, name, s.now())

	return &view, nil
}

func loadedCountryName(p domain.Person) *string {
	if p.Country == nil {
		return nil
	}
	name := p.Country.Name

	return &name
}

// New creates a new Service backed by the provided storage. Country names are
// resolved through countries.
func New(storage storage.Storage, countries country.Service, options Options) Service {
	now := options.Now
	if now == nil {
		now = time.Now
	}

	return &service{
		now:       now,
		storage:   storage,
		countries: countries,
	}
}
