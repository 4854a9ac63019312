package postgres

import (
	"context"
	"directory/pkg/domain"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	personsTable = "persons"
)

// personsSelect builds the base query for persons. The country name is only
// joined in when includeCountry is set; otherwise the column is NULL.
func (p *PgSQL) personsSelect(includeCountry bool) *goqu.SelectDataset {
	cols := []interface{}{
		goqu.T(personsTable).Col("seq"),
		goqu.T(personsTable).Col("id"),
		goqu.T(personsTable).Col("name"),
		goqu.T(personsTable).Col("email"),
		goqu.T(personsTable).Col("date_of_birth"),
		goqu.T(personsTable).Col("gender"),
		goqu.T(personsTable).Col("address"),
		goqu.T(personsTable).Col("country_id"),
		goqu.T(personsTable).Col("receive_news_letters"),
	}

	ds := p.Builder.From(personsTable)
	if !includeCountry {
		return ds.Select(append(cols, goqu.L("NULL::text").As("country_name"))...)
	}

	return ds.
		LeftJoin(goqu.T(countriesTable), goqu.On(
			goqu.T(personsTable).Col("country_id").Eq(goqu.T(countriesTable).Col("id")),
		)).
		Select(append(cols, goqu.T(countriesTable).Col("name").As("country_name"))...)
}

func (p *PgSQL) StorePerson(ctx context.Context, person domain.Person) (*domain.Person, error) {
	var row PgPerson
	row.FromDomain(person)

	if _, err := p.Builder.Insert(personsTable).
		Rows(row).
		Executor().ExecContext(ctx); err != nil {
		return nil, wrapWriteErr(err, "could not store person into pg")
	}

	return row.ToDomain(), nil
}

// Persons returns all persons in insertion order.
func (p *PgSQL) Persons(ctx context.Context, includeCountry bool) ([]domain.Person, error) {
	var rows []PgPersonRow
	if err := p.personsSelect(includeCountry).
		Order(goqu.T(personsTable).Col("seq").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch persons from pg: %w", err)
	}

	return pgPersonRowsToDomain(rows), nil
}

// PersonByID returns a person with its country by ID, or nil when not found.
func (p *PgSQL) PersonByID(ctx context.Context, id domain.PersonID) (*domain.Person, error) {
	var row PgPersonRow
	found, err := p.personsSelect(true).
		Where(goqu.T(personsTable).Col("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch person by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdatePerson overwrites all mutable columns of the row with person's ID.
func (p *PgSQL) UpdatePerson(ctx context.Context, person domain.Person) error {
	var row PgPerson
	row.FromDomain(person)

	_, err := p.Builder.Update(personsTable).
		Set(goqu.Record{
			"name":                 row.Name,
			"email":                row.Email,
			"date_of_birth":        row.DateOfBirth,
			"gender":               row.Gender,
			"address":              row.Address,
			"country_id":           row.CountryID,
			"receive_news_letters": row.ReceiveNewsLetters,
		}).
		Where(goqu.I("id").Eq(row.ID)).
		Executor().ExecContext(ctx)
	if err != nil {
		return wrapWriteErr(err, "could not update person in pg")
	}

	return nil
}

// DeletePerson hard-deletes the row with person's ID.
func (p *PgSQL) DeletePerson(ctx context.Context, person domain.Person) error {
	_, err := p.Builder.Delete(personsTable).
		Where(goqu.I("id").Eq(uuid.UUID(person.ID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not delete person in pg: %w", err)
	}

	return nil
}
