package postgres

import (
	"context"
	"directory/pkg/domain"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	countriesTable = "countries"
)

// StoreCountry inserts a country. A name that already exists violates the
// unique index and is reported as storage.ErrDuplicate.
func (p *PgSQL) StoreCountry(ctx context.Context, country domain.Country) (*domain.Country, error) {
	var row PgCountry
	row.FromDomain(country)

	if _, err := p.Builder.Insert(countriesTable).
		Rows(row).
		Executor().ExecContext(ctx); err != nil {
		return nil, wrapWriteErr(err, "could not store country into pg")
	}

	return row.ToDomain(), nil
}

// Countries returns all countries in insertion order.
func (p *PgSQL) Countries(ctx context.Context) ([]domain.Country, error) {
	var rows []PgCountry
	if err := p.Builder.From(countriesTable).
		Order(goqu.I("seq").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch countries from pg: %w", err)
	}

	out := make([]domain.Country, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// CountryByID returns a country by its ID, or nil when it does not exist.
func (p *PgSQL) CountryByID(ctx context.Context, id domain.CountryID) (*domain.Country, error) {
	var row PgCountry
	found, err := p.Builder.From(countriesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch country by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// CountryCountByName counts countries whose name equals name exactly.
func (p *PgSQL) CountryCountByName(ctx context.Context, name string) (int64, error) {
	count, err := p.Builder.From(countriesTable).
		Where(goqu.I("name").Eq(name)).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count countries by name: %w", err)
	}

	return count, nil
}
