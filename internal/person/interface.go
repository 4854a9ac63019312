package person

import (
	"context"
	"directory/pkg/domain"
	"io"
)

//go:generate mockgen -package mockperson -source=interface.go -destination=mock/mockperson.go *
type Service interface {
	AddPerson(ctx context.Context, req *AddRequest) (*View, error)
	GetAllPersons(ctx context.Context) ([]View, error)
	GetPersonByID(ctx context.Context, ID domain.PersonID) (*View, error)
	GetFilteredPersons(ctx context.Context, searchBy, searchText string) ([]View, error)
	GetSortedPersons(persons []View, sortBy string, order SortOrder) []View
	UpdatePerson(ctx context.Context, req *UpdateRequest) (*View, error)
	DeletePerson(ctx context.Context, ID domain.PersonID) (bool, error)
	ExportPersonsCSV(ctx context.Context, w io.Writer) error
}
