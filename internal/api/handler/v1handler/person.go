package v1handler

import (
	"bytes"
	"directory/internal/person"
	"directory/pkg/domain"
	"directory/pkg/serrors"
	"net/http"
)

// DefaultSortBy is the field persons are listed by when no sortBy is given.
const DefaultSortBy = person.FieldName

// ListPersons returns the persons matching searchBy/searchString, ordered by
// sortBy/sortOrder.
func (h Handler) ListPersons(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	order, err := person.ParseSortOrder(q.Get("sortOrder"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	sortBy := q.Get("sortBy")
	if sortBy == "" {
		sortBy = string(DefaultSortBy)
	}

	persons, err := h.deps.Persons.GetFilteredPersons(r.Context(), q.Get("searchBy"), q.Get("searchString"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	persons = h.deps.Persons.GetSortedPersons(persons, sortBy, order)
	if persons == nil {
		persons = []person.View{}
	}

	writeJSON(r.Context(), w, http.StatusOK, persons)
}

// GetPerson returns a single person by ID.
func (h Handler) GetPerson(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	p, err := h.deps.Persons.GetPersonByID(r.Context(), domain.PersonID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if p == nil {
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, "person not found"))

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, p)
}

// CreatePerson adds a person from the JSON body.
func (h Handler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	req, err := decodeBody[person.AddRequest](r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	p, err := h.deps.Persons.AddPerson(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, p)
}

// UpdatePerson overwrites the person identified by the path with the JSON
// body. The path ID takes precedence over any ID in the body.
func (h Handler) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	req, err := decodeBody[person.UpdateRequest](r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if req != nil {
		req.ID = domain.PersonID(id)
	}

	p, err := h.deps.Persons.UpdatePerson(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, p)
}

// DeletePerson removes a person by ID.
func (h Handler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	deleted, err := h.deps.Persons.DeletePerson(r.Context(), domain.PersonID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if !deleted {
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, "person not found"))

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ExportPersons downloads every person as persons.csv.
func (h Handler) ExportPersons(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.deps.Persons.ExportPersonsCSV(r.Context(), &buf); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="persons.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// SearchFields lists the fields persons can be searched by.
func (h Handler) SearchFields(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, person.SearchFields())
}
