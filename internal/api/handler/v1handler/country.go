package v1handler

import (
	"directory/internal/country"
	"directory/pkg/domain"
	"directory/pkg/serrors"
	"net/http"
)

// ListCountries returns every country.
func (h Handler) ListCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.deps.Countries.GetAllCountries(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if countries == nil {
		countries = []domain.Country{}
	}

	writeJSON(r.Context(), w, http.StatusOK, countries)
}

// CreateCountry adds a country from the JSON body.
func (h Handler) CreateCountry(w http.ResponseWriter, r *http.Request) {
	req, err := decodeBody[country.AddRequest](r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	c, err := h.deps.Countries.AddCountry(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, c)
}

// GetCountry returns a single country by ID.
func (h Handler) GetCountry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	c, err := h.deps.Countries.GetCountryByID(r.Context(), domain.CountryID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if c == nil {
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, "country not found"))

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, c)
}
