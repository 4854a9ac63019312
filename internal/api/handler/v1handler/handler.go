// Package v1handler implements the /v1 HTTP endpoints on top of the country
// and person services.
package v1handler

import (
	"context"
	"directory/internal/country"
	"directory/internal/person"
	"directory/pkg/logger"
	"directory/pkg/serrors"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Deps are the services the handlers delegate to.
type Deps struct {
	Countries country.Service
	Persons   person.Service
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts every v1 route on r.
func (h Handler) Register(r chi.Router) {
	r.Route("/countries", func(r chi.Router) {
		r.Get("/", h.ListCountries)
		r.Post("/", h.CreateCountry)
		r.Get("/{id}", h.GetCountry)
	})
	r.Route("/persons", func(r chi.Router) {
		r.Get("/", h.ListPersons)
		r.Post("/", h.CreatePerson)
		r.Get("/csv", h.ExportPersons)
		r.Get("/search-fields", h.SearchFields)
		r.Get("/{id}", h.GetPerson)
		r.Put("/{id}", h.UpdatePerson)
		r.Delete("/{id}", h.DeletePerson)
	})
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

type kindStatus struct {
	kind    serrors.Kind
	status  int
	message string
}

// statuses is checked in order; the first kind matched by the error wins.
var statuses = []kindStatus{ //nolint: gochecknoglobals
	{serrors.ErrNullRequest, http.StatusBadRequest, "request is required"},
	{serrors.ErrValidation, http.StatusBadRequest, "validation failed"},
	{serrors.ErrBadRequest, http.StatusBadRequest, "bad request"},
	{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
}

// NewError maps err to a status code and response body. Errors without a
// known semantic kind are logged and reported as internal errors.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	for _, s := range statuses {
		if !errors.Is(err, s.kind) {
			continue
		}

		res := ErrorResponse{Code: s.kind.Error(), Message: s.message}
		var serr *serrors.Error
		if errors.As(err, &serr) && serr.Message() != "" {
			res.Message = serr.Message()
		}
		var verr *serrors.ValidationError
		if errors.As(err, &verr) {
			res.Errors = verr.Messages
		}

		return &ErrorStatusCode{StatusCode: s.status, Response: res}
	}

	logger.Error(ctx, "request failed", zap.Error(err))

	return &ErrorStatusCode{
		StatusCode: http.StatusInternalServerError,
		Response: ErrorResponse{
			Code:    serrors.ErrInternal.Error(),
			Message: "internal error",
		},
	}
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(r.Context(), w, res.StatusCode, res.Response)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

// decodeBody decodes the JSON body of r. An empty body yields a nil value so
// services can report the missing request themselves.
func decodeBody[T any](r *http.Request) (*T, error) {
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil //nolint: nilnil
		}

		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return &v, nil
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid id")
	}

	return id, nil
}
