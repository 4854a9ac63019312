package controller_test

import (
	"directory/pkg/controller"
	"directory/pkg/logger"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// withObserver routes the request logger into an in-memory core.
func withObserver(t *testing.T) (func(http.Handler) http.Handler, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.InfoLevel)
	l := zap.New(core)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(logger.WithLogger(r.Context(), l)))
		})
	}, logs
}

func TestWithLogger_AccessLog(t *testing.T) {
	inject, logs := withObserver(t)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, inject, controller.WithLogger)
	r.Get("/persons/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequest(http.MethodGet, "/persons/42", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	req.Header.Set("X-Real-IP", "1.2.3.4")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))

	entries := logs.FilterMessage("Access log").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "abc-123", fields["request_id"])
	require.Equal(t, "/persons/{id}", fields["route"])
	require.Equal(t, "1.2.3.4", fields["client_ip"])
	require.EqualValues(t, http.StatusCreated, fields["status_code"])
	require.EqualValues(t, 2, fields["bytes"])
}

func TestWithLogger_DefaultsWithoutRequestID(t *testing.T) {
	inject, logs := withObserver(t)

	var seen string
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = "called"
		logger.Info(r.Context(), "inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	req.RemoteAddr = "10.0.0.1:12345"
	rec := httptest.NewRecorder()
	inject(controller.WithLogger(next)).ServeHTTP(rec, req)
	require.Equal(t, "called", seen)
	require.Equal(t, http.StatusOK, rec.Code)

	inside := logs.FilterMessage("inside").All()
	require.Len(t, inside, 1)
	id, _ := inside[0].ContextMap()["request_id"].(string)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	access := logs.FilterMessage("Access log").All()
	require.Len(t, access, 1)
	fields := access[0].ContextMap()
	require.Equal(t, "unmatched", fields["route"])
	require.Equal(t, "10.0.0.1", fields["client_ip"])
	require.EqualValues(t, http.StatusOK, fields["status_code"])
}
