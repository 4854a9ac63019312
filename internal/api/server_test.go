package api_test

import (
	"context"
	"directory/internal/api"
	"directory/internal/api/handler/v1handler"
	"directory/internal/country"
	"directory/internal/person"
	"directory/pkg/storage/memory"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st := memory.New()
	countries := country.New(st)
	persons := person.New(st, countries, person.Options{})

	handler, err := api.NewHandler(api.Deps{Deps: v1handler.Deps{
		Countries: countries,
		Persons:   persons,
	}}, api.Options{MetricsPath: "/metrics", Registerer: prometheus.NewRegistry()})
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return srv
}

func send(t *testing.T, method, url, body string) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, string(b)
}

func TestServer_PersonFlow(t *testing.T) {
	srv := newTestServer(t)

	res, body := send(t, http.MethodPost, srv.URL+"/v1/countries", `{"name":"Japan"}`)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = send(t, http.MethodPost, srv.URL+"/v1/countries", `{"name":"Japan"}`)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Contains(t, body, "VALIDATION_FAILED")

	res, body = send(t, http.MethodPost, srv.URL+"/v1/persons", `{"name":"Ann","email":"ann@example.com"}`)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	require.Equal(t, "http://localhost:3000", res.Header.Get("Access-Control-Allow-Origin"))
	require.NotEmpty(t, res.Header.Get("X-Request-Id"))

	res, body = send(t, http.MethodGet, srv.URL+"/v1/persons?searchBy=Name&searchString=an", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, `"name":"Ann"`)

	res, body = send(t, http.MethodGet, srv.URL+"/v1/persons/csv", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.True(t, strings.HasPrefix(body, "Name,Email,DateOfBirth,Age,Gender,Country,Address,ReceiveNewsLetters\n"))
}

func TestServer_SpecsAndMetrics(t *testing.T) {
	srv := newTestServer(t)

	res, body := send(t, http.MethodGet, srv.URL+"/specs/v1.yaml", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, "openapi: 3.0.3")

	res, _ = send(t, http.MethodGet, srv.URL+"/v1/persons", "")
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = send(t, http.MethodGet, srv.URL+"/metrics", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, "http_server_request_duration")
}
