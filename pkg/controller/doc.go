// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: go-chi/cors policy for browser clients, answering preflights with 204.
//   - WithLogger: Attaches a logger carrying the chi request ID and logs each request with its route.
//   - WithMetrics: Records the duration of every request in an OpenTelemetry histogram.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
package controller
