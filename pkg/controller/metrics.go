package controller

import (
	"directory/pkg/metrics"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "directory/pkg/controller"

// WithMetrics returns a middleware recording the duration of every request in
// the http.server.request.duration histogram of mp, labelled by method, status
// code and route. It must run inside a chi router so the matched route pattern
// is known; requests matching no route are labelled "unmatched".
func WithMetrics(mp metric.MeterProvider) (func(http.Handler) http.Handler, error) {
	duration, err := mp.Meter(meterName).Float64Histogram("http.server.request.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of HTTP server requests."),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create request duration histogram: %w", err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			duration.Record(r.Context(), time.Since(start).Seconds(), metric.WithAttributes(
				attribute.String("http.request.method", r.Method),
				attribute.String("http.route", routePattern(r)),
				attribute.Int("http.response.status_code", status(ww)),
			))
		})
	}, nil
}
