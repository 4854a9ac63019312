// Package metrics holds shared settings for the service's OpenTelemetry instruments.
package metrics

// DefaultBuckets are the histogram bucket boundaries, in seconds, used for
// latency instruments such as the HTTP request duration.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals
