// Package metrics provides observability primitives for the aeads-go library.
//
// The package includes:
//   - An atomic Collector for seal/open operation counters and latencies
//   - Histogram metric type
//   - Prometheus-compatible text-format export
//   - OpenTelemetry tracing support behind the "otel" build tag
//   - Structured logging with levels
//
// The cipher packages themselves stay observability-free; callers feed the
// collector from the outside.
package metrics
