package metrics

import (
	"fmt"
	"io"
	"math"
	"net/http"
	"sort"
	"strings"
)

// PrometheusExporter exports collector metrics in Prometheus text format.
type PrometheusExporter struct {
	collector *Collector
	namespace string
}

// NewPrometheusExporter creates a new Prometheus exporter for the given
// collector. The namespace is prepended to all metric names (e.g., "aeads").
func NewPrometheusExporter(c *Collector, namespace string) *PrometheusExporter {
	return &PrometheusExporter{
		collector: c,
		namespace: namespace,
	}
}

// Handler returns an http.Handler that serves Prometheus metrics.
func (e *PrometheusExporter) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
		e.WriteMetrics(w)
	})
}

// WriteMetrics writes all metrics in Prometheus text format to the writer.
func (e *PrometheusExporter) WriteMetrics(w io.Writer) {
	snap := e.collector.Snapshot()
	labels := e.formatLabels(snap.Labels)

	e.writeHelp(w, "seals_total", "Total successful seal operations")
	e.writeType(w, "seals_total", "counter")
	e.writeMetric(w, "seals_total", labels, float64(snap.SealsTotal))

	e.writeHelp(w, "opens_total", "Total successful open operations")
	e.writeType(w, "opens_total", "counter")
	e.writeMetric(w, "opens_total", labels, float64(snap.OpensTotal))

	e.writeHelp(w, "bytes_sealed_total", "Total plaintext bytes sealed")
	e.writeType(w, "bytes_sealed_total", "counter")
	e.writeMetric(w, "bytes_sealed_total", labels, float64(snap.BytesSealed))

	e.writeHelp(w, "bytes_opened_total", "Total plaintext bytes recovered")
	e.writeType(w, "bytes_opened_total", "counter")
	e.writeMetric(w, "bytes_opened_total", labels, float64(snap.BytesOpened))

	e.writeHelp(w, "auth_failures_total", "Total rejected ciphertexts")
	e.writeType(w, "auth_failures_total", "counter")
	e.writeMetric(w, "auth_failures_total", labels, float64(snap.AuthFailures))

	e.writeHelp(w, "seal_errors_total", "Total failed seal operations")
	e.writeType(w, "seal_errors_total", "counter")
	e.writeMetric(w, "seal_errors_total", labels, float64(snap.SealErrors))

	e.writeHistogram(w, "seal_latency_microseconds", labels, snap.SealLatency)
	e.writeHistogram(w, "open_latency_microseconds", labels, snap.OpenLatency)

	e.writeHelp(w, "uptime_seconds", "Collector uptime in seconds")
	e.writeType(w, "uptime_seconds", "gauge")
	e.writeMetric(w, "uptime_seconds", labels, snap.Uptime.Seconds())
}

// writeHistogram writes a histogram in Prometheus exposition format.
func (e *PrometheusExporter) writeHistogram(w io.Writer, name, labels string, h HistogramSummary) {
	e.writeHelp(w, name, "Operation latency distribution")
	e.writeType(w, name, "histogram")

	full := e.metricName(name)
	for _, b := range h.Buckets {
		le := "+Inf"
		if !math.IsInf(b.UpperBound, 1) {
			le = fmt.Sprintf("%g", b.UpperBound)
		}
		fmt.Fprintf(w, "%s_bucket{%sle=%q} %d\n", full, bucketLabelPrefix(labels), le, b.Count)
	}
	fmt.Fprintf(w, "%s_sum%s %g\n", full, labels, h.Sum)
	fmt.Fprintf(w, "%s_count%s %d\n", full, labels, h.Count)
}

func (e *PrometheusExporter) metricName(name string) string {
	if e.namespace == "" {
		return name
	}
	return e.namespace + "_" + name
}

func (e *PrometheusExporter) writeHelp(w io.Writer, name, help string) {
	fmt.Fprintf(w, "# HELP %s %s\n", e.metricName(name), help)
}

func (e *PrometheusExporter) writeType(w io.Writer, name, typ string) {
	fmt.Fprintf(w, "# TYPE %s %s\n", e.metricName(name), typ)
}

func (e *PrometheusExporter) writeMetric(w io.Writer, name, labels string, value float64) {
	fmt.Fprintf(w, "%s%s %g\n", e.metricName(name), labels, value)
}

// formatLabels renders labels as {k="v",...} with sorted keys, or the empty
// string when there are none.
func (e *PrometheusExporter) formatLabels(labels Labels) string {
	if len(labels) == 0 {
		return ""
	}

	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%q", k, labels[k]))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// bucketLabelPrefix converts a rendered label set into the prefix form used
// inside _bucket sample lines, where the "le" label is appended.
func bucketLabelPrefix(labels string) string {
	if labels == "" {
		return ""
	}
	return strings.TrimSuffix(strings.TrimPrefix(labels, "{"), "}") + ","
}
