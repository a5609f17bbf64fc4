package metrics

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"
)

func TestCollectorCounters(t *testing.T) {
	c := NewCollector(nil)

	c.RecordSeal(100, 5*time.Microsecond)
	c.RecordSeal(50, 10*time.Microsecond)
	c.RecordOpen(100, 7*time.Microsecond)
	c.RecordAuthFailure()
	c.RecordSealError()

	snap := c.Snapshot()
	if snap.SealsTotal != 2 {
		t.Errorf("SealsTotal = %d, want 2", snap.SealsTotal)
	}
	if snap.BytesSealed != 150 {
		t.Errorf("BytesSealed = %d, want 150", snap.BytesSealed)
	}
	if snap.OpensTotal != 1 || snap.BytesOpened != 100 {
		t.Errorf("open counters wrong: %d/%d", snap.OpensTotal, snap.BytesOpened)
	}
	if snap.AuthFailures != 1 || snap.SealErrors != 1 {
		t.Errorf("failure counters wrong: %d/%d", snap.AuthFailures, snap.SealErrors)
	}
	if snap.SealLatency.Count != 2 {
		t.Errorf("SealLatency.Count = %d, want 2", snap.SealLatency.Count)
	}

	c.Reset()
	snap = c.Snapshot()
	if snap.SealsTotal != 0 || snap.SealLatency.Count != 0 {
		t.Error("Reset did not clear metrics")
	}
}

func TestCollectorLabels(t *testing.T) {
	c := NewCollector(Labels{"suite": "AES-128-GCM-SIV"})
	if c.Snapshot().Labels["suite"] != "AES-128-GCM-SIV" {
		t.Error("labels not carried into snapshot")
	}
}

func TestHistogram(t *testing.T) {
	h := NewHistogram([]float64{1, 10, 100})

	for _, v := range []float64{0.5, 5, 50, 500} {
		h.Observe(v)
	}

	s := h.Summary()
	if s.Count != 4 {
		t.Fatalf("Count = %d, want 4", s.Count)
	}
	if s.Min != 0.5 || s.Max != 500 {
		t.Errorf("Min/Max = %v/%v, want 0.5/500", s.Min, s.Max)
	}
	if got := s.Buckets[len(s.Buckets)-1]; !math.IsInf(got.UpperBound, 1) || got.Count != 4 {
		t.Errorf("overflow bucket = %+v", got)
	}
	// Cumulative counts: <=1: 1, <=10: 2, <=100: 3
	if s.Buckets[0].Count != 1 || s.Buckets[1].Count != 2 || s.Buckets[2].Count != 3 {
		t.Errorf("cumulative counts wrong: %+v", s.Buckets)
	}

	h.Reset()
	if h.Count() != 0 || h.Mean() != 0 {
		t.Error("Reset did not clear histogram")
	}
}

func TestHistogramEmptySummary(t *testing.T) {
	h := NewHistogram(LatencyBuckets)
	s := h.Summary()
	if s.Count != 0 || len(s.Buckets) != 0 {
		t.Errorf("empty summary = %+v", s)
	}
}

func TestPrometheusExport(t *testing.T) {
	c := NewCollector(Labels{"variant": "aes128"})
	c.RecordSeal(64, 3*time.Microsecond)
	c.RecordAuthFailure()

	var b strings.Builder
	NewPrometheusExporter(c, "aeads").WriteMetrics(&b)
	out := b.String()

	for _, want := range []string{
		"# TYPE aeads_seals_total counter",
		`aeads_seals_total{variant="aes128"} 1`,
		`aeads_auth_failures_total{variant="aes128"} 1`,
		`aeads_seal_latency_microseconds_bucket{variant="aes128",le="5"} 1`,
		"aeads_seal_latency_microseconds_count",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("exposition missing %q:\n%s", want, out)
		}
	}
}

func TestSimpleTracer(t *testing.T) {
	tr := NewSimpleTracer()
	SetTracer(tr)
	defer SetTracer(NoOpTracer{})

	_, end := StartSpan(context.Background(), SpanSeal, WithAttributes(map[string]interface{}{"bytes": 42}))
	end(nil)

	spans := tr.Spans()
	if len(spans) != 1 || spans[0].Name != SpanSeal {
		t.Fatalf("spans = %+v", spans)
	}
	if spans[0].Attributes["bytes"] != 42 {
		t.Error("span attributes not recorded")
	}
}
