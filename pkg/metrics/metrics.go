package metrics

import (
	"sync/atomic"
	"time"
)

// Collector aggregates metrics from AEAD operations.
// All counters are atomic; the collector is safe for concurrent use.
type Collector struct {
	// Operation counters
	sealsTotal atomic.Uint64
	opensTotal atomic.Uint64

	// Traffic counters
	bytesSealed atomic.Uint64
	bytesOpened atomic.Uint64

	// Failure counters
	authFailures atomic.Uint64
	sealErrors   atomic.Uint64

	// Performance histograms
	sealLatency *Histogram
	openLatency *Histogram

	// Creation time for uptime tracking
	createdAt time.Time

	// Labels for this collector instance
	labels Labels
}

// Labels represents key-value pairs for metric labeling.
type Labels map[string]string

// LatencyBuckets are the default buckets for seal/open latency (microseconds).
var LatencyBuckets = []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000}

// NewCollector creates a new metrics collector.
func NewCollector(labels Labels) *Collector {
	if labels == nil {
		labels = make(Labels)
	}

	return &Collector{
		sealLatency: NewHistogram(LatencyBuckets),
		openLatency: NewHistogram(LatencyBuckets),
		createdAt:   time.Now(),
		labels:      labels,
	}
}

// RecordSeal records a successful seal of n plaintext bytes.
func (c *Collector) RecordSeal(n int, d time.Duration) {
	c.sealsTotal.Add(1)
	c.bytesSealed.Add(uint64(n))
	c.sealLatency.Observe(float64(d.Microseconds()))
}

// RecordOpen records a successful open of n plaintext bytes.
func (c *Collector) RecordOpen(n int, d time.Duration) {
	c.opensTotal.Add(1)
	c.bytesOpened.Add(uint64(n))
	c.openLatency.Observe(float64(d.Microseconds()))
}

// RecordAuthFailure increments the rejected-ciphertext counter.
func (c *Collector) RecordAuthFailure() {
	c.authFailures.Add(1)
}

// RecordSealError increments the seal error counter.
func (c *Collector) RecordSealError() {
	c.sealErrors.Add(1)
}

// Snapshot is a point-in-time view of all metrics.
type Snapshot struct {
	Timestamp time.Time
	Uptime    time.Duration

	SealsTotal  uint64
	OpensTotal  uint64
	BytesSealed uint64
	BytesOpened uint64

	AuthFailures uint64
	SealErrors   uint64

	SealLatency HistogramSummary
	OpenLatency HistogramSummary

	Labels Labels
}

// Snapshot returns a point-in-time snapshot of all metrics.
func (c *Collector) Snapshot() Snapshot {
	return Snapshot{
		Timestamp:    time.Now(),
		Uptime:       time.Since(c.createdAt),
		SealsTotal:   c.sealsTotal.Load(),
		OpensTotal:   c.opensTotal.Load(),
		BytesSealed:  c.bytesSealed.Load(),
		BytesOpened:  c.bytesOpened.Load(),
		AuthFailures: c.authFailures.Load(),
		SealErrors:   c.sealErrors.Load(),
		SealLatency:  c.sealLatency.Summary(),
		OpenLatency:  c.openLatency.Summary(),
		Labels:       c.labels,
	}
}

// Reset clears all metrics (useful for testing).
func (c *Collector) Reset() {
	c.sealsTotal.Store(0)
	c.opensTotal.Store(0)
	c.bytesSealed.Store(0)
	c.bytesOpened.Store(0)
	c.authFailures.Store(0)
	c.sealErrors.Store(0)
	c.sealLatency.Reset()
	c.openLatency.Reset()
}
