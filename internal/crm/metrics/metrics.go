package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the CRM segmentation module.
type Metrics struct {
	// Source fetch latencies by source
	SourceFetchLatency *prometheus.HistogramVec

	// Full segmentation latency, cache hits included
	SegmentationLatency prometheus.Histogram

	DroppedSignals *prometheus.CounterVec

	// Population size of the last computed run
	CustomersScored prometheus.Gauge

	SnapshotCache *prometheus.CounterVec
}

// New creates a new Metrics instance with all CRM module metrics registered.
func New() *Metrics {
	return &Metrics{
		SourceFetchLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "barhub_crm_source_fetch_duration_seconds",
			Help:    "Duration of source fetches by source",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"source"}), // source: "ticketing", "reservation", "pos", "calibration"

		SegmentationLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "barhub_crm_segmentation_duration_seconds",
			Help:    "Duration of a segmentation query including source fetches",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),

		DroppedSignals: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "barhub_crm_dropped_signals_total",
			Help: "Signals skipped during identity resolution by source and reason",
		}, []string{"source", "reason"}),

		CustomersScored: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "barhub_crm_customers_scored",
			Help: "Unified customers scored in the most recent computed run",
		}),

		SnapshotCache: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "barhub_crm_snapshot_cache_total",
			Help: "Snapshot cache lookups by result",
		}, []string{"result"}), // result: "hit", "miss", "error"
	}
}

// ObserveSourceFetch records the duration of fetching one source.
func (m *Metrics) ObserveSourceFetch(source string, d time.Duration) {
	if m != nil {
		m.SourceFetchLatency.WithLabelValues(source).Observe(d.Seconds())
	}
}

// ObserveSegmentation records the total query duration.
func (m *Metrics) ObserveSegmentation(d time.Duration) {
	if m != nil {
		m.SegmentationLatency.Observe(d.Seconds())
	}
}

// AddDroppedSignals counts skipped signals.
func (m *Metrics) AddDroppedSignals(source, reason string, n int) {
	if m != nil {
		m.DroppedSignals.WithLabelValues(source, reason).Add(float64(n))
	}
}

// SetCustomersScored records the population size of a computed run.
func (m *Metrics) SetCustomersScored(n int) {
	if m != nil {
		m.CustomersScored.Set(float64(n))
	}
}

// IncrementSnapshotCache records one cache lookup outcome.
func (m *Metrics) IncrementSnapshotCache(result string) {
	if m != nil {
		m.SnapshotCache.WithLabelValues(result).Inc()
	}
}
