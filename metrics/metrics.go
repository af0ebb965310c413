// Package metrics exposes the Prometheus instruments the batch driver
// and single-block compute path report against, grounded in the
// counters/histograms style used throughout cloudflared's metrics
// package. Both instruments are package-level singletons registered
// against prometheus.DefaultRegisterer at import time; a duplicate
// registration (e.g. from an importer that already registers the same
// collector name) is tolerated by reusing the already-registered
// collector instead of panicking, the same defensive pattern
// cloudflared's own registration call sites lean on.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// BlocksHashed counts SWIFFT blocks processed by any Compute or
// ComputeMultiple entry point.
var BlocksHashed = mustRegisterCounter(prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: "swifft",
	Name:      "blocks_hashed_total",
	Help:      "Total number of 256-byte blocks hashed.",
}))

// BatchDuration observes the wall-clock time of ComputeMultiple calls,
// labeled by whether the call ran the parallel or serial path.
var BatchDuration = mustRegisterHistogramVec(prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "swifft",
	Name:      "batch_duration_seconds",
	Help:      "Duration of ComputeMultiple calls.",
	Buckets:   prometheus.DefBuckets,
}, []string{"path"}))

func mustRegisterCounter(c prometheus.Counter) prometheus.Counter {
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Counter)
		}
		panic(err)
	}
	return c
}

func mustRegisterHistogramVec(h *prometheus.HistogramVec) *prometheus.HistogramVec {
	if err := prometheus.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.HistogramVec)
		}
		panic(err)
	}
	return h
}

// BatchTimer measures one ComputeMultiple call and reports it to
// BatchDuration on ObserveDuration.
type BatchTimer struct {
	start time.Time
	path  string
}

// StartBatch begins timing a batch call; parallel indicates whether the
// call is expected to take the parallel fan-out path.
func StartBatch(parallel bool) *BatchTimer {
	path := "serial"
	if parallel {
		path = "parallel"
	}
	return &BatchTimer{start: time.Now(), path: path}
}

// ObserveDuration records the elapsed time since StartBatch.
func (t *BatchTimer) ObserveDuration() {
	BatchDuration.WithLabelValues(t.path).Observe(time.Since(t.start).Seconds())
}
