package generator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Attempt outcomes used as the "outcome" label.
const (
	OutcomeSuccess     = "success"
	OutcomeExhausted   = "exhausted"
	OutcomeInvalid     = "invalid"
	OutcomeUnknown     = "unknown_vertex"
	OutcomeUnreachable = "unreachable"
)

// Metrics holds the generator's Prometheus collectors.
type Metrics struct {
	// attempts counts start-word attempts by outcome.
	attempts *prometheus.CounterVec

	// restarts observes WalkResult.Restarts per walk.
	restarts prometheus.Histogram

	// filtered counts ladders dropped by the hardness filter.
	filtered prometheus.Counter

	// kept reports the size of the last emitted batch.
	kept prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg. A nil reg
// yields working, unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		attempts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wordladder",
			Subsystem: "generator",
			Name:      "attempts_total",
			Help:      "Start-word attempts by outcome",
		}, []string{"outcome"}),
		restarts: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "wordladder",
			Subsystem: "generator",
			Name:      "walk_restarts",
			Help:      "Restarts per path walk",
			Buckets:   []float64{1, 2, 3, 5, 8, 13},
		}),
		filtered: f.NewCounter(prometheus.CounterOpts{
			Namespace: "wordladder",
			Subsystem: "generator",
			Name:      "ladders_filtered_total",
			Help:      "Ladders dropped by the hardness filter",
		}),
		kept: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "wordladder",
			Subsystem: "generator",
			Name:      "ladders_kept",
			Help:      "Ladders in the last emitted batch",
		}),
	}
}

func (m *Metrics) attempt(outcome string) { m.attempts.WithLabelValues(outcome).Inc() }
