package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for generation runs
type Metrics struct {
	runs       *prometheus.CounterVec
	attempts   prometheus.Histogram
	duplicates prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "harnesspair",
			Name:      "generation_runs_total",
			Help:      "Generation runs by outcome.",
		}, []string{"outcome"}),
		attempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "harnesspair",
			Name:      "generation_attempts",
			Help:      "Pair attempts needed per successful run.",
			Buckets:   []float64{3, 4, 5, 8, 12, 20, 50, 100, 400},
		}),
		duplicates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "harnesspair",
			Name:      "duplicate_pairs_total",
			Help:      "Generated pairs flagged with a duplicate housing.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.runs, m.attempts, m.duplicates)
	}
	return m
}

func (m *Metrics) observeSuccess(attempts, duplicates int) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues("success").Inc()
	m.attempts.Observe(float64(attempts))
	m.duplicates.Add(float64(duplicates))
}

func (m *Metrics) observeFailure(outcome string) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(outcome).Inc()
}
