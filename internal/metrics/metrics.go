// Package metrics exposes Prometheus instrumentation for the solver and
// runtime memory snapshots for the dashboard.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SolvesTotal counts solve invocations by outcome.
	SolvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "diocalc",
		Name:      "solves_total",
		Help:      "Number of bounded solve invocations, by outcome.",
	}, []string{"outcome"})

	// SolutionsEmitted counts solution pairs emitted across all solves.
	SolutionsEmitted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "diocalc",
		Name:      "solutions_emitted_total",
		Help:      "Total number of (s, t) solution pairs emitted.",
	})

	// SolveDuration observes the wall-clock duration of solves.
	SolveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "diocalc",
		Name:      "solve_duration_seconds",
		Help:      "Wall-clock duration of bounded solve invocations.",
		Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
	})
)

// Outcome label values for SolvesTotal.
const (
	OutcomeSolved    = "solved"
	OutcomeEmpty     = "empty"
	OutcomeInvalid   = "invalid_input"
	OutcomeUnbounded = "unbounded"
)

// RecordSolve updates the solve counters for one completed invocation.
func RecordSolve(outcome string, solutions int, seconds float64) {
	SolvesTotal.WithLabelValues(outcome).Inc()
	SolutionsEmitted.Add(float64(solutions))
	SolveDuration.Observe(seconds)
}
