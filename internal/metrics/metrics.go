// Package metrics holds the prometheus collectors of the drive loops.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	promNamespace = "seqcursor"
	promSubsystem = "drive_loop"
)

const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

var (
	durationBuckets = []float64{0.001, 0.002, 0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1, 2, 5, 10, 20, 60} // 15 items

	operationDurationHistogram = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: promNamespace,
		Subsystem: promSubsystem,
		Name:      "operation_duration_seconds",
		Buckets:   durationBuckets,
	}, []string{"loop"})

	outcomeCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: promNamespace,
		Subsystem: promSubsystem,
		Name:      "outcomes_total",
	}, []string{"loop", "outcome"})

	completionCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: promNamespace,
		Subsystem: promSubsystem,
		Name:      "completions_total",
	}, []string{"loop"})
)

func TrackDuration(loop string) func() {
	start := time.Now()
	return func() {
		operationDurationHistogram.WithLabelValues(loop).Observe(time.Since(start).Seconds())
	}
}

func TrackOutcome(loop string, ok bool) {
	outcome := OutcomeRejected
	if ok {
		outcome = OutcomeAccepted
	}
	outcomeCounter.WithLabelValues(loop, outcome).Inc()
}

func TrackCompletion(loop string) {
	completionCounter.WithLabelValues(loop).Inc()
}
