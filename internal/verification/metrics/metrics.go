package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the verification module.
type Metrics struct {
	// Individual check runner latencies by check name
	CheckLatency *prometheus.HistogramVec

	// Verification outcomes by status
	VerificationOutcome *prometheus.CounterVec

	// Overall verification latency including aggregation
	VerifyLatency prometheus.Histogram
}

// New creates a new Metrics instance with all verification metrics registered.
func New() *Metrics {
	return &Metrics{
		CheckLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "finflow_verification_check_duration_seconds",
			Help:    "Duration of individual check runners by check name",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"check"}),

		VerificationOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "finflow_verification_outcomes_total",
			Help: "Total verification outcomes by status",
		}, []string{"status"}),

		VerifyLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "finflow_verification_verify_duration_seconds",
			Help:    "Duration of full verification including aggregation",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

// ObserveCheckLatency records the duration of one check runner.
func (m *Metrics) ObserveCheckLatency(check string, d time.Duration) {
	if m != nil {
		m.CheckLatency.WithLabelValues(check).Observe(d.Seconds())
	}
}

// IncrementOutcome records a verification outcome.
func (m *Metrics) IncrementOutcome(status string) {
	if m != nil {
		m.VerificationOutcome.WithLabelValues(status).Inc()
	}
}

// ObserveVerifyLatency records the total verification duration.
func (m *Metrics) ObserveVerifyLatency(d time.Duration) {
	if m != nil {
		m.VerifyLatency.Observe(d.Seconds())
	}
}
