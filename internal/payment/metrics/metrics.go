package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the payment module.
type Metrics struct {
	// Payment outcomes by status
	PaymentOutcome *prometheus.CounterVec
}

// New creates a new Metrics instance with all payment metrics registered.
func New() *Metrics {
	return &Metrics{
		PaymentOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "finflow_payment_outcomes_total",
			Help: "Total payment processing outcomes by status",
		}, []string{"status"}), // status: "success", "error", "rejected"
	}
}

// IncrementOutcome records a payment outcome.
func (m *Metrics) IncrementOutcome(status string) {
	if m != nil {
		m.PaymentOutcome.WithLabelValues(status).Inc()
	}
}
