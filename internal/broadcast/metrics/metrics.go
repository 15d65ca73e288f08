package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the broadcast hub.
type Metrics struct {
	// Currently connected observers
	ObserversConnected prometheus.Gauge

	// Events accepted by Publish
	EventsPublished prometheus.Counter

	// Per-observer delivery failures by cause
	DeliveryFailures *prometheus.CounterVec
}

// New creates a new Metrics instance with all broadcast metrics registered.
func New() *Metrics {
	return &Metrics{
		ObserversConnected: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "finflow_broadcast_observers_connected",
			Help: "Number of currently connected broadcast observers",
		}),

		EventsPublished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finflow_broadcast_events_published_total",
			Help: "Total events accepted for fan-out",
		}),

		DeliveryFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "finflow_broadcast_delivery_failures_total",
			Help: "Per-observer delivery failures by cause",
		}, []string{"cause"}), // cause: "queue_full", "deliver_error"
	}
}

// ObserverConnected records a new observer.
func (m *Metrics) ObserverConnected() {
	if m != nil {
		m.ObserversConnected.Inc()
	}
}

// ObserverDisconnected records an observer removal.
func (m *Metrics) ObserverDisconnected() {
	if m != nil {
		m.ObserversConnected.Dec()
	}
}

// IncrementPublished records an accepted event.
func (m *Metrics) IncrementPublished() {
	if m != nil {
		m.EventsPublished.Inc()
	}
}

// IncrementDeliveryFailure records a failed delivery to one observer.
func (m *Metrics) IncrementDeliveryFailure(cause string) {
	if m != nil {
		m.DeliveryFailures.WithLabelValues(cause).Inc()
	}
}
