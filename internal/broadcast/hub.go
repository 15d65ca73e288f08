package broadcast

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"finflow/internal/broadcast/metrics"
)

// Observer receives broadcast events. Implementations may block or fail;
// the hub isolates both from other observers and from publishers.
type Observer interface {
	Deliver(event Event) error
}

// State is an observer's lifecycle position. Disconnected is terminal: a new
// connection attempt creates a new subscription, never resurrects an old one.
type State int32

const (
	StateConnecting State = iota
	StateConnected
	StateDisconnected
)

// Subscription is the handle returned by Register. Each subscription owns a
// FIFO queue drained by its own goroutine, so events reach each observer in
// publish order while a stalled observer never delays the others.
type Subscription struct {
	id       uuid.UUID
	observer Observer
	queue    chan Event
	done     chan struct{}
	state    atomic.Int32
	closing  sync.Once
}

// ID returns the subscription's unique identifier.
func (s *Subscription) ID() uuid.UUID { return s.id }

// State returns the subscription's current lifecycle state.
func (s *Subscription) State() State { return State(s.state.Load()) }

// Done is closed when the subscription disconnects, letting transports tear
// down their side of the connection.
func (s *Subscription) Done() <-chan struct{} { return s.done }

func (s *Subscription) close() {
	s.closing.Do(func() {
		s.state.Store(int32(StateDisconnected))
		close(s.done)
	})
}

// Hub maintains the observer registry and fans events out to every member.
// It is created with the service and torn down with it; it is never ambient
// global state. All methods are safe for concurrent use.
type Hub struct {
	mu        sync.RWMutex
	subs      map[uuid.UUID]*Subscription
	closed    bool
	queueSize int
	pumps     sync.WaitGroup
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// NewHub constructs an empty hub. queueSize bounds each observer's pending
// event queue; an observer that falls that far behind is disconnected.
func NewHub(logger *slog.Logger, m *metrics.Metrics, queueSize int) *Hub {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Hub{
		subs:      make(map[uuid.UUID]*Subscription),
		queueSize: queueSize,
		logger:    logger,
		metrics:   m,
	}
}

// Register adds an observer and returns its subscription handle. It never
// blocks waiting for the observer beyond starting its delivery pump.
func (h *Hub) Register(observer Observer) *Subscription {
	sub := &Subscription{
		id:       uuid.New(),
		observer: observer,
		queue:    make(chan Event, h.queueSize),
		done:     make(chan struct{}),
	}
	sub.state.Store(int32(StateConnecting))

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		sub.close()
		return sub
	}
	h.subs[sub.id] = sub
	h.mu.Unlock()

	sub.state.Store(int32(StateConnected))
	h.metrics.ObserverConnected()

	h.pumps.Add(1)
	go h.pump(sub)

	return sub
}

// Unregister removes a subscription. Removing one that is already gone is a
// no-op, not an error.
func (h *Hub) Unregister(sub *Subscription) {
	if sub == nil {
		return
	}

	h.mu.Lock()
	_, present := h.subs[sub.id]
	delete(h.subs, sub.id)
	h.mu.Unlock()

	sub.close()
	if present {
		h.metrics.ObserverDisconnected()
	}
}

// Publish delivers the event to every currently registered observer.
// Delivery is best-effort per observer: a failure disconnects that observer
// and is never reported back to the publisher.
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	if h.closed {
		h.mu.RUnlock()
		return
	}
	// Snapshot so registry mutations during fan-out cannot corrupt iteration.
	snapshot := make([]*Subscription, 0, len(h.subs))
	for _, sub := range h.subs {
		snapshot = append(snapshot, sub)
	}
	h.mu.RUnlock()

	h.metrics.IncrementPublished()

	for _, sub := range snapshot {
		select {
		case sub.queue <- event:
		case <-sub.done:
			// Already disconnected; skip.
		default:
			// Queue full: the observer is too far behind to keep ordering
			// guarantees, so disconnect it rather than block the publish.
			h.metrics.IncrementDeliveryFailure("queue_full")
			if h.logger != nil {
				h.logger.Warn("observer queue full, disconnecting",
					"subscription_id", sub.id,
				)
			}
			h.Unregister(sub)
		}
	}
}

// Close disconnects every observer and waits for delivery pumps to stop.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	subs := make([]*Subscription, 0, len(h.subs))
	for _, sub := range h.subs {
		subs = append(subs, sub)
	}
	h.subs = make(map[uuid.UUID]*Subscription)
	h.mu.Unlock()

	for _, sub := range subs {
		sub.close()
		h.metrics.ObserverDisconnected()
	}
	h.pumps.Wait()
}

// pump drains one subscription's queue sequentially, preserving per-observer
// ordering. A delivery error disconnects that observer only.
func (h *Hub) pump(sub *Subscription) {
	defer h.pumps.Done()
	for {
		select {
		case <-sub.done:
			return
		case event := <-sub.queue:
			if err := sub.observer.Deliver(event); err != nil {
				h.metrics.IncrementDeliveryFailure("deliver_error")
				if h.logger != nil {
					h.logger.Warn("event delivery failed, disconnecting observer",
						"subscription_id", sub.id,
						"error", err,
					)
				}
				h.Unregister(sub)
				return
			}
		}
	}
}
