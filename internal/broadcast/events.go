// Package broadcast is a pure fan-out primitive: it owns the set of connected
// observers and delivers events to all of them, with no knowledge of
// verification or payment semantics beyond carrying the payload.
package broadcast

// EventType discriminates the broadcast event union.
type EventType string

const (
	EventVerificationUpdate EventType = "verification_update"
	EventPaymentUpdate      EventType = "payment_update"
)

// Event is a transient message delivered to every registered observer.
// Events are not stored; the hub owns observers, not events.
type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload"`
}

// VerificationUpdate builds a verification progress event.
func VerificationUpdate(payload any) Event {
	return Event{Type: EventVerificationUpdate, Payload: payload}
}

// PaymentUpdate builds a payment progress event.
func PaymentUpdate(payload any) Event {
	return Event{Type: EventPaymentUpdate, Payload: payload}
}
