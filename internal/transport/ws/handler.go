// Package ws adapts WebSocket connections into broadcast observers. Each
// connection registers with the hub on upgrade; outbound writes happen only
// on the hub's per-subscription pump, so the single-writer rule holds.
package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"finflow/internal/broadcast"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 4096
)

// Hub is the fan-out primitive the adapter feeds.
type Hub interface {
	Register(observer broadcast.Observer) *broadcast.Subscription
	Unregister(sub *broadcast.Subscription)
	Publish(event broadcast.Event)
}

// Handler upgrades HTTP connections and bridges them to the hub.
type Handler struct {
	hub      Hub
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// New constructs the WebSocket handler. An empty allowedOrigin accepts any
// origin (development default, matching the permissive CORS posture of the
// surrounding service).
func New(hub Hub, logger *slog.Logger, allowedOrigin string) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				if allowedOrigin == "" {
					return true
				}
				return r.Header.Get("Origin") == allowedOrigin
			},
		},
	}
}

// Register mounts the WebSocket endpoint on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/ws", h.HandleConnect)
}

// HandleConnect handles GET /ws upgrade requests.
func (h *Handler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		h.logger.WarnContext(r.Context(), "websocket upgrade failed", "error", err)
		return
	}

	observer := &connObserver{conn: conn}
	sub := h.hub.Register(observer)

	h.logger.InfoContext(r.Context(), "observer connected",
		"subscription_id", sub.ID(),
	)

	// If the hub disconnects the subscription (failed delivery, slow
	// consumer, shutdown), close the socket so the read loop ends too.
	go func() {
		<-sub.Done()
		_ = conn.Close()
	}()

	h.readLoop(conn, sub)

	h.hub.Unregister(sub)
	_ = conn.Close()
	h.logger.Info("observer disconnected", "subscription_id", sub.ID())
}

// inboundMessage is what clients send over the socket.
type inboundMessage struct {
	Type string `json:"type"`
}

// readLoop consumes client messages until the connection closes. Inbound
// requests only announce that processing has started; the REST handlers do
// the actual work and publish the terminal updates.
func (h *Handler) readLoop(conn *websocket.Conn, sub *broadcast.Subscription) {
	conn.SetReadLimit(maxMessageSize)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg inboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.logger.Warn("invalid JSON received",
				"subscription_id", sub.ID(),
				"error", err,
			)
			continue
		}

		switch msg.Type {
		case "verification_request":
			h.hub.Publish(broadcast.VerificationUpdate(map[string]string{
				"status":  "processing",
				"message": "Document verification in progress",
			}))
		case "payment_request":
			h.hub.Publish(broadcast.PaymentUpdate(map[string]string{
				"status":  "processing",
				"message": "Payment processing",
			}))
		}
	}
}

// connObserver delivers hub events over one WebSocket connection. Deliver is
// only ever called from the subscription pump, serializing writes.
type connObserver struct {
	conn *websocket.Conn
}

func (o *connObserver) Deliver(event broadcast.Event) error {
	if err := o.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return o.conn.WriteJSON(event)
}
