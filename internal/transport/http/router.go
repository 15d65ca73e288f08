// Package httptransport is the thin HTTP layer. Handlers delegate to domain
// services and publish progress events; business logic stays out of here so
// transport concerns remain isolated.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"finflow/internal/broadcast"
	"finflow/internal/document"
	"finflow/internal/payment"
	"finflow/internal/verification"
	"finflow/pkg/platform/httputil"
	"finflow/pkg/requestcontext"
)

// VerificationService runs one document verification.
type VerificationService interface {
	Verify(ctx context.Context, documentID string, fields *document.Fields) (*verification.Report, error)
}

// PaymentService processes payments and answers status lookups.
type PaymentService interface {
	Process(ctx context.Context, req payment.Request) (payment.Result, error)
	TransactionStatus(ctx context.Context, transactionID string) (payment.Transaction, error)
}

// DocumentProcessor is the extraction collaborator boundary.
type DocumentProcessor interface {
	Process(documentPath string) (*document.Extracted, error)
}

// Publisher fans events out to connected observers.
type Publisher interface {
	Publish(event broadcast.Event)
}

// Handler wires the service endpoints to their domain services.
type Handler struct {
	verifier  VerificationService
	payments  PaymentService
	documents DocumentProcessor
	publisher Publisher
	logger    *slog.Logger
}

// NewHandler constructs the HTTP handler with its dependencies.
func NewHandler(verifier VerificationService, payments PaymentService, documents DocumentProcessor, publisher Publisher, logger *slog.Logger) *Handler {
	return &Handler{
		verifier:  verifier,
		payments:  payments,
		documents: documents,
		publisher: publisher,
		logger:    logger,
	}
}

// NewRouter wires all public endpoints.
func NewRouter(h *Handler, extra ...func(chi.Router)) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(middleware.Recoverer)

	r.Get("/", h.handleRoot)
	r.Get("/health", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/documents/upload", h.handleDocumentUpload)
		r.Get("/documents/{documentID}", h.handleDocumentStatus)
		r.Post("/verify", h.handleVerify)
		r.Post("/payments/process", h.handlePaymentProcess)
		r.Get("/payments/{transactionID}", h.handlePaymentStatus)
	})

	for _, mount := range extra {
		mount(r)
	}

	return r
}

// requestID assigns each request a UUID and exposes it via requestcontext.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithRequestID(r.Context(), uuid.NewString())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to Financial Automation API",
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
