package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"finflow/internal/broadcast"
	"finflow/internal/payment"
	dErrors "finflow/pkg/domain-errors"
	"finflow/pkg/platform/httputil"
	"finflow/pkg/requestcontext"
)

// handlePaymentProcess handles POST /api/payments/process requests.
func (h *Handler) handlePaymentProcess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ProcessPaymentRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.payments.Process(ctx, req.Parsed())
	if err != nil {
		// Rejected before any transaction record; nothing is broadcast.
		h.logger.WarnContext(ctx, "payment request rejected",
			"request_id", requestID,
			"payment_method", req.PaymentMethod,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.publisher.Publish(broadcast.PaymentUpdate(result))

	status := http.StatusOK
	if result.Status == payment.StatusError {
		status = http.StatusBadGateway
	}
	httputil.WriteJSON(w, status, result)
}

// handlePaymentStatus handles GET /api/payments/{transactionID} requests.
func (h *Handler) handlePaymentStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	transactionID := chi.URLParam(r, "transactionID")
	if transactionID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "transaction id is required"))
		return
	}

	tx, err := h.payments.TransactionStatus(ctx, transactionID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, tx)
}
