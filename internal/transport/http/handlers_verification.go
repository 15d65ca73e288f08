package httptransport

import (
	"net/http"
	"time"

	"finflow/internal/broadcast"
	"finflow/pkg/platform/httputil"
	"finflow/pkg/requestcontext"
)

// handleVerify handles POST /api/verify requests.
func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[VerifyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	report, err := h.verifier.Verify(ctx, req.DocumentID, req.Fields)
	if err != nil {
		h.logger.ErrorContext(ctx, "verification request failed",
			"request_id", requestID,
			"document_id", req.DocumentID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	// The orchestrator stays pure; progress fan-out happens here.
	h.publisher.Publish(broadcast.VerificationUpdate(report))

	h.logger.InfoContext(ctx, "verification request completed",
		"request_id", requestID,
		"document_id", req.DocumentID,
		"risk_level", report.Risk.Level,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, report)
}
