package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	dErrors "finflow/pkg/domain-errors"
	"finflow/pkg/platform/httputil"
	"finflow/pkg/requestcontext"
)

// handleDocumentUpload handles POST /api/documents/upload requests. The
// extraction collaborator validates the format and returns the extracted
// field skeleton.
func (h *Handler) handleDocumentUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[UploadDocumentRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	extracted, err := h.documents.Process(req.DocumentPath)
	if err != nil {
		h.logger.WarnContext(ctx, "document processing rejected",
			"request_id", requestID,
			"document_path", req.DocumentPath,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, extracted)
}

// handleDocumentStatus handles GET /api/documents/{documentID} requests.
// Document storage is out of scope; this reports the pass-through status the
// surrounding workflow expects.
func (h *Handler) handleDocumentStatus(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "documentID")
	if documentID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "document id is required"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"document_id": documentID,
		"status":      "processing",
	})
}
