package httptransport

import (
	"strings"

	"github.com/shopspring/decimal"

	"finflow/internal/document"
	"finflow/internal/payment"
	dErrors "finflow/pkg/domain-errors"
)

// VerifyRequest is the HTTP request body for POST /api/verify.
type VerifyRequest struct {
	DocumentID string           `json:"document_id"`
	Fields     *document.Fields `json:"fields"`
}

// Validate validates the request. A nil fields container is passed through so
// the orchestrator can reject it as malformed input; partially populated
// fields are a valid request.
func (r *VerifyRequest) Validate() error {
	r.DocumentID = strings.TrimSpace(r.DocumentID)
	if r.DocumentID == "" {
		return dErrors.New(dErrors.CodeValidation, "document_id is required")
	}
	return nil
}

// ProcessPaymentRequest is the HTTP request body for POST /api/payments/process.
type ProcessPaymentRequest struct {
	Amount        *decimal.Decimal `json:"amount"`
	Currency      string           `json:"currency"`
	PaymentMethod string           `json:"payment_method"`

	// Parsed value (populated by Validate)
	parsed payment.Request
}

// Validate checks required-field presence; amount positivity and method
// support are the payment service's rules.
func (r *ProcessPaymentRequest) Validate() error {
	if r.Amount == nil {
		return dErrors.New(dErrors.CodeValidation, "missing required field: amount")
	}
	r.Currency = strings.TrimSpace(r.Currency)
	if r.Currency == "" {
		return dErrors.New(dErrors.CodeValidation, "missing required field: currency")
	}
	r.PaymentMethod = strings.TrimSpace(r.PaymentMethod)
	if r.PaymentMethod == "" {
		return dErrors.New(dErrors.CodeValidation, "missing required field: payment_method")
	}

	r.parsed = payment.Request{
		Amount:   *r.Amount,
		Currency: r.Currency,
		Method:   payment.Method(r.PaymentMethod),
	}
	return nil
}

// Parsed returns the validated payment request.
func (r *ProcessPaymentRequest) Parsed() payment.Request {
	return r.parsed
}

// UploadDocumentRequest is the HTTP request body for POST /api/documents/upload.
type UploadDocumentRequest struct {
	DocumentPath string `json:"document_path"`
}

// Validate validates the request.
func (r *UploadDocumentRequest) Validate() error {
	r.DocumentPath = strings.TrimSpace(r.DocumentPath)
	if r.DocumentPath == "" {
		return dErrors.New(dErrors.CodeValidation, "document_path is required")
	}
	return nil
}
