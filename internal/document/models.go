// Package document holds the extracted-field model produced by the
// extraction collaborator and read by verification. Field presence is
// tracked per field: a nil pointer means the extractor produced nothing,
// which is distinct from an empty or zero value.
package document

import (
	"time"

	"github.com/shopspring/decimal"
)

// Required field names, in the order completeness reports them.
const (
	FieldAmount      = "amount"
	FieldDate        = "date"
	FieldPayee       = "payee"
	FieldDescription = "description"
)

// RequiredFields lists the fields every financial document must carry,
// in the fixed reporting order.
func RequiredFields() []string {
	return []string{FieldAmount, FieldDate, FieldPayee, FieldDescription}
}

// Fields is the structured representation of a document's extracted data.
// It is read-only to verification; only the extraction layer constructs it.
type Fields struct {
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Date        *string          `json:"date,omitempty"`
	Payee       *string          `json:"payee,omitempty"`
	Description *string          `json:"description,omitempty"`
}

// Has reports whether the named field is present and non-empty. Zero amounts
// and blank strings count as absent, matching how extraction reports misses.
func (f Fields) Has(name string) bool {
	switch name {
	case FieldAmount:
		return f.Amount != nil && !f.Amount.IsZero()
	case FieldDate:
		return f.Date != nil && *f.Date != ""
	case FieldPayee:
		return f.Payee != nil && *f.Payee != ""
	case FieldDescription:
		return f.Description != nil && *f.Description != ""
	default:
		return false
	}
}

// Metadata describes one extraction run for audit purposes.
type Metadata struct {
	Filename         string    `json:"filename"`
	ProcessedAt      time.Time `json:"process_date"`
	ProcessorVersion string    `json:"processor_version"`
}

// Extracted is the output of processing one uploaded document.
type Extracted struct {
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
	DocumentPath string    `json:"document_path"`
	Fields       Fields    `json:"fields"`
	Metadata     Metadata  `json:"metadata"`
}
