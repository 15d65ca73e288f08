package document

import (
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	dErrors "finflow/pkg/domain-errors"
)

const processorVersion = "1.0.0"

// supportedFormats are the upload extensions the extraction pipeline accepts.
var supportedFormats = []string{"pdf", "png", "jpg", "jpeg", "tiff"}

// Processor is the extraction collaborator boundary. OCR and field extraction
// run out of process; this implementation validates the format and returns an
// empty field skeleton so the rest of the pipeline has a stable contract.
type Processor struct {
	logger *slog.Logger
}

// NewProcessor constructs the extraction stub.
func NewProcessor(logger *slog.Logger) *Processor {
	return &Processor{logger: logger}
}

// SupportedFormats returns the accepted upload extensions.
func (p *Processor) SupportedFormats() []string {
	out := make([]string, len(supportedFormats))
	copy(out, supportedFormats)
	return out
}

// Process validates the document format and returns the extraction skeleton.
func (p *Processor) Process(documentPath string) (*Extracted, error) {
	if !p.validFormat(documentPath) {
		return nil, dErrors.New(dErrors.CodeValidation,
			"unsupported document format, supported formats: "+strings.Join(supportedFormats, ", "))
	}

	now := time.Now().UTC()
	return &Extracted{
		Status:       "processed",
		Timestamp:    now,
		DocumentPath: documentPath,
		Fields:       Fields{},
		Metadata: Metadata{
			Filename:         filepath.Base(documentPath),
			ProcessedAt:      now,
			ProcessorVersion: processorVersion,
		},
	}, nil
}

func (p *Processor) validFormat(documentPath string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(documentPath), "."))
	for _, format := range supportedFormats {
		if ext == format {
			return true
		}
	}
	return false
}
