package document

import (
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessorProcess(t *testing.T) {
	p := NewProcessor(slog.New(slog.NewTextHandler(io.Discard, nil)))

	t.Run("supported formats accepted", func(t *testing.T) {
		for _, path := range []string{"invoice.pdf", "scan.PNG", "receipts/march.jpeg", "a.tiff", "b.jpg"} {
			extracted, err := p.Process(path)
			require.NoError(t, err, path)
			assert.Equal(t, "processed", extracted.Status)
			assert.Equal(t, path, extracted.DocumentPath)
			assert.Equal(t, "1.0.0", extracted.Metadata.ProcessorVersion)
		}
	})

	t.Run("filename is extracted into metadata", func(t *testing.T) {
		extracted, err := p.Process("uploads/2024/invoice.pdf")
		require.NoError(t, err)
		assert.Equal(t, "invoice.pdf", extracted.Metadata.Filename)
	})

	t.Run("unsupported format rejected", func(t *testing.T) {
		_, err := p.Process("malware.exe")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported document format")
	})

	t.Run("missing extension rejected", func(t *testing.T) {
		_, err := p.Process("document")
		require.Error(t, err)
	})

	t.Run("extraction skeleton has no populated fields", func(t *testing.T) {
		extracted, err := p.Process("invoice.pdf")
		require.NoError(t, err)
		assert.Nil(t, extracted.Fields.Amount)
		assert.Nil(t, extracted.Fields.Date)
		assert.Nil(t, extracted.Fields.Payee)
		assert.Nil(t, extracted.Fields.Description)
	})
}

func TestFieldsHas(t *testing.T) {
	amount := decimal.NewFromInt(100)
	zero := decimal.Zero
	payee := "Jane Doe"
	empty := ""

	t.Run("absent fields", func(t *testing.T) {
		var f Fields
		for _, name := range RequiredFields() {
			assert.False(t, f.Has(name), name)
		}
	})

	t.Run("absence is distinct from empty values", func(t *testing.T) {
		f := Fields{Amount: &zero, Payee: &empty}
		assert.False(t, f.Has(FieldAmount))
		assert.False(t, f.Has(FieldPayee))
	})

	t.Run("populated fields", func(t *testing.T) {
		f := Fields{Amount: &amount, Payee: &payee}
		assert.True(t, f.Has(FieldAmount))
		assert.True(t, f.Has(FieldPayee))
		assert.False(t, f.Has(FieldDate))
	})

	t.Run("unknown field name", func(t *testing.T) {
		f := Fields{Amount: &amount}
		assert.False(t, f.Has("unknown"))
	})
}
