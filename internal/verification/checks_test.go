package verification

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finflow/internal/document"
)

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func fullFields() document.Fields {
	return document.Fields{
		Amount:      decPtr("1000.00"),
		Date:        strPtr("2024-01-20"),
		Payee:       strPtr("John Doe"),
		Description: strPtr("Invoice payment"),
	}
}

func TestCheckCompletenessFields(t *testing.T) {
	ctx := context.Background()

	t.Run("all required fields present", func(t *testing.T) {
		result, err := CheckCompletenessFields(ctx, fullFields())
		require.NoError(t, err)
		assert.Equal(t, CompletenessComplete, result.Status)
		assert.Empty(t, result.MissingFields)
		assert.False(t, result.CheckedAt.IsZero())
	})

	t.Run("empty document lists all fields in fixed order", func(t *testing.T) {
		result, err := CheckCompletenessFields(ctx, document.Fields{})
		require.NoError(t, err)
		assert.Equal(t, CompletenessIncomplete, result.Status)
		assert.Equal(t, []string{"amount", "date", "payee", "description"}, result.MissingFields)
	})

	t.Run("empty string counts as missing", func(t *testing.T) {
		doc := fullFields()
		doc.Payee = strPtr("")
		result, err := CheckCompletenessFields(ctx, doc)
		require.NoError(t, err)
		assert.Equal(t, CompletenessIncomplete, result.Status)
		assert.Equal(t, []string{"payee"}, result.MissingFields)
	})

	t.Run("zero amount counts as missing", func(t *testing.T) {
		doc := fullFields()
		doc.Amount = decPtr("0")
		result, err := CheckCompletenessFields(ctx, doc)
		require.NoError(t, err)
		assert.Equal(t, []string{"amount"}, result.MissingFields)
	})

	t.Run("missing fields reported without duplicates in order", func(t *testing.T) {
		doc := document.Fields{Payee: strPtr("Jane Doe")}
		result, err := CheckCompletenessFields(ctx, doc)
		require.NoError(t, err)
		assert.Equal(t, []string{"amount", "date", "description"}, result.MissingFields)
	})

	t.Run("cancelled context fails the check", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := CheckCompletenessFields(cancelled, fullFields())
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDetectFraud(t *testing.T) {
	result, err := DetectFraud(context.Background(), fullFields())
	require.NoError(t, err)

	assert.Equal(t, "checked", result.Status)
	assert.Equal(t, RiskLow, result.RiskLevel)
	assert.NotNil(t, result.Flags)
	assert.Empty(t, result.Flags)
}

func TestValidateData(t *testing.T) {
	ctx := context.Background()

	t.Run("valid populated fields", func(t *testing.T) {
		result, err := ValidateData(ctx, fullFields())
		require.NoError(t, err)
		assert.Equal(t, ValidationValid, result.Status)
		assert.Empty(t, result.Errors)
	})

	t.Run("missing fields are not validation errors", func(t *testing.T) {
		result, err := ValidateData(ctx, document.Fields{})
		require.NoError(t, err)
		assert.Equal(t, ValidationValid, result.Status)
		assert.Empty(t, result.Errors)
	})

	t.Run("negative amount is invalid", func(t *testing.T) {
		doc := fullFields()
		doc.Amount = decPtr("-5")
		result, err := ValidateData(ctx, doc)
		require.NoError(t, err)
		assert.Equal(t, ValidationInvalid, result.Status)
		assert.Contains(t, result.Errors, "amount must not be negative")
	})

	t.Run("zero amount is invalid", func(t *testing.T) {
		doc := fullFields()
		doc.Amount = decPtr("0")
		result, err := ValidateData(ctx, doc)
		require.NoError(t, err)
		assert.Equal(t, ValidationInvalid, result.Status)
		assert.Contains(t, result.Errors, "amount must be greater than zero")
	})

	t.Run("unparseable date is invalid", func(t *testing.T) {
		doc := fullFields()
		doc.Date = strPtr("not-a-date")
		result, err := ValidateData(ctx, doc)
		require.NoError(t, err)
		assert.Equal(t, ValidationInvalid, result.Status)
		assert.Contains(t, result.Errors, "date is not a recognized calendar date")
	})

	t.Run("alternate date layouts accepted", func(t *testing.T) {
		doc := fullFields()
		doc.Date = strPtr("01/20/2024")
		result, err := ValidateData(ctx, doc)
		require.NoError(t, err)
		assert.Equal(t, ValidationValid, result.Status)
	})
}

func TestCheckCompliance(t *testing.T) {
	result, err := CheckComplianceRules(context.Background(), fullFields())
	require.NoError(t, err)

	assert.Equal(t, ComplianceCompliant, result.Status)
	assert.Empty(t, result.Issues)
	// Audit traceability: callers must be able to prove which rules ran.
	assert.Equal(t, []string{"AML", "KYC"}, result.RegulationsChecked)
}
