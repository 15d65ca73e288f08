package verification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLevelForScore(t *testing.T) {
	assert.Equal(t, RiskLow, LevelForScore(0.0))
	assert.Equal(t, RiskLow, LevelForScore(0.33))
	assert.Equal(t, RiskMedium, LevelForScore(0.34))
	assert.Equal(t, RiskMedium, LevelForScore(0.5))
	assert.Equal(t, RiskHigh, LevelForScore(0.67))
	assert.Equal(t, RiskHigh, LevelForScore(0.9))
	assert.Equal(t, RiskHigh, LevelForScore(1.0))
}

func TestLevelForScoreMonotonic(t *testing.T) {
	order := map[RiskLevel]int{RiskLow: 0, RiskMedium: 1, RiskHigh: 2}

	previous := RiskLow
	for score := 0.0; score <= 1.0; score += 0.01 {
		level := LevelForScore(score)
		assert.GreaterOrEqual(t, order[level], order[previous],
			"level must never decrease as score rises (score=%f)", score)
		previous = level
	}
}

func TestBaselinePolicy(t *testing.T) {
	cleanResults := func() CheckResults {
		now := time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)
		return CheckResults{
			Completeness: CompletenessResult{Status: CompletenessComplete, MissingFields: []string{}, CheckedAt: now},
			Fraud:        FraudResult{Status: "checked", RiskLevel: RiskLow, Flags: []string{}, CheckedAt: now},
			Validation:   ValidationResult{Status: ValidationValid, Errors: []string{}, CheckedAt: now},
			Compliance:   ComplianceResult{Status: ComplianceCompliant, Issues: []string{}, RegulationsChecked: []string{"AML", "KYC"}, CheckedAt: now},
		}
	}

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		results := cleanResults()
		first := BaselinePolicy(results)
		second := BaselinePolicy(results)
		assert.Equal(t, first, second)
	})

	t.Run("clean results yield no factors", func(t *testing.T) {
		assessment := BaselinePolicy(cleanResults())
		assert.Empty(t, assessment.Factors)
		assert.GreaterOrEqual(t, assessment.Score, 0.0)
		assert.LessOrEqual(t, assessment.Score, 1.0)
	})

	t.Run("level always agrees with score", func(t *testing.T) {
		assessment := BaselinePolicy(cleanResults())
		assert.Equal(t, LevelForScore(assessment.Score), assessment.Level)
	})

	t.Run("findings surface as factors", func(t *testing.T) {
		results := cleanResults()
		results.Completeness.Status = CompletenessIncomplete
		results.Completeness.MissingFields = []string{"amount"}
		results.Validation.Status = ValidationInvalid
		results.Validation.Errors = []string{"amount must be greater than zero"}

		assessment := BaselinePolicy(results)
		assert.Contains(t, assessment.Factors, "incomplete_document")
		assert.Contains(t, assessment.Factors, "validation_errors")
		assert.Equal(t, LevelForScore(assessment.Score), assessment.Level)
	})
}
