package verification

// Risk level thresholds. Fixed constants so scoring is reproducible:
// score < lowThreshold is low, score < mediumThreshold is medium, else high.
const (
	lowThreshold    = 0.34
	mediumThreshold = 0.67
)

// baselineScore is the placeholder score until a production policy replaces
// BaselinePolicy via the Service option.
const baselineScore = 0.2

// ScorePolicy maps a full set of check results to a risk assessment. It must
// be deterministic and total: no I/O, no randomness, exactly one assessment
// for any well-formed input. Policies are injected so production rule sets
// can replace the baseline without touching orchestration.
type ScorePolicy func(results CheckResults) RiskAssessment

// LevelForScore classifies a score under the fixed thresholds.
func LevelForScore(score float64) RiskLevel {
	switch {
	case score < lowThreshold:
		return RiskLow
	case score < mediumThreshold:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// BaselinePolicy is the default scoring policy. The score is a constant
// placeholder, but contributing factors are surfaced for every check that
// reported findings so the assessment states why, and the level is always
// derived from the score so the two can never disagree.
func BaselinePolicy(results CheckResults) RiskAssessment {
	factors := []string{}
	if results.Completeness.Status == CompletenessIncomplete {
		factors = append(factors, "incomplete_document")
	}
	if len(results.Fraud.Flags) > 0 {
		factors = append(factors, "fraud_flags")
	}
	if results.Validation.Status == ValidationInvalid {
		factors = append(factors, "validation_errors")
	}
	if results.Compliance.Status == ComplianceNonCompliant {
		factors = append(factors, "compliance_issues")
	}

	score := baselineScore
	return RiskAssessment{
		Score:   score,
		Level:   LevelForScore(score),
		Factors: factors,
	}
}
