// Package verification runs the independent document checks concurrently and
// aggregates them into a single immutable report with a derived risk
// assessment. Rule logic is pure; the orchestrator owns only control flow.
package verification

import "time"

// Check names, also the fixed aggregation key order of a report.
const (
	CheckCompleteness = "completeness_check"
	CheckFraud        = "fraud_detection"
	CheckValidation   = "data_validation"
	CheckCompliance   = "compliance_check"
)

// CompletenessStatus is the outcome of the completeness check.
type CompletenessStatus string

const (
	CompletenessComplete   CompletenessStatus = "complete"
	CompletenessIncomplete CompletenessStatus = "incomplete"
)

// ValidationStatus is the outcome of the data validation check.
type ValidationStatus string

const (
	ValidationValid   ValidationStatus = "valid"
	ValidationInvalid ValidationStatus = "invalid"
)

// ComplianceStatus is the outcome of the compliance check.
type ComplianceStatus string

const (
	ComplianceCompliant    ComplianceStatus = "compliant"
	ComplianceNonCompliant ComplianceStatus = "non_compliant"
)

// RiskLevel is the discrete risk classification shared by fraud detection
// and the overall assessment.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// CompletenessResult reports which required fields are missing.
// MissingFields preserves the fixed required-field order.
type CompletenessResult struct {
	Status        CompletenessStatus `json:"status"`
	MissingFields []string           `json:"missing_fields"`
	CheckedAt     time.Time          `json:"timestamp"`
}

// FraudResult reports the fraud screening outcome. The production rule set is
// external; the contract is stable regardless.
type FraudResult struct {
	Status    string    `json:"status"`
	RiskLevel RiskLevel `json:"risk_level"`
	Flags     []string  `json:"flags"`
	CheckedAt time.Time `json:"timestamp"`
}

// ValidationResult reports internal consistency errors of populated fields.
type ValidationResult struct {
	Status    ValidationStatus `json:"status"`
	Errors    []string         `json:"validation_errors"`
	CheckedAt time.Time        `json:"timestamp"`
}

// ComplianceResult reports regulatory issues. RegulationsChecked records
// which rules actually ran so callers can prove coverage.
type ComplianceResult struct {
	Status             ComplianceStatus `json:"status"`
	Issues             []string         `json:"compliance_issues"`
	RegulationsChecked []string         `json:"regulations_checked"`
	CheckedAt          time.Time        `json:"timestamp"`
}

// CheckResults holds exactly one result per check kind. The struct shape
// (rather than a map) fixes the aggregation key order and makes a partial
// set unrepresentable in a successful report.
type CheckResults struct {
	Completeness CompletenessResult `json:"completeness_check"`
	Fraud        FraudResult        `json:"fraud_detection"`
	Validation   ValidationResult   `json:"data_validation"`
	Compliance   ComplianceResult   `json:"compliance_check"`
}

// RiskAssessment is the overall risk derived from the full set of results.
// Score is in [0,1]; Level always equals LevelForScore(Score).
type RiskAssessment struct {
	Score   float64   `json:"score"`
	Level   RiskLevel `json:"risk_level"`
	Factors []string  `json:"factors"`
}

// Report is the aggregated, immutable outcome of one verification run.
type Report struct {
	DocumentID  string         `json:"document_id"`
	Status      string         `json:"status"`
	Checks      CheckResults   `json:"verification_results"`
	Risk        RiskAssessment `json:"overall_risk_score"`
	CompletedAt time.Time      `json:"timestamp"`
}
