package types

// IssueType classifies a validation finding.
type IssueType string

// Issue types produced by the validator.
const (
	IssueInconsistency IssueType = "inconsistency"
	IssueMissing       IssueType = "missing"
	IssueInvalid       IssueType = "invalid"
	IssueSuspicious    IssueType = "suspicious"
)

// Severity grades how much a finding undermines trust in the data.
type Severity string

// Severity levels, lowest to highest.
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// ValidationIssue is a single flagged inconsistency, gap, or anomaly.
type ValidationIssue struct {
	Field        string    `json:"field"`
	IssueType    IssueType `json:"issue_type"`
	Description  string    `json:"description"`
	Severity     Severity  `json:"severity"`
	SuggestedFix string    `json:"suggested_fix,omitempty"`
}

// ValidationResult is the advisory verdict of a validation pass. IsValid is
// true iff no critical issue was found; findings never block a score from
// being produced.
type ValidationResult struct {
	IsValid         bool              `json:"is_valid"`
	ConfidenceScore float64           `json:"confidence_score"`
	Issues          []ValidationIssue `json:"issues"`
}

// CriticalCount returns the number of critical issues in the result.
func (r *ValidationResult) CriticalCount() int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityCritical {
			n++
		}
	}
	return n
}
