// Package validation cross-checks extracted records and computed scores for
// internal contradictions. Findings are advisory data, never errors: a
// critical finding flags low trustworthiness but does not block a score.
package validation

import (
	"github.com/jonathan/cv-matcher/internal/types"
)

// Validator audits job requirements, CV analyses, and matching scores. It is
// read-only over its arguments and safe for concurrent use.
type Validator struct{}

// New returns a Validator.
func New() *Validator {
	return &Validator{}
}

// severityCounts tallies issues per severity for confidence calculations.
type severityCounts struct {
	critical int
	high     int
	total    int
}

func countSeverities(issues []types.ValidationIssue) severityCounts {
	var counts severityCounts
	counts.total = len(issues)
	for _, issue := range issues {
		switch issue.Severity {
		case types.SeverityCritical:
			counts.critical++
		case types.SeverityHigh:
			counts.high++
		}
	}
	return counts
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func result(issues []types.ValidationIssue, confidence float64) *types.ValidationResult {
	counts := countSeverities(issues)
	return &types.ValidationResult{
		IsValid:         counts.critical == 0,
		ConfidenceScore: clampUnit(confidence),
		Issues:          issues,
	}
}
