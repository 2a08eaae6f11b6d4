package observability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-matcher/internal/types"
)

func TestPrintMatchingScore(t *testing.T) {
	var out strings.Builder
	printer := NewPrinter(&out)

	printer.PrintMatchingScore(&types.MatchingScore{
		OverallMatchScore:    62,
		OverallExplanation:   "Weighted blend",
		TechnicalSkillsScore: 66,
		SoftSkillsScore:      91,
		ExperienceScore:      42,
		Strengths:            []string{"python", "communication"},
		Gaps:                 []string{"Experience below requirements"},
	})

	rendered := out.String()
	assert.Contains(t, rendered, "Matching Score")
	assert.Contains(t, rendered, "62")
	assert.Contains(t, rendered, "Strengths:")
	assert.Contains(t, rendered, "- python")
	assert.Contains(t, rendered, "Gaps:")
}

func TestPrintMatchingScore_NilIsNoop(t *testing.T) {
	var out strings.Builder
	NewPrinter(&out).PrintMatchingScore(nil)
	assert.Empty(t, out.String())
}

func TestPrintValidationResult(t *testing.T) {
	var out strings.Builder
	printer := NewPrinter(&out)

	issues := make([]types.ValidationIssue, 0, maxItemsToShow+2)
	for i := 0; i < maxItemsToShow+2; i++ {
		issues = append(issues, types.ValidationIssue{
			Field:       "required_skills",
			IssueType:   types.IssueSuspicious,
			Description: "Suspicious entry",
			Severity:    types.SeverityLow,
		})
	}

	printer.PrintValidationResult("job requirements", &types.ValidationResult{
		IsValid:         true,
		ConfidenceScore: 0.85,
		Issues:          issues,
	})

	rendered := out.String()
	assert.Contains(t, rendered, "Validation: job requirements")
	assert.Contains(t, rendered, "Confidence: 0.85")
	assert.Contains(t, rendered, "... and 2 more")
}

func TestPrintValidationResult_NilIsNoop(t *testing.T) {
	var out strings.Builder
	NewPrinter(&out).PrintValidationResult("anything", nil)
	assert.Empty(t, out.String())
}
