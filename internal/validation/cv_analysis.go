package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-matcher/internal/types"
)

var (
	positiveSentimentWords = []string{"excellent", "strong", "good", "perfect", "ideal", "outstanding"}
	negativeSentimentWords = []string{"poor", "weak", "limited", "lacks", "insufficient", "gap"}
)

const (
	highFitScore                = 8
	lowFitScore                 = 4
	maxReasonableCVSkills       = 20
	minExpectedRecommendations  = 3
	cvBaseConfidence            = 0.8
	cvCriticalConfidencePenalty = 0.2
	cvIssueConfidencePenalty    = 0.03
)

// ValidateCVAnalysis audits a candidate analysis for internal consistency.
// Confidence: 0.8 − 0.2 per critical issue − 0.03 per issue, clamped to [0,1].
func (v *Validator) ValidateCVAnalysis(cv *types.CVAnalysis) *types.ValidationResult {
	var issues []types.ValidationIssue

	issues = append(issues, checkScoreJustification(cv)...)
	issues = append(issues, checkCVSkillsQuality(cv)...)
	issues = append(issues, checkRecommendationsQuality(cv)...)

	counts := countSeverities(issues)
	confidence := cvBaseConfidence -
		float64(counts.critical)*cvCriticalConfidencePenalty -
		float64(counts.total)*cvIssueConfidencePenalty

	return result(issues, confidence)
}

// checkScoreJustification flags a fit score whose justification reads with
// the opposite sentiment.
func checkScoreJustification(cv *types.CVAnalysis) []types.ValidationIssue {
	score := cv.CandidateSuitability.OverallFitScore
	justification := strings.ToLower(cv.CandidateSuitability.Justification)

	positive := countContained(justification, positiveSentimentWords)
	negative := countContained(justification, negativeSentimentWords)

	switch {
	case score >= highFitScore && negative > positive:
		return []types.ValidationIssue{{
			Field:       "candidate_suitability",
			IssueType:   types.IssueInconsistency,
			Description: fmt.Sprintf("High fit score (%d) but negative justification language", score),
			Severity:    types.SeverityMedium,
		}}
	case score <= lowFitScore && positive > negative:
		return []types.ValidationIssue{{
			Field:       "candidate_suitability",
			IssueType:   types.IssueInconsistency,
			Description: fmt.Sprintf("Low fit score (%d) but positive justification language", score),
			Severity:    types.SeverityMedium,
		}}
	}
	return nil
}

// checkCVSkillsQuality flags implausibly long extracted skill lists.
func checkCVSkillsQuality(cv *types.CVAnalysis) []types.ValidationIssue {
	tech := cv.KeyInformation.TechnicalSkills
	if len(tech) > maxReasonableCVSkills {
		return []types.ValidationIssue{{
			Field:       "key_information.technical_skills",
			IssueType:   types.IssueSuspicious,
			Description: fmt.Sprintf("Unusually long technical skills list (%d items)", len(tech)),
			Severity:    types.SeverityLow,
		}}
	}
	return nil
}

// checkRecommendationsQuality flags analyses carrying almost no actionable
// advice across the three recommendation lists.
func checkRecommendationsQuality(cv *types.CVAnalysis) []types.ValidationIssue {
	recommendations := cv.Recommendations
	total := len(recommendations.Tailoring) +
		len(recommendations.InterviewFocus) +
		len(recommendations.CareerDevelopment)
	if total < minExpectedRecommendations {
		return []types.ValidationIssue{{
			Field:       "recommendations",
			IssueType:   types.IssueMissing,
			Description: "Very few recommendations provided",
			Severity:    types.SeverityMedium,
		}}
	}
	return nil
}

func countContained(text string, words []string) int {
	count := 0
	for _, word := range words {
		if strings.Contains(text, word) {
			count++
		}
	}
	return count
}
