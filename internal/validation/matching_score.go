package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-matcher/internal/types"
)

const (
	// maxOverallComponentDrift is the allowed gap between the overall score
	// and the plain average of the five dimension scores. The overall is
	// weighted, so some drift is expected; more than this suggests a
	// composition bug.
	maxOverallComponentDrift = 20

	minExplanationLength = 10

	scoreBaseConfidence            = 0.85
	scoreCriticalConfidencePenalty = 0.15
	scoreIssueConfidencePenalty    = 0.02
)

// ValidateMatchingScore audits a computed score against the records it was
// derived from. Confidence: 0.85 − 0.15 per critical issue − 0.02 per issue,
// clamped to [0,1].
func (v *Validator) ValidateMatchingScore(score *types.MatchingScore, cv *types.CVAnalysis, job *types.JobRequirements) *types.ValidationResult {
	var issues []types.ValidationIssue

	issues = append(issues, checkComponentConsistency(score)...)
	issues = append(issues, checkMatchedSkillsPresence(score, cv, job)...)
	issues = append(issues, checkExplanationQuality(score)...)

	counts := countSeverities(issues)
	confidence := scoreBaseConfidence -
		float64(counts.critical)*scoreCriticalConfidencePenalty -
		float64(counts.total)*scoreIssueConfidencePenalty

	return result(issues, confidence)
}

// checkComponentConsistency flags an overall score far from the component
// average.
func checkComponentConsistency(score *types.MatchingScore) []types.ValidationIssue {
	components := []int{
		score.TechnicalSkillsScore,
		score.SoftSkillsScore,
		score.ExperienceScore,
		score.QualificationsScore,
		score.KeyResponsibilitiesScore,
	}

	sum := 0
	for _, component := range components {
		sum += component
	}
	average := float64(sum) / float64(len(components))

	drift := average - float64(score.OverallMatchScore)
	if drift < 0 {
		drift = -drift
	}
	if drift > maxOverallComponentDrift {
		return []types.ValidationIssue{{
			Field:       "overall_match_score",
			IssueType:   types.IssueInconsistency,
			Description: fmt.Sprintf("Overall score (%d) differs significantly from component average (%.1f)", score.OverallMatchScore, average),
			Severity:    types.SeverityMedium,
		}}
	}
	return nil
}

// checkMatchedSkillsPresence verifies, when a producer populated the optional
// matched-skills list, that every entry appears (case-insensitively) in both
// the candidate's and the job's technical skills.
func checkMatchedSkillsPresence(score *types.MatchingScore, cv *types.CVAnalysis, job *types.JobRequirements) []types.ValidationIssue {
	if len(score.MatchedSkills) == 0 {
		return nil
	}

	cvSkills := lowerStringSet(cv.KeyInformation.TechnicalSkills)
	jobSkills := lowerStringSet(job.RequiredSkills.Technical)

	var issues []types.ValidationIssue
	for _, skill := range score.MatchedSkills {
		lowered := strings.ToLower(skill)
		if _, ok := cvSkills[lowered]; !ok {
			issues = append(issues, types.ValidationIssue{
				Field:       "matched_skills",
				IssueType:   types.IssueInvalid,
				Description: fmt.Sprintf("Matched skill %q not found in CV", lowered),
				Severity:    types.SeverityHigh,
			})
		}
		if _, ok := jobSkills[lowered]; !ok {
			issues = append(issues, types.ValidationIssue{
				Field:       "matched_skills",
				IssueType:   types.IssueInvalid,
				Description: fmt.Sprintf("Matched skill %q not found in job requirements", lowered),
				Severity:    types.SeverityHigh,
			})
		}
	}
	return issues
}

// checkExplanationQuality flags overall, technical, and experience
// explanations too short to be useful.
func checkExplanationQuality(score *types.MatchingScore) []types.ValidationIssue {
	explanations := []struct {
		field string
		text  string
	}{
		{"overall_explanation", score.OverallExplanation},
		{"technical_skills_explanation", score.TechnicalSkillsExplanation},
		{"experience_explanation", score.ExperienceExplanation},
	}

	var issues []types.ValidationIssue
	for _, explanation := range explanations {
		if len(strings.TrimSpace(explanation.text)) < minExplanationLength {
			issues = append(issues, types.ValidationIssue{
				Field:       explanation.field,
				IssueType:   types.IssueMissing,
				Description: "Very brief explanation provided",
				Severity:    types.SeverityLow,
			})
		}
	}
	return issues
}

func lowerStringSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = struct{}{}
	}
	return set
}
