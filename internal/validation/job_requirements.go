package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/cv-matcher/internal/types"
)

// seniorityLevels lists detection patterns and the expected minimum-years
// range per level. Order matters: the first level whose pattern appears in
// the seniority string wins, so "principal engineer" detects as senior via
// the shared "principal" keyword before the principal entry is reached.
var seniorityLevels = []struct {
	level    string
	patterns []string
	minYears int
	maxYears int
}{
	{"junior", []string{"junior", "entry", "associate", "1-2", "0-2", "graduate", "trainee"}, 0, 3},
	{"mid", []string{"mid", "intermediate", "3-5", "2-5", "experienced", "regular"}, 2, 6},
	{"senior", []string{"senior", "sr", "lead", "5+", "6+", "7+", "principal", "staff"}, 5, 10},
	{"principal", []string{"principal", "architect", "director", "10+", "expert", "head"}, 8, 20},
}

// commonSoftSkills is the fixed vocabulary used to spot over-extracted soft
// skill lists.
var commonSoftSkills = map[string]struct{}{
	"communication": {}, "teamwork": {}, "leadership": {}, "problem-solving": {},
	"analytical": {}, "creative": {}, "adaptable": {}, "organized": {},
	"detail-oriented": {}, "collaborative": {}, "initiative": {},
	"time management": {}, "critical thinking": {}, "interpersonal": {},
}

const maxReasonableTechnicalSkills = 15

// ValidateJobRequirements audits a job-requirements record for internal
// consistency and completeness. Confidence: 0.3 with any critical issue, 0.5
// with more than two high-severity issues, 0.7 with more than five issues,
// otherwise 0.9 minus 0.05 per issue, clamped to [0,1].
func (v *Validator) ValidateJobRequirements(job *types.JobRequirements) *types.ValidationResult {
	var issues []types.ValidationIssue

	issues = append(issues, checkExperienceSeniority(job)...)
	issues = append(issues, checkSkillRequirements(job)...)
	issues = append(issues, checkJobCompleteness(job)...)
	issues = append(issues, checkConfidences(job.Confidences)...)

	counts := countSeverities(issues)
	var confidence float64
	switch {
	case counts.critical > 0:
		confidence = 0.3
	case counts.high > 2:
		confidence = 0.5
	case counts.total > 5:
		confidence = 0.7
	default:
		confidence = 0.9 - float64(counts.total)*0.05
	}

	return result(issues, confidence)
}

// checkExperienceSeniority flags a minimum-years requirement outside the
// expected range for the detected seniority level.
func checkExperienceSeniority(job *types.JobRequirements) []types.ValidationIssue {
	if job.SeniorityLevel == "" || job.Experience.MinimumYears <= 0 {
		return nil
	}

	seniority := strings.ToLower(job.SeniorityLevel)
	minYears := job.Experience.MinimumYears

	for _, level := range seniorityLevels {
		detected := false
		for _, pattern := range level.patterns {
			if strings.Contains(seniority, pattern) {
				detected = true
				break
			}
		}
		if !detected {
			continue
		}

		if minYears < level.minYears || minYears > level.maxYears {
			return []types.ValidationIssue{{
				Field:       "experience.minimum_years",
				IssueType:   types.IssueInconsistency,
				Description: fmt.Sprintf("Experience requirement (%d years) inconsistent with seniority level (%s)", minYears, seniority),
				Severity:    types.SeverityMedium,
				SuggestedFix: fmt.Sprintf("Expected %d-%d years for %s level",
					level.minYears, level.maxYears, level.level),
			}}
		}
		return nil
	}
	return nil
}

// checkSkillRequirements flags suspiciously long, duplicated, or off-
// vocabulary skill lists.
func checkSkillRequirements(job *types.JobRequirements) []types.ValidationIssue {
	var issues []types.ValidationIssue

	tech := job.RequiredSkills.Technical
	if len(tech) > maxReasonableTechnicalSkills {
		issues = append(issues, types.ValidationIssue{
			Field:        "required_skills.technical",
			IssueType:    types.IssueSuspicious,
			Description:  fmt.Sprintf("Very long technical skills list (%d items) may indicate over-extraction", len(tech)),
			Severity:     types.SeverityLow,
			SuggestedFix: "Review and consolidate skill requirements",
		})
	}

	if len(tech) > 0 {
		seen := make(map[string]struct{}, len(tech))
		duplicated := false
		for _, skill := range tech {
			normalized := strings.ToLower(strings.TrimSpace(skill))
			if _, dup := seen[normalized]; dup {
				duplicated = true
				break
			}
			seen[normalized] = struct{}{}
		}
		if duplicated {
			issues = append(issues, types.ValidationIssue{
				Field:        "required_skills.technical",
				IssueType:    types.IssueInvalid,
				Description:  "Duplicate technical skills detected",
				Severity:     types.SeverityMedium,
				SuggestedFix: "Remove duplicate entries",
			})
		}
	}

	soft := job.RequiredSkills.Soft
	if len(soft) > 0 {
		var nonStandard []string
		for _, skill := range soft {
			if _, ok := commonSoftSkills[strings.ToLower(skill)]; !ok {
				nonStandard = append(nonStandard, skill)
			}
		}
		if float64(len(nonStandard)) > float64(len(soft))*0.5 {
			sample := nonStandard
			if len(sample) > 3 {
				sample = sample[:3]
			}
			issues = append(issues, types.ValidationIssue{
				Field:       "required_skills.soft",
				IssueType:   types.IssueSuspicious,
				Description: fmt.Sprintf("Many non-standard soft skills: %s...", strings.Join(sample, ", ")),
				Severity:    types.SeverityLow,
			})
		}
	}

	return issues
}

// checkJobCompleteness flags missing responsibilities (high) and an entirely
// empty skill requirement (critical).
func checkJobCompleteness(job *types.JobRequirements) []types.ValidationIssue {
	var issues []types.ValidationIssue

	if len(job.Responsibilities) == 0 {
		issues = append(issues, types.ValidationIssue{
			Field:        "responsibilities",
			IssueType:    types.IssueMissing,
			Description:  "No job responsibilities extracted",
			Severity:     types.SeverityHigh,
			SuggestedFix: "Review source text for responsibility information",
		})
	}

	if len(job.RequiredSkills.Technical) == 0 && len(job.RequiredSkills.Soft) == 0 {
		issues = append(issues, types.ValidationIssue{
			Field:        "required_skills",
			IssueType:    types.IssueMissing,
			Description:  "No skills requirements extracted",
			Severity:     types.SeverityCritical,
			SuggestedFix: "Review source text for skill requirements",
		})
	}

	return issues
}

// checkConfidences flags confidence values outside [0,1].
func checkConfidences(confidences map[string]float64) []types.ValidationIssue {
	var issues []types.ValidationIssue
	for _, field := range sortedConfidenceKeys(confidences) {
		value := confidences[field]
		if value < 0 || value > 1 {
			issues = append(issues, types.ValidationIssue{
				Field:        "confidences." + field,
				IssueType:    types.IssueInvalid,
				Description:  fmt.Sprintf("Confidence score %g outside valid range [0, 1]", value),
				Severity:     types.SeverityHigh,
				SuggestedFix: "Clamp confidence to [0, 1] range",
			})
		}
	}
	return issues
}

func sortedConfidenceKeys(confidences map[string]float64) []string {
	keys := make([]string, 0, len(confidences))
	for key := range confidences {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
