package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/cv-matcher/internal/types"
)

const (
	// Qualifications and responsibilities use fixed placeholder scores until
	// a dedicated matcher exists. Known simplification, surfaced in the
	// explanations.
	placeholderQualificationsScore   = 75
	placeholderResponsibilitiesScore = 70

	// Dimension scores below this contribute a gap flag.
	gapThreshold = 60

	// Experience scores below this add a years suggestion when the job sets
	// a minimum.
	experienceSuggestionThreshold = 70

	maxStrengths = 10
)

// certificationAliases maps well-known certification shorthand to one
// normalized name so "AWS CCP" on a CV matches "AWS Cloud Practitioner" in a
// posting.
var certificationAliases = map[string]string{
	"aws ccp":                          "aws cloud practitioner",
	"aws cloud practitioner":           "aws cloud practitioner",
	"aws certified cloud practitioner": "aws cloud practitioner",
	"pmp":                              "project management professional",
	"project management professional":  "project management professional",
	"prince2":                          "prince2 practitioner",
	"prince2 practitioner":             "prince2 practitioner",
	"scrum master":                     "scrum master",
	"psm":                              "scrum master",
	"psm i":                            "scrum master",
	"az-900":                           "microsoft azure fundamentals",
	"azure fundamentals":               "microsoft azure fundamentals",
	"microsoft azure fundamentals":     "microsoft azure fundamentals",
}

func normalizeCertification(name string) string {
	cleaned := strings.ToLower(strings.TrimSpace(name))
	if cleaned == "" {
		return ""
	}
	if canonical, ok := certificationAliases[cleaned]; ok {
		return canonical
	}
	return cleaned
}

func certificationSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		if normalized := normalizeCertification(item); normalized != "" {
			set[normalized] = struct{}{}
		}
	}
	return set
}

// Score produces the weighted MatchingScore for one candidate against one
// job. It is deterministic for identical inputs and performs no I/O, so
// callers may cache the result by a content hash of the two records.
func (e *Engine) Score(cv *types.CVAnalysis, job *types.JobRequirements) *types.MatchingScore {
	industry := InferIndustry(job)
	profile := e.profiles.For(industry)
	confidences := job.Confidences

	techScore, techExplanation, matchedTech := e.technicalSkillsScore(
		cv.KeyInformation.TechnicalSkills, job.RequiredSkills.Technical, confidences)
	softScore, softExplanation := e.softSkillsScore(
		cv.KeyInformation.SoftSkills, job.RequiredSkills.Soft, confidences)
	expScore, expExplanation := e.experienceScore(cv, job, confidences)

	overall := int(float64(techScore)*profile.TechnicalSkills +
		float64(softScore)*profile.SoftSkills +
		float64(expScore)*profile.Experience +
		float64(placeholderQualificationsScore)*profile.Qualifications +
		float64(placeholderResponsibilitiesScore)*profile.Responsibilities)

	overallExplanation := fmt.Sprintf(
		"Weighted score using %s profile. Tech: %d (%.0f%%), Experience: %d (%.0f%%)",
		industry, techScore, profile.TechnicalSkills*100, expScore, profile.Experience*100)

	// Matched sets per category, all sorted for deterministic output.
	cvSoft := lowerSet(cv.KeyInformation.SoftSkills)
	jobSoft := lowerSet(job.RequiredSkills.Soft)
	matchedSoft := sortedIntersection(cvSoft, jobSoft)

	cvQuals := certificationSet(cv.KeyInformation.Certifications)
	jobQuals := certificationSet(job.Qualifications)
	matchedQuals := sortedIntersection(cvQuals, jobQuals)

	cvLanguages := lowerSet(cv.KeyInformation.Languages)
	jobLanguages := lowerSet(job.Languages)
	matchedLanguages := sortedIntersection(cvLanguages, jobLanguages)

	cvResponsibilities := lowerSet(cv.KeyInformation.Responsibilities)
	jobResponsibilities := lowerSet(job.Responsibilities)
	matchedResponsibilities := sortedIntersection(cvResponsibilities, jobResponsibilities)

	strengths := collectStrengths(
		matchedTech,
		titleAll(matchedSoft),
		titleAll(matchedQuals),
		matchedLanguages,
		matchedResponsibilities,
	)

	var gaps []string
	if techScore < gapThreshold {
		gaps = append(gaps, "Technical skills gap")
	}
	if expScore < gapThreshold {
		gaps = append(gaps, "Experience below requirements")
	}
	if softScore < gapThreshold {
		gaps = append(gaps, "Soft skills development needed")
	}

	suggestions := e.improvementSuggestions(job, expScore, matchedTech,
		cvSoft, cvQuals, jobQuals, cvLanguages, jobLanguages,
		cvResponsibilities, jobResponsibilities)

	return &types.MatchingScore{
		OverallMatchScore:              overall,
		OverallExplanation:             overallExplanation,
		TechnicalSkillsScore:           techScore,
		TechnicalSkillsExplanation:     techExplanation,
		SoftSkillsScore:                softScore,
		SoftSkillsExplanation:          softExplanation,
		ExperienceScore:                expScore,
		ExperienceExplanation:          expExplanation,
		QualificationsScore:            placeholderQualificationsScore,
		QualificationsExplanation:      "Qualifications assessment needs enhancement",
		KeyResponsibilitiesScore:       placeholderResponsibilitiesScore,
		KeyResponsibilitiesExplanation: "Responsibilities matching needs enhancement",
		ImprovementSuggestions:         suggestions,
		Strengths:                      strengths,
		Gaps:                           gaps,
	}
}

// improvementSuggestions composes a single sentence listing up to three
// missing items, drawn in fixed priority order from technical skills, soft
// skills, an experience-years gap, qualifications, languages, and
// responsibilities.
func (e *Engine) improvementSuggestions(
	job *types.JobRequirements,
	expScore int,
	matchedTech []string,
	cvSoft map[string]struct{},
	cvQuals, jobQuals map[string]struct{},
	cvLanguages, jobLanguages map[string]struct{},
	cvResponsibilities, jobResponsibilities map[string]struct{},
) []string {
	matchedTechSet := make(map[string]struct{}, len(matchedTech))
	for _, skill := range matchedTech {
		matchedTechSet[skill] = struct{}{}
	}
	missingTech := uniqueSorted(job.RequiredSkills.Technical, func(s string) bool {
		_, matched := matchedTechSet[s]
		return !matched
	})

	missingSoft := uniqueSorted(job.RequiredSkills.Soft, func(s string) bool {
		_, present := cvSoft[strings.ToLower(strings.TrimSpace(s))]
		return !present
	})

	var topMissing []string
	topMissing = append(topMissing, firstN(missingTech, 3)...)
	topMissing = append(topMissing, titleAll(firstN(missingSoft, 2))...)
	if expScore < experienceSuggestionThreshold && job.Experience.MinimumYears > 0 {
		topMissing = append(topMissing, fmt.Sprintf("%d+ years experience", job.Experience.MinimumYears))
	}
	topMissing = append(topMissing, titleAll(firstN(sortedDifference(jobQuals, cvQuals), 2))...)
	topMissing = append(topMissing, titleAll(firstN(sortedDifference(jobLanguages, cvLanguages), 2))...)
	topMissing = append(topMissing, firstN(sortedDifference(jobResponsibilities, cvResponsibilities), 2)...)

	if len(topMissing) == 0 {
		return []string{"Strong overall profile"}
	}
	return []string{"Consider developing skills in: " + strings.Join(firstN(topMissing, 3), ", ")}
}

// collectStrengths concatenates matched items in priority order, dropping
// empties and duplicates (first occurrence wins), capped at maxStrengths.
func collectStrengths(groups ...[]string) []string {
	var strengths []string
	seen := make(map[string]struct{})
	for _, group := range groups {
		for _, item := range group {
			if item == "" {
				continue
			}
			if _, dup := seen[item]; dup {
				continue
			}
			seen[item] = struct{}{}
			strengths = append(strengths, item)
		}
	}
	if len(strengths) > maxStrengths {
		strengths = strengths[:maxStrengths]
	}
	return strengths
}

// uniqueSorted returns the sorted unique entries of items that satisfy keep.
func uniqueSorted(items []string, keep func(string) bool) []string {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item != "" && keep(item) {
			set[item] = struct{}{}
		}
	}
	result := make([]string, 0, len(set))
	for item := range set {
		result = append(result, item)
	}
	sort.Strings(result)
	return result
}

func titleAll(items []string) []string {
	titled := make([]string, len(items))
	for i, item := range items {
		titled[i] = titleWords(item)
	}
	return titled
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
