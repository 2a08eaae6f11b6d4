package scoring

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/cv-matcher/internal/types"
)

const (
	// Neutral scores for absent or unusable requirements.
	scoreNoTechnicalRequired  = 85
	scoreUnparseableTechnical = 75
	scoreNoSoftRequired       = 75
	scoreNoExperienceRequired = 80

	// Confidence-blending anchors. Low-confidence extractions are pulled
	// toward a neutral baseline instead of producing extreme scores.
	neutralRatio = 0.7
	neutralScore = 70

	// Per-dimension confidence defaults when the job record carries no
	// confidence map entry.
	defaultTechnicalConfidence  = 0.8
	defaultSoftConfidence       = 0.7
	defaultExperienceConfidence = 0.8

	// Confidence map keys set by the extraction collaborator.
	confidenceKeySkills     = "required_skills"
	confidenceKeyExperience = "experience"

	// relatedSkillCredit is the partial credit for a required skill the
	// candidate lacks but covers through a same-category skill. Additive per
	// missing skill; only the final 100 ceiling caps it.
	relatedSkillCredit = 0.3

	// Soft skills rarely phrase identically across postings and CVs, hence
	// the generous floor.
	softBaseFloor = 60
	softBaseRange = 40
)

var experienceYearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*in`),
	regexp.MustCompile(`over\s*(\d+)\s*years?`),
	regexp.MustCompile(`more\s*than\s*(\d+)\s*years?`),
}

// confidenceOr reads a per-field confidence from the job's confidence map,
// falling back to the dimension default.
func confidenceOr(confidences map[string]float64, key string, fallback float64) float64 {
	if value, ok := confidences[key]; ok {
		return value
	}
	return fallback
}

// technicalSkillsScore matches both skill lists through the taxonomy,
// counts canonical intersections, grants related-category credit for missing
// requirements, and blends with extraction confidence.
func (e *Engine) technicalSkillsScore(cvSkills, jobSkills []string, confidences map[string]float64) (int, string, []string) {
	if len(jobSkills) == 0 {
		return scoreNoTechnicalRequired, "No specific technical skills required", nil
	}

	cvMatches, _ := e.taxonomy.ValidateAndMatch(cvSkills)
	cvCanonical := canonicalSet(cvMatches)

	jobMatches, _ := e.taxonomy.ValidateAndMatch(jobSkills)
	jobCanonical := canonicalSet(jobMatches)

	if len(jobCanonical) == 0 {
		return scoreUnparseableTechnical, "Unable to parse required technical skills", nil
	}

	var matched []string
	for skill := range jobCanonical {
		if _, ok := cvCanonical[skill]; ok {
			matched = append(matched, skill)
		}
	}
	sortStrings(matched)

	matchedSet := make(map[string]struct{}, len(matched))
	for _, skill := range matched {
		matchedSet[skill] = struct{}{}
	}

	relatedBonus := 0.0
	for _, required := range sortedKeys(jobCanonical) {
		if _, ok := matchedSet[required]; ok {
			continue
		}
		for _, related := range e.taxonomy.RelatedSkills(required) {
			if _, ok := cvCanonical[related]; ok {
				relatedBonus += relatedSkillCredit
				break
			}
		}
	}

	totalRequired := len(jobCanonical)
	base := (float64(len(matched)) + relatedBonus) / float64(totalRequired)

	confidence := confidenceOr(confidences, confidenceKeySkills, defaultTechnicalConfidence)
	weighted := base*confidence + (1-confidence)*neutralRatio

	score := int(math.Round(math.Min(100, weighted*100)))

	explanation := fmt.Sprintf("%d/%d required skills matched", len(matched), totalRequired)
	if relatedBonus > 0 {
		explanation += fmt.Sprintf(" (+%.1f related skills bonus)", relatedBonus)
	}

	return score, explanation, matched
}

// softSkillsScore uses a normalized exact-set intersection with a generous
// base floor, blended with extraction confidence toward a neutral baseline.
func (e *Engine) softSkillsScore(cvSoft, jobSoft []string, confidences map[string]float64) (int, string) {
	if len(jobSoft) == 0 {
		return scoreNoSoftRequired, "No specific soft skills specified"
	}

	cvNormalized := lowerSet(cvSoft)
	jobNormalized := lowerSet(jobSoft)

	matches := 0
	for skill := range jobNormalized {
		if _, ok := cvNormalized[skill]; ok {
			matches++
		}
	}
	matchRatio := float64(matches) / float64(len(jobNormalized))

	base := softBaseFloor + matchRatio*softBaseRange

	confidence := confidenceOr(confidences, confidenceKeySkills, defaultSoftConfidence)
	weighted := base*confidence + (1-confidence)*neutralScore

	explanation := fmt.Sprintf("%d/%d soft skills matched", matches, len(jobNormalized))
	return int(weighted), explanation
}

// experienceScore compares the years extracted from the candidate's
// experience summary against the job's minimum, with a bonus above the bar,
// a soft landing within 80% of it, and a floor of 30 below that.
func (e *Engine) experienceScore(cv *types.CVAnalysis, job *types.JobRequirements, confidences map[string]float64) (int, string) {
	required := job.Experience.MinimumYears
	if required <= 0 {
		return scoreNoExperienceRequired, "No specific experience requirement"
	}

	cvYears := ExtractYears(cv.KeyInformation.ExperienceSummary)

	var score int
	var explanation string
	switch {
	case cvYears >= required:
		score = 80 + (cvYears-required)*5
		if score > 100 {
			score = 100
		}
		explanation = fmt.Sprintf("%d years experience (≥%d required)", cvYears, required)
	case float64(cvYears) >= float64(required)*0.8:
		score = 70 + int(float64(cvYears)/float64(required)*10)
		explanation = fmt.Sprintf("%d years experience (close to %d required)", cvYears, required)
	default:
		score = int(float64(cvYears) / float64(required) * 60)
		if score < 30 {
			score = 30
		}
		explanation = fmt.Sprintf("%d years experience (<%d required)", cvYears, required)
	}

	confidence := confidenceOr(confidences, confidenceKeyExperience, defaultExperienceConfidence)
	weighted := float64(score)*confidence + (1-confidence)*neutralScore

	return int(weighted), explanation
}

// ExtractYears scans free text for phrases like "7 years experience",
// "5 years in", "over 10 years", and "more than 3 years", returning the
// maximum mentioned. Missing or malformed text yields 0; it never fails.
func ExtractYears(text string) int {
	lowered := strings.ToLower(text)

	years := 0
	for _, pattern := range experienceYearPatterns {
		for _, groups := range pattern.FindAllStringSubmatch(lowered, -1) {
			if n, err := strconv.Atoi(groups[1]); err == nil && n > years {
				years = n
			}
		}
	}
	return years
}
