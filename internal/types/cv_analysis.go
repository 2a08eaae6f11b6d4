package types

import (
	"github.com/go-playground/validator/v10"
)

// CVKeyInfo holds the factual information extracted from a candidate document.
type CVKeyInfo struct {
	ExperienceSummary string   `json:"experience_summary" validate:"required"`
	TechnicalSkills   []string `json:"technical_skills"`
	SoftSkills        []string `json:"soft_skills"`
	Certifications    []string `json:"certifications"`
	Languages         []string `json:"languages"`
	Responsibilities  []string `json:"responsibilities"`
}

// CandidateAssessment is the upstream analyzer's overall judgment of the candidate.
type CandidateAssessment struct {
	OverallFitScore int      `json:"overall_fit_score" validate:"min=1,max=10"`
	Justification   string   `json:"justification" validate:"required"`
	Strengths       []string `json:"strengths"`
	Gaps            []string `json:"gaps"`
}

// StrategicRecommendations groups actionable advice produced for the candidate.
type StrategicRecommendations struct {
	Tailoring         []string `json:"tailoring"`
	InterviewFocus    []string `json:"interview_focus"`
	CareerDevelopment []string `json:"career_development"`
}

// CVAnalysis represents the structured analysis of one candidate document.
type CVAnalysis struct {
	CandidateSuitability CandidateAssessment      `json:"candidate_suitability"`
	KeyInformation       CVKeyInfo                `json:"key_information"`
	Recommendations      StrategicRecommendations `json:"recommendations"`
}

// Validate validates the CVAnalysis using the validator.
func (c *CVAnalysis) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}
