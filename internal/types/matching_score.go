package types

import (
	"github.com/go-playground/validator/v10"
)

// MatchingScore is the weighted compatibility score between one candidate and
// one job. Every *_Score field is an integer in [0,100] and every explanation
// is non-empty. MatchedSkills is optional: the scoring engine composes matched
// canonical skills into Strengths instead of populating it, but producers that
// do set it get the list cross-checked by the validator.
type MatchingScore struct {
	OverallMatchScore  int    `json:"overall_match_score" validate:"min=0,max=100"`
	OverallExplanation string `json:"overall_explanation" validate:"required"`

	TechnicalSkillsScore       int    `json:"technical_skills_score" validate:"min=0,max=100"`
	TechnicalSkillsExplanation string `json:"technical_skills_explanation" validate:"required"`

	SoftSkillsScore       int    `json:"soft_skills_score" validate:"min=0,max=100"`
	SoftSkillsExplanation string `json:"soft_skills_explanation" validate:"required"`

	ExperienceScore       int    `json:"experience_score" validate:"min=0,max=100"`
	ExperienceExplanation string `json:"experience_explanation" validate:"required"`

	QualificationsScore       int    `json:"qualifications_score" validate:"min=0,max=100"`
	QualificationsExplanation string `json:"qualifications_explanation" validate:"required"`

	KeyResponsibilitiesScore       int    `json:"key_responsibilities_score" validate:"min=0,max=100"`
	KeyResponsibilitiesExplanation string `json:"key_responsibilities_explanation" validate:"required"`

	ImprovementSuggestions []string `json:"improvement_suggestions"`
	Strengths              []string `json:"strengths"`
	Gaps                   []string `json:"gaps"`
	MatchedSkills          []string `json:"matched_skills,omitempty"`
}

// Validate validates the MatchingScore using the validator.
func (m *MatchingScore) Validate() error {
	validate := validator.New()
	return validate.Struct(m)
}
