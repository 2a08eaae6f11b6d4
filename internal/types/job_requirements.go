// Package types provides type definitions for structured data exchanged between
// the extraction boundary, the scoring engine, and the validator.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// SkillSet groups required skills by kind.
type SkillSet struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// ExperienceDetails captures the experience requirements of a job posting.
// MinimumYears of 0 means no explicit requirement was extracted.
type ExperienceDetails struct {
	MinimumYears int    `json:"minimum_years,omitempty" validate:"min=0"`
	Industry     string `json:"industry,omitempty"`
	Type         string `json:"type,omitempty"`
	Leadership   string `json:"leadership,omitempty"`
}

// JobRequirements represents structured job requirements extracted from a posting.
// Confidences optionally carries per-field extraction confidence in [0,1], keyed
// by field name (e.g. "required_skills", "experience"). An absent map means the
// scorers fall back to their documented neutral defaults.
type JobRequirements struct {
	RequiredSkills   SkillSet           `json:"required_skills"`
	Experience       ExperienceDetails  `json:"experience"`
	Qualifications   []string           `json:"qualifications"`
	Responsibilities []string           `json:"responsibilities"`
	Languages        []string           `json:"languages"`
	SeniorityLevel   string             `json:"seniority_level,omitempty"`
	Confidences      map[string]float64 `json:"confidences,omitempty" validate:"omitempty,dive,min=0,max=1"`
}

// Validate validates the JobRequirements using the validator.
func (j *JobRequirements) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}
