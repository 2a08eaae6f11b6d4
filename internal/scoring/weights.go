// Package scoring composes weighted, explainable compatibility scores from a
// candidate analysis and a job-requirements record.
package scoring

import (
	"fmt"
	"math"
)

// weightTolerance is the allowed drift when checking that the five dimension
// weights sum to 1.0.
const weightTolerance = 0.01

// DefaultProfile is the profile used when industry inference finds no signal.
const DefaultProfile = "default"

// WeightingProfile defines how the five score dimensions combine into the
// overall score. The weights must sum to 1.0 within tolerance; a malformed
// profile is a fatal configuration error, never silently renormalized.
type WeightingProfile struct {
	TechnicalSkills  float64 `json:"technical_skills_weight"`
	SoftSkills       float64 `json:"soft_skills_weight"`
	Experience       float64 `json:"experience_weight"`
	Qualifications   float64 `json:"qualifications_weight"`
	Responsibilities float64 `json:"responsibilities_weight"`
}

// Validate checks that the weights sum to 1.0 within tolerance.
func (p WeightingProfile) Validate() error {
	total := p.TechnicalSkills + p.SoftSkills + p.Experience + p.Qualifications + p.Responsibilities
	if math.Abs(total-1.0) > weightTolerance {
		return fmt.Errorf("weights must sum to 1.0, got %g", total)
	}
	return nil
}

// Profiles maps an industry identifier to its weighting profile.
type Profiles map[string]WeightingProfile

// DefaultProfiles returns the built-in industry profiles plus the balanced
// default.
func DefaultProfiles() Profiles {
	return Profiles{
		"software_engineering": {
			TechnicalSkills:  0.40,
			SoftSkills:       0.10,
			Experience:       0.30,
			Qualifications:   0.10,
			Responsibilities: 0.10,
		},
		"data_science": {
			TechnicalSkills:  0.35,
			SoftSkills:       0.15,
			Experience:       0.25,
			Qualifications:   0.15,
			Responsibilities: 0.10,
		},
		"product_management": {
			TechnicalSkills:  0.15,
			SoftSkills:       0.30,
			Experience:       0.25,
			Qualifications:   0.10,
			Responsibilities: 0.20,
		},
		"sales": {
			TechnicalSkills:  0.05,
			SoftSkills:       0.40,
			Experience:       0.30,
			Qualifications:   0.10,
			Responsibilities: 0.15,
		},
		"marketing": {
			TechnicalSkills:  0.20,
			SoftSkills:       0.25,
			Experience:       0.25,
			Qualifications:   0.10,
			Responsibilities: 0.20,
		},
		DefaultProfile: {
			TechnicalSkills:  0.30,
			SoftSkills:       0.15,
			Experience:       0.25,
			Qualifications:   0.15,
			Responsibilities: 0.15,
		},
	}
}

// Validate checks every profile and requires the default entry to exist.
func (p Profiles) Validate() error {
	if _, ok := p[DefaultProfile]; !ok {
		return fmt.Errorf("profiles must include a %q entry", DefaultProfile)
	}
	for name, profile := range p {
		if err := profile.Validate(); err != nil {
			return fmt.Errorf("profile %q: %w", name, err)
		}
	}
	return nil
}

// For returns the profile for an industry, falling back to the default.
func (p Profiles) For(industry string) WeightingProfile {
	if profile, ok := p[industry]; ok {
		return profile
	}
	return p[DefaultProfile]
}
