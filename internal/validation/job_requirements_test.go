package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-matcher/internal/types"
)

func cleanJob() *types.JobRequirements {
	return &types.JobRequirements{
		RequiredSkills: types.SkillSet{
			Technical: []string{"python", "go", "postgresql"},
			Soft:      []string{"communication", "teamwork"},
		},
		Experience:       types.ExperienceDetails{MinimumYears: 6},
		Responsibilities: []string{"Design and operate backend services"},
		SeniorityLevel:   "Senior Engineer",
	}
}

func TestValidateJobRequirements_CleanRecord(t *testing.T) {
	v := New()

	res := v.ValidateJobRequirements(cleanJob())

	assert.True(t, res.IsValid)
	assert.Empty(t, res.Issues)
	assert.InDelta(t, 0.9, res.ConfidenceScore, 1e-9)
}

func TestValidateJobRequirements_EmptySkillsIsCritical(t *testing.T) {
	v := New()

	job := cleanJob()
	job.RequiredSkills = types.SkillSet{}

	res := v.ValidateJobRequirements(job)

	assert.False(t, res.IsValid)
	assert.Equal(t, 1, res.CriticalCount())
	assert.InDelta(t, 0.3, res.ConfidenceScore, 1e-9)

	require.Len(t, res.Issues, 1)
	assert.Equal(t, "required_skills", res.Issues[0].Field)
	assert.Equal(t, types.IssueMissing, res.Issues[0].IssueType)
	assert.Equal(t, types.SeverityCritical, res.Issues[0].Severity)
}

func TestValidateJobRequirements_MissingResponsibilitiesIsHigh(t *testing.T) {
	v := New()

	job := cleanJob()
	job.Responsibilities = nil

	res := v.ValidateJobRequirements(job)

	assert.True(t, res.IsValid)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "responsibilities", res.Issues[0].Field)
	assert.Equal(t, types.SeverityHigh, res.Issues[0].Severity)
	assert.InDelta(t, 0.85, res.ConfidenceScore, 1e-9)
}

func TestValidateJobRequirements_SenioritySkewedYears(t *testing.T) {
	v := New()

	job := cleanJob()
	job.SeniorityLevel = "Senior Backend Engineer"
	job.Experience.MinimumYears = 1

	res := v.ValidateJobRequirements(job)

	require.Len(t, res.Issues, 1)
	issue := res.Issues[0]
	assert.Equal(t, "experience.minimum_years", issue.Field)
	assert.Equal(t, types.IssueInconsistency, issue.IssueType)
	assert.Equal(t, types.SeverityMedium, issue.Severity)
	assert.Contains(t, issue.SuggestedFix, "5-10 years")
}

func TestValidateJobRequirements_SeniorityWithinRange(t *testing.T) {
	v := New()

	job := cleanJob()
	job.SeniorityLevel = "Junior Developer"
	job.Experience.MinimumYears = 2

	res := v.ValidateJobRequirements(job)
	assert.Empty(t, res.Issues)
}

func TestValidateJobRequirements_NoSeniorityNoCheck(t *testing.T) {
	v := New()

	job := cleanJob()
	job.SeniorityLevel = ""
	job.Experience.MinimumYears = 50

	res := v.ValidateJobRequirements(job)
	assert.Empty(t, res.Issues)
}

func TestValidateJobRequirements_DuplicateTechnicalSkills(t *testing.T) {
	v := New()

	job := cleanJob()
	job.RequiredSkills.Technical = []string{"Python", " python ", "go"}

	res := v.ValidateJobRequirements(job)

	require.Len(t, res.Issues, 1)
	assert.Equal(t, "required_skills.technical", res.Issues[0].Field)
	assert.Equal(t, types.IssueInvalid, res.Issues[0].IssueType)
	assert.Equal(t, types.SeverityMedium, res.Issues[0].Severity)
}

func TestValidateJobRequirements_LongTechnicalList(t *testing.T) {
	v := New()

	job := cleanJob()
	job.RequiredSkills.Technical = make([]string, 0, maxReasonableTechnicalSkills+1)
	for i := 0; i < maxReasonableTechnicalSkills+1; i++ {
		job.RequiredSkills.Technical = append(job.RequiredSkills.Technical, "skill-"+string(rune('a'+i)))
	}

	res := v.ValidateJobRequirements(job)

	require.NotEmpty(t, res.Issues)
	assert.Equal(t, types.IssueSuspicious, res.Issues[0].IssueType)
	assert.Equal(t, types.SeverityLow, res.Issues[0].Severity)
	assert.Contains(t, res.Issues[0].Description, "over-extraction")
}

func TestValidateJobRequirements_NonStandardSoftSkills(t *testing.T) {
	v := New()

	job := cleanJob()
	job.RequiredSkills.Soft = []string{"synergy", "rockstar attitude", "hustle", "communication"}

	res := v.ValidateJobRequirements(job)

	require.Len(t, res.Issues, 1)
	assert.Equal(t, "required_skills.soft", res.Issues[0].Field)
	assert.Equal(t, types.SeverityLow, res.Issues[0].Severity)
	assert.Contains(t, res.Issues[0].Description, "non-standard")
}

func TestValidateJobRequirements_ConfidenceOutOfRange(t *testing.T) {
	v := New()

	job := cleanJob()
	job.Confidences = map[string]float64{
		"required_skills": 1.5,
		"experience":      0.9,
	}

	res := v.ValidateJobRequirements(job)

	require.Len(t, res.Issues, 1)
	assert.Equal(t, "confidences.required_skills", res.Issues[0].Field)
	assert.Equal(t, types.SeverityHigh, res.Issues[0].Severity)
}

func TestValidateJobRequirements_ManyHighIssuesLowerConfidence(t *testing.T) {
	v := New()

	job := cleanJob()
	job.Responsibilities = nil
	job.Confidences = map[string]float64{
		"a": -0.5,
		"b": 2.0,
	}

	res := v.ValidateJobRequirements(job)

	// Three high-severity issues: missing responsibilities plus two bad
	// confidence values.
	assert.True(t, res.IsValid)
	assert.InDelta(t, 0.5, res.ConfidenceScore, 1e-9)
}
