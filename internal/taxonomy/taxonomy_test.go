package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EveryCanonicalSkillHasACategory(t *testing.T) {
	tax := New()

	for _, skill := range tax.canonical {
		category := tax.Category(skill)
		assert.NotEqual(t, OtherCategory, category, "canonical skill %q is uncategorized", skill)
	}
}

func TestCategory(t *testing.T) {
	tax := New()

	assert.Equal(t, "devops", tax.Category("K8s"))
	assert.Equal(t, "programming", tax.Category("Python"))
	assert.Equal(t, "databases", tax.Category("Postgres"))
	assert.Equal(t, OtherCategory, tax.Category("cobol"))
}

func TestRelatedSkills_Cloud(t *testing.T) {
	tax := New()

	related := tax.RelatedSkills("aws")
	assert.Equal(t, []string{"azure", "gcp"}, related)
}

func TestRelatedSkills_ExcludesSelfAndIsSorted(t *testing.T) {
	tax := New()

	related := tax.RelatedSkills("kubernetes")
	require.NotEmpty(t, related)
	assert.NotContains(t, related, "kubernetes")
	assert.Contains(t, related, "docker")
	assert.IsIncreasing(t, related)
}

func TestRelatedSkills_UnknownSkill(t *testing.T) {
	tax := New()

	assert.Nil(t, tax.RelatedSkills("cobol"))
}

func TestCanonical(t *testing.T) {
	tax := New()

	assert.True(t, tax.Canonical("python"))
	assert.True(t, tax.Canonical("apache spark"))
	assert.False(t, tax.Canonical("py"))
	assert.False(t, tax.Canonical("cobol"))
}
