package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_ExactCanonical(t *testing.T) {
	tax := New()

	matches := tax.Match("python", 0.7)
	require.Len(t, matches, 1)
	assert.Equal(t, "python", matches[0].Normalized)
	assert.Equal(t, MatchExact, matches[0].MatchType)
	assert.Equal(t, 1.0, matches[0].Confidence)
}

func TestMatch_AliasResolvesToCanonical(t *testing.T) {
	tax := New()

	matches := tax.Match("K8s", 0.7)
	require.Len(t, matches, 1)
	assert.Equal(t, "kubernetes", matches[0].Normalized)
	assert.Equal(t, "K8s", matches[0].Original)
	assert.Equal(t, MatchAlias, matches[0].MatchType)
	assert.Equal(t, 0.95, matches[0].Confidence)
}

func TestMatch_AliasReactJS(t *testing.T) {
	tax := New()

	matches := tax.Match("reactjs", 0.7)
	require.NotEmpty(t, matches)
	assert.Equal(t, "react", matches[0].Normalized)
	assert.Equal(t, MatchAlias, matches[0].MatchType)
	assert.Equal(t, 0.95, matches[0].Confidence)
}

func TestMatch_AliasNotAuthoritativeAtHighThreshold(t *testing.T) {
	tax := New()

	// Above 0.8 the alias hit no longer short-circuits; fuzzy and semantic
	// candidates may join the result, but the alias stays the best hit.
	matches := tax.Match("K8s", 0.9)
	require.NotEmpty(t, matches)
	assert.Equal(t, "kubernetes", matches[0].Normalized)
	assert.Equal(t, MatchAlias, matches[0].MatchType)
}

func TestMatch_FuzzyTypo(t *testing.T) {
	tax := New()

	matches := tax.Match("postgre", 0.7)
	require.NotEmpty(t, matches)
	assert.Equal(t, "postgresql", matches[0].Normalized)
	assert.Equal(t, MatchFuzzy, matches[0].MatchType)
	assert.Greater(t, matches[0].Confidence, 0.8)
	assert.Less(t, matches[0].Confidence, 1.0)
}

func TestMatch_EmptyInput(t *testing.T) {
	tax := New()

	assert.Nil(t, tax.Match("", 0.7))
	assert.Nil(t, tax.Match("   ", 0.7))
}

func TestMatch_NoPlausibleMatch(t *testing.T) {
	tax := New()

	matches := tax.Match("underwater basket weaving", 0.7)
	assert.Empty(t, matches)
}

func TestMatch_CapsAtThreeResults(t *testing.T) {
	tax := New()

	// A short fragment brushes against several canonical names at a
	// permissive threshold.
	matches := tax.Match("java script", 0.6)
	assert.LessOrEqual(t, len(matches), 3)
}

func TestMatch_SortedByConfidenceThenName(t *testing.T) {
	tax := New()

	matches := tax.Match("java script", 0.6)
	for i := 1; i < len(matches); i++ {
		if matches[i-1].Confidence == matches[i].Confidence {
			assert.Less(t, matches[i-1].Normalized, matches[i].Normalized)
		} else {
			assert.Greater(t, matches[i-1].Confidence, matches[i].Confidence)
		}
	}
}

func TestMatch_Deterministic(t *testing.T) {
	tax := New()

	first := tax.Match("java script", 0.6)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, tax.Match("java script", 0.6))
	}
}

func TestSemanticSimilarity_IdenticalAfterNormalization(t *testing.T) {
	tax := New()

	assert.Equal(t, 1.0, tax.SemanticSimilarity("K8s", "kubernetes"))
	assert.Equal(t, 1.0, tax.SemanticSimilarity("python", "python"))
}

func TestSemanticSimilarity_Empty(t *testing.T) {
	tax := New()

	assert.Equal(t, 0.0, tax.SemanticSimilarity("", "python"))
	assert.Equal(t, 0.0, tax.SemanticSimilarity("python", ""))
}

func TestSemanticSimilarity_SharedCategoryBonus(t *testing.T) {
	tax := New()

	sameCategory := tax.SemanticSimilarity("mysql", "postgresql")
	crossCategory := tax.SemanticSimilarity("mysql", "react")

	assert.Greater(t, sameCategory, crossCategory)
	assert.GreaterOrEqual(t, sameCategory, 0.3)
}

func TestSemanticSimilarity_NeverExceedsOne(t *testing.T) {
	tax := New()

	pairs := [][2]string{
		{"apache spark", "spark"},
		{"scikit-learn", "sklearn"},
		{"power bi", "powerbi"},
	}
	for _, pair := range pairs {
		similarity := tax.SemanticSimilarity(pair[0], pair[1])
		assert.LessOrEqual(t, similarity, 1.0, "pair %v", pair)
	}
}

func TestValidateAndMatch(t *testing.T) {
	tax := New()

	matched, unmatched := tax.ValidateAndMatch([]string{
		"Python",
		"K8s",
		"python3",
		"",
		"  underwater basket weaving  ",
	})

	require.Len(t, matched, 2)
	assert.Equal(t, "python", matched[0].Normalized)
	assert.Equal(t, "kubernetes", matched[1].Normalized)

	assert.Equal(t, []string{"underwater basket weaving"}, unmatched)
}

func TestValidateAndMatch_DeduplicatesByCanonicalFirstWins(t *testing.T) {
	tax := New()

	matched, unmatched := tax.ValidateAndMatch([]string{"Node.js", "javascript", "js"})
	require.Len(t, matched, 1)
	assert.Equal(t, "javascript", matched[0].Normalized)
	assert.Equal(t, "Node.js", matched[0].Original)
	assert.Empty(t, unmatched)
}

func TestValidateAndMatch_EmptyInput(t *testing.T) {
	tax := New()

	matched, unmatched := tax.ValidateAndMatch(nil)
	assert.Empty(t, matched)
	assert.Empty(t, unmatched)
}

func TestTokenJaccard(t *testing.T) {
	assert.Equal(t, 1.0, tokenJaccard("apache spark", "spark apache"))
	assert.Equal(t, 0.0, tokenJaccard("python", "java"))
	assert.InDelta(t, 1.0/3.0, tokenJaccard("apache spark", "apache kafka"), 1e-9)
	assert.Equal(t, 0.0, tokenJaccard("", "python"))
}
