package taxonomy

import (
	"regexp"
	"strings"
)

var (
	// Punctuation is stripped except + # . so that c++, c#, and node.js survive.
	punctuationRE = regexp.MustCompile(`[^\w\s+#.]`)
	whitespaceRE  = regexp.MustCompile(`\s+`)
)

// clean lowercases, strips punctuation (keeping + # .), and collapses
// whitespace without touching the alias table. Match uses the cleaned form to
// tell an exact canonical hit apart from an alias hit.
func (t *Taxonomy) clean(skill string) string {
	cleaned := strings.ToLower(strings.TrimSpace(skill))
	cleaned = punctuationRE.ReplaceAllString(cleaned, "")
	cleaned = whitespaceRE.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// Normalize maps a skill name to its canonical form: cleaned, then resolved
// through the alias table when an exact alias hit exists. Unknown skills come
// back as the cleaned string. Results are memoized by input text in a bounded
// LRU cache; a concurrent miss only costs redundant computation, never a
// wrong answer.
func (t *Taxonomy) Normalize(skill string) string {
	if skill == "" {
		return ""
	}

	if cached, ok := t.normCache.Get(skill); ok {
		return cached
	}

	normalized := t.clean(skill)
	if canonical, ok := t.aliasToSkill[normalized]; ok {
		normalized = canonical
	}

	t.normCache.Add(skill, normalized)
	return normalized
}
