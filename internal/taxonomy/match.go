package taxonomy

import (
	"sort"
	"strings"

	"github.com/adrg/strutil"
)

// MatchType identifies the strategy that produced a SkillMatch.
type MatchType string

// Match strategies in priority order. Alias hits are curated and therefore
// cheaper to trust than fuzzy or semantic hits.
const (
	MatchExact     MatchType = "exact"
	MatchAlias     MatchType = "alias"
	MatchFuzzy     MatchType = "fuzzy"
	MatchSemantic  MatchType = "semantic"
	MatchNearExact MatchType = "near_exact"
)

const (
	confidenceExact = 1.0
	confidenceAlias = 0.95

	// fuzzyFloor and semanticFloor are strategy-specific minimums applied on
	// top of the caller's threshold.
	fuzzyFloor    = 0.7
	semanticFloor = 0.6

	// aliasAuthoritativeThreshold: alias hits short-circuit the slower
	// strategies unless the caller demands near-exact confidence.
	aliasAuthoritativeThreshold = 0.8

	// nearExactBoundary separates semantic from near_exact classification.
	nearExactBoundary = 0.9

	// semanticWeakBest: fall through to semantic matching when the best
	// fuzzy confidence is below this.
	semanticWeakBest = 0.8

	categoryBonus = 0.3
	tokenWeight   = 0.6
	charWeight    = 0.4

	maxMatches         = 3
	maxSemanticMatches = 5

	// keepThreshold is the minimum best-match confidence ValidateAndMatch
	// accepts before reporting the input as unmatched.
	keepThreshold = 0.7
)

// SkillMatch is one canonical-vocabulary hit for a free-text skill mention.
type SkillMatch struct {
	Original   string    `json:"original"`
	Normalized string    `json:"normalized"`
	Confidence float64   `json:"confidence"`
	MatchType  MatchType `json:"match_type"`
}

// Match resolves a free-text skill against the canonical vocabulary, applying
// strategies in priority order (exact, alias, fuzzy, semantic) and stopping
// early on a sufficiently confident hit. Results are deduplicated by canonical
// name keeping the highest confidence, sorted by confidence descending (name
// ascending on ties), and truncated to three.
func (t *Taxonomy) Match(skill string, threshold float64) []SkillMatch {
	if strings.TrimSpace(skill) == "" {
		return nil
	}

	cleaned := t.clean(skill)

	if t.Canonical(cleaned) {
		return []SkillMatch{{
			Original:   skill,
			Normalized: cleaned,
			Confidence: confidenceExact,
			MatchType:  MatchExact,
		}}
	}

	var matches []SkillMatch
	if canonical, ok := t.aliasToSkill[cleaned]; ok {
		matches = append(matches, SkillMatch{
			Original:   skill,
			Normalized: canonical,
			Confidence: confidenceAlias,
			MatchType:  MatchAlias,
		})
		if threshold <= aliasAuthoritativeThreshold {
			return matches
		}
	}

	fuzzyThreshold := threshold
	if fuzzyThreshold < fuzzyFloor {
		fuzzyThreshold = fuzzyFloor
	}
	best := 0.0
	for _, match := range matches {
		if match.Confidence > best {
			best = match.Confidence
		}
	}
	for _, canonical := range t.canonical {
		similarity := strutil.Similarity(cleaned, canonical, t.seq)
		if similarity >= fuzzyThreshold {
			matches = append(matches, SkillMatch{
				Original:   skill,
				Normalized: canonical,
				Confidence: similarity,
				MatchType:  MatchFuzzy,
			})
			if similarity > best {
				best = similarity
			}
		}
	}

	if len(matches) == 0 || best < semanticWeakBest {
		semanticThreshold := threshold
		if semanticThreshold < semanticFloor {
			semanticThreshold = semanticFloor
		}
		matches = append(matches, t.semanticMatches(skill, semanticThreshold)...)
	}

	return dedupeTop(matches, maxMatches)
}

// SemanticSimilarity combines whitespace-token Jaccard overlap with the
// character-sequence ratio, plus a flat bonus when both skills share a
// curated (non-"other") category. The result is capped at 1.0.
func (t *Taxonomy) SemanticSimilarity(skill1, skill2 string) float64 {
	if skill1 == "" || skill2 == "" {
		return 0
	}

	norm1 := t.Normalize(skill1)
	norm2 := t.Normalize(skill2)
	if norm1 == norm2 {
		return 1.0
	}

	bonus := 0.0
	cat1 := t.Category(norm1)
	if cat1 != OtherCategory && cat1 == t.Category(norm2) {
		bonus = categoryBonus
	}

	similarity := tokenWeight*tokenJaccard(norm1, norm2) +
		charWeight*strutil.Similarity(norm1, norm2, t.seq) +
		bonus
	if similarity > 1.0 {
		similarity = 1.0
	}
	return similarity
}

// semanticMatches scans the canonical vocabulary for semantic hits at or
// above threshold, classifying near_exact at >= 0.9 similarity.
func (t *Taxonomy) semanticMatches(skill string, threshold float64) []SkillMatch {
	if strings.TrimSpace(skill) == "" {
		return nil
	}

	var matches []SkillMatch
	for _, canonical := range t.canonical {
		similarity := t.SemanticSimilarity(skill, canonical)
		if similarity < threshold {
			continue
		}
		matchType := MatchSemantic
		if similarity >= nearExactBoundary {
			matchType = MatchNearExact
		}
		matches = append(matches, SkillMatch{
			Original:   skill,
			Normalized: canonical,
			Confidence: similarity,
			MatchType:  matchType,
		})
	}

	sortMatches(matches)
	if len(matches) > maxSemanticMatches {
		matches = matches[:maxSemanticMatches]
	}
	return matches
}

// ValidateAndMatch resolves each non-empty input against the taxonomy,
// keeping the best match when its confidence reaches 0.7 (deduplicated by
// canonical name, first occurrence wins) and reporting the original text as
// unmatched otherwise. Unmatched entries preserve input order.
func (t *Taxonomy) ValidateAndMatch(skills []string) (matched []SkillMatch, unmatched []string) {
	seen := make(map[string]struct{})
	for _, skill := range skills {
		if strings.TrimSpace(skill) == "" {
			continue
		}

		candidates := t.Match(skill, keepThreshold)
		if len(candidates) > 0 && candidates[0].Confidence >= keepThreshold {
			best := candidates[0]
			if _, dup := seen[best.Normalized]; !dup {
				matched = append(matched, best)
				seen[best.Normalized] = struct{}{}
			}
		} else {
			unmatched = append(unmatched, strings.TrimSpace(skill))
		}
	}
	return matched, unmatched
}

// tokenJaccard computes Jaccard similarity over whitespace tokens.
func tokenJaccard(a, b string) float64 {
	tokensA := fieldsSet(a)
	tokensB := fieldsSet(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	intersection := 0
	for token := range tokensA {
		if _, ok := tokensB[token]; ok {
			intersection++
		}
	}
	union := len(tokensA) + len(tokensB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func fieldsSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, field := range strings.Fields(s) {
		set[field] = struct{}{}
	}
	return set
}

// sortMatches orders by confidence descending, canonical name ascending on
// ties so repeated calls produce identical output.
func sortMatches(matches []SkillMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Confidence != matches[j].Confidence {
			return matches[i].Confidence > matches[j].Confidence
		}
		return matches[i].Normalized < matches[j].Normalized
	})
}

// dedupeTop sorts, keeps the highest-confidence match per canonical name, and
// truncates to limit.
func dedupeTop(matches []SkillMatch, limit int) []SkillMatch {
	sortMatches(matches)

	seen := make(map[string]struct{}, len(matches))
	unique := matches[:0]
	for _, match := range matches {
		if _, dup := seen[match.Normalized]; dup {
			continue
		}
		seen[match.Normalized] = struct{}{}
		unique = append(unique, match)
	}

	if len(unique) > limit {
		unique = unique[:limit]
	}
	return unique
}
