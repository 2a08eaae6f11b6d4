package scoring

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonathan/cv-matcher/internal/taxonomy"
)

// Engine scores candidates against jobs. It is stateless with respect to its
// call arguments and safe for concurrent use; the taxonomy and profiles are
// immutable after construction.
type Engine struct {
	taxonomy *taxonomy.Taxonomy
	profiles Profiles
}

// NewEngine builds an engine over the given taxonomy and weighting profiles.
// Profiles are validated up front: a weight set that does not sum to 1.0 is a
// configuration error, and the engine refuses to start.
func NewEngine(tax *taxonomy.Taxonomy, profiles Profiles) (*Engine, error) {
	if tax == nil {
		return nil, fmt.Errorf("taxonomy is required")
	}
	if profiles == nil {
		profiles = DefaultProfiles()
	}
	if err := profiles.Validate(); err != nil {
		return nil, fmt.Errorf("invalid weighting profiles: %w", err)
	}
	return &Engine{taxonomy: tax, profiles: profiles}, nil
}

// Profiles exposes the configured weighting profiles.
func (e *Engine) Profiles() Profiles {
	return e.profiles
}

// titleWords renders a lowercase identifier for display ("aws ccp" ->
// "Aws Ccp"). Casers are stateful, so one is created per call.
func titleWords(s string) string {
	return cases.Title(language.English).String(s)
}

func canonicalSet(matches []taxonomy.SkillMatch) map[string]struct{} {
	set := make(map[string]struct{}, len(matches))
	for _, match := range matches {
		set[match.Normalized] = struct{}{}
	}
	return set
}

// lowerSet builds a set of lowercased, trimmed, non-empty strings.
func lowerSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		cleaned := strings.ToLower(strings.TrimSpace(item))
		if cleaned != "" {
			set[cleaned] = struct{}{}
		}
	}
	return set
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortStrings(items []string) {
	sort.Strings(items)
}

// sortedIntersection returns the sorted intersection of two sets.
func sortedIntersection(a, b map[string]struct{}) []string {
	var common []string
	for item := range a {
		if _, ok := b[item]; ok {
			common = append(common, item)
		}
	}
	sort.Strings(common)
	return common
}

// sortedDifference returns the sorted members of a absent from b.
func sortedDifference(a, b map[string]struct{}) []string {
	var diff []string
	for item := range a {
		if _, ok := b[item]; !ok {
			diff = append(diff, item)
		}
	}
	sort.Strings(diff)
	return diff
}
