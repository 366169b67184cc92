package domain

import "strings"

// CondensedExclusion is the single literal re-checked when building the
// condensed projection. The condensation pass only excludes exact matches
// of this string; it is intentionally narrower than the parse-time rules
// so condensed output stays stable when extra rules are configured.
const CondensedExclusion = "Exploring system dynamics and adaptation patterns"

// planPrefixMarker excludes machine-generated placeholder thoughts.
const planPrefixMarker = "plan_"

// ExclusionRules decide which thought content is dropped at parse time.
// Exact entries match the whole stripped content; Substrings match
// anywhere inside it. Matching is plain string comparison, not regex.
type ExclusionRules struct {
	Exact      []string
	Substrings []string
}

// DefaultExclusions returns the built-in rule set.
func DefaultExclusions() ExclusionRules {
	return ExclusionRules{
		Exact:      []string{CondensedExclusion},
		Substrings: []string{planPrefixMarker},
	}
}

// Excludes reports whether stripped thought content should be dropped.
func (r ExclusionRules) Excludes(content string) bool {
	for _, e := range r.Exact {
		if content == e {
			return true
		}
	}
	for _, s := range r.Substrings {
		if strings.Contains(content, s) {
			return true
		}
	}
	return false
}
