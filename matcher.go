package sift

import "github.com/sahilm/fuzzy"

// DefaultMatcher is the fuzzy primitive wired into ConditionMatches unless
// the builder overrides it. It adapts sahilm/fuzzy's subsequence matcher;
// higher scores are better and may be negative for poor matches.
func DefaultMatcher(query, candidate string) (float64, bool) {
	matches := fuzzy.Find(query, []string{candidate})
	if len(matches) == 0 {
		return 0, false
	}
	return float64(matches[0].Score), true
}
