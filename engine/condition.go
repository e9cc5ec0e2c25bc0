package engine

import (
	"fmt"
	"strings"

	"github.com/sift-go/sift/bitfield"
	"github.com/sift-go/sift/index"
)

// MatchFunc is the fuzzy-matching primitive consumed by ConditionMatches.
// It reports whether candidate matches query and, if so, a score where
// higher is better. The engine treats it as opaque.
type MatchFunc func(query, candidate string) (score float64, ok bool)

// Condition is a matching rule that turns a query string into a vector of
// matching values plus per-value scores. The set is closed; dispatch is a
// switch so exhaustiveness stays checkable.
type Condition int

const (
	// ConditionMatches runs the session's fuzzy matcher over each value.
	ConditionMatches Condition = iota
	// ConditionIncludes is substring containment, scored by how large a
	// fraction of the candidate the query covers.
	ConditionIncludes
	// ConditionEquals shares the containment test and score formula with
	// ConditionIncludes. Saved queries rely on the containment behavior, so
	// it is preserved even though the name suggests exact matching.
	ConditionEquals
	// ConditionStartsWith is a prefix test with the containment score
	// formula.
	ConditionStartsWith
)

// String returns the condition's query-language name.
func (c Condition) String() string {
	switch c {
	case ConditionMatches:
		return "matches"
	case ConditionIncludes:
		return "includes"
	case ConditionEquals:
		return "equals"
	case ConditionStartsWith:
		return "startsWith"
	default:
		return fmt.Sprintf("Condition(%d)", int(c))
	}
}

// apply iterates every (value, position) pair in the column. For each value
// matching under the condition's rule it sets the position in the result
// vector and adds the match score into scores. The column is not mutated.
//
// scores must be sized to the index's current position high-water mark.
func (c Condition) apply(col *index.Column, query string, scores []float64, match MatchFunc) *bitfield.Vector {
	out := bitfield.New()
	for value, pos := range col.All() {
		var score float64
		ok := false
		switch c {
		case ConditionMatches:
			if match != nil {
				score, ok = match(query, value)
			}
		case ConditionIncludes, ConditionEquals:
			if strings.Contains(value, query) {
				score = fractionOf(query, value)
				ok = true
			}
		case ConditionStartsWith:
			if strings.HasPrefix(value, query) {
				score = fractionOf(query, value)
				ok = true
			}
		}
		if ok {
			out.Set(pos)
			scores[pos] += score
		}
	}
	return out
}

// fractionOf rewards queries that cover a larger share of the candidate:
// a shorter candidate with the same prefix scores at least as high as a
// longer one.
func fractionOf(query, candidate string) float64 {
	if len(candidate) == 0 {
		return 0
	}
	return float64(len(query)) / float64(len(candidate))
}
