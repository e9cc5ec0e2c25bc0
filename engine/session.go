package engine

import (
	"sort"

	"github.com/sift-go/sift/bitfield"
	"github.com/sift-go/sift/index"
)

// Session accumulates a working result set and per-item relevance scores
// across a sequence of search operations over one index.
//
// T is the caller's record type; the session never mutates record values.
type Session[T any] struct {
	index   *index.Index
	matcher MatchFunc

	selectAll bool
	less      func(a, b T) bool

	items     []item[T]
	selection *bitfield.Vector
	scores    []float64

	results    []T
	hasResults bool
}

// item pairs a record value with its combined bit vector: the union of the
// positions of every normalized value the record contributes across every
// column. Immutable for the session's lifetime.
type item[T any] struct {
	value  T
	vector *bitfield.Vector
}

// SessionOption configures a Session.
type SessionOption[T any] func(*Session[T])

// WithMatcher sets the fuzzy primitive used by ConditionMatches. Without a
// matcher, ConditionMatches matches nothing.
func WithMatcher[T any](m MatchFunc) SessionOption[T] {
	return func(s *Session[T]) {
		s.matcher = m
	}
}

// SelectAllOnReset makes Reset start from the full index bitfield instead of
// the empty selection.
func SelectAllOnReset[T any]() SessionOption[T] {
	return func(s *Session[T]) {
		s.selectAll = true
	}
}

// WithTieBreak sets the comparator used to order items with equal scores.
func WithTieBreak[T any](less func(a, b T) bool) SessionOption[T] {
	return func(s *Session[T]) {
		s.less = less
	}
}

// NewSession creates a Session over ix. The session starts in its reset
// state.
func NewSession[T any](ix *index.Index, opts ...SessionOption[T]) *Session[T] {
	s := &Session[T]{index: ix}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// Add registers a record value with its combined bit vector. Items are
// immutable once added; build a new session when the underlying value set
// changes.
func (s *Session[T]) Add(value T, vector *bitfield.Vector) {
	s.items = append(s.items, item[T]{value: value, vector: vector})
	s.invalidate()
}

// Len returns the number of indexed items.
func (s *Session[T]) Len() int {
	return len(s.items)
}

// Reset returns the session to its baseline: the configured starting
// selection, zeroed scores, and no memoized results. Calling Reset twice in
// a row is equivalent to calling it once.
func (s *Session[T]) Reset() {
	if s.selectAll {
		s.selection = s.index.Bitfield()
	} else {
		s.selection = bitfield.New()
	}
	s.scores = make([]float64, s.index.Size())
	s.invalidate()
}

// Search runs one operation: normalize text with the column's transform,
// match it under cond, fold the matches into the selection with eff, and
// accumulate the match scores scaled by weight.
//
// The column must have been declared on the session's index; an unknown
// name is a programmer error and panics.
func (s *Session[T]) Search(column string, cond Condition, text string, eff Effect, weight float64) {
	col := s.index.Column(column)
	s.growScores()

	delta := make([]float64, s.index.Size())
	matched := cond.apply(col, col.Normalize(text), delta, s.matcher)
	s.finish(matched, delta, eff, weight)
}

// SearchAll runs one operation across every column: text is normalized per
// column, the per-column match vectors are unioned, and the effect is
// applied once to the combined matches.
func (s *Session[T]) SearchAll(cond Condition, text string, eff Effect, weight float64) {
	s.growScores()

	delta := make([]float64, s.index.Size())
	matched := bitfield.New()
	for col := range s.index.Columns() {
		matched = bitfield.Or(matched, cond.apply(col, col.Normalize(text), delta, s.matcher))
	}
	s.finish(matched, delta, eff, weight)
}

func (s *Session[T]) finish(matched *bitfield.Vector, delta []float64, eff Effect, weight float64) {
	s.selection = eff.combine(s.selection, matched)
	for i, d := range delta {
		if d != 0 {
			s.scores[i] += d * weight
		}
	}
	s.invalidate()
}

// growScores widens the accumulator when values were added to the index
// since the last operation. Existing slots keep their accumulated scores;
// new slots start at zero.
func (s *Session[T]) growScores() {
	if n := s.index.Size(); n > len(s.scores) {
		s.scores = append(s.scores, make([]float64, n-len(s.scores))...)
	}
}

// Results returns the record values whose combined vectors intersect the
// selection, ordered by descending total score. An item's total is the sum
// of the accumulator slots of its set positions. The list is memoized until
// the next Reset, Search or Add.
func (s *Session[T]) Results() []T {
	if s.hasResults {
		return s.results
	}

	type scored struct {
		value T
		score float64
	}
	matched := make([]scored, 0, len(s.items))
	for _, it := range s.items {
		if !it.vector.Intersects(s.selection) {
			continue
		}
		var total float64
		for p := range it.vector.Iterate() {
			if int(p) < len(s.scores) {
				total += s.scores[p]
			}
		}
		matched = append(matched, scored{value: it.value, score: total})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].score != matched[j].score {
			return matched[i].score > matched[j].score
		}
		if s.less != nil {
			return s.less(matched[i].value, matched[j].value)
		}
		return false
	})

	s.results = make([]T, len(matched))
	for i, m := range matched {
		s.results[i] = m.value
	}
	s.hasResults = true
	return s.results
}

func (s *Session[T]) invalidate() {
	s.results = nil
	s.hasResults = false
}
