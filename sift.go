package sift

import (
	"github.com/sift-go/sift/bitfield"
	"github.com/sift-go/sift/engine"
	"github.com/sift-go/sift/index"
	"github.com/sift-go/sift/normalize"
	"github.com/sift-go/sift/query"
)

// Re-exports so hosts driving the session directly need only this package.
type (
	// Condition is a matching rule applied to a column's values.
	Condition = engine.Condition
	// Effect is a set operation folding matches into the selection.
	Effect = engine.Effect
	// MatchFunc is the opaque fuzzy-matching primitive.
	MatchFunc = engine.MatchFunc
)

const (
	ConditionMatches    = engine.ConditionMatches
	ConditionIncludes   = engine.ConditionIncludes
	ConditionEquals     = engine.ConditionEquals
	ConditionStartsWith = engine.ConditionStartsWith

	EffectAdd    = engine.EffectAdd
	EffectRemove = engine.EffectRemove
	EffectFilter = engine.EffectFilter
)

// ColumnSpec declares one searchable property: its name, how to extract its
// values from a record, and an optional normalization pipeline (nil means
// normalize.Standard).
type ColumnSpec[T any] struct {
	Name      string
	Values    func(T) []string
	Transform normalize.Transform
}

// Sift is the high-level engine over one searchable record set: a column
// index, the current search session, and the value refcounts that drive
// position recycling across rebuilds.
//
// Sift is not safe for concurrent use.
type Sift[T any] struct {
	specs       []ColumnSpec[T]
	index       *index.Index
	session     *engine.Session[T]
	sessionOpts []engine.SessionOption[T]

	// counts tracks, per column, how many record values map to each
	// normalized value. When a rebuild drops the last occurrence the
	// position is relinquished.
	counts map[string]map[string]int

	logger *Logger
}

// Index (re)builds the engine from records. The column index instance is
// reused: values still present keep their positions, values no record
// exhibits anymore are recycled. Record values are never mutated.
func (s *Sift[T]) Index(records []T) {
	counts := make(map[string]map[string]int, len(s.specs))
	for _, spec := range s.specs {
		counts[spec.Name] = make(map[string]int)
	}
	for _, rec := range records {
		for _, spec := range s.specs {
			col := s.index.Column(spec.Name)
			for _, v := range spec.Values(rec) {
				counts[spec.Name][col.Normalize(v)]++
			}
		}
	}

	for name, prev := range s.counts {
		col := s.index.Column(name)
		for value := range prev {
			if counts[name][value] == 0 {
				col.Delete(value)
			}
		}
	}
	s.counts = counts

	sess := engine.NewSession[T](s.index, s.sessionOpts...)
	for _, rec := range records {
		vec := bitfield.New()
		for _, spec := range s.specs {
			col := s.index.Column(spec.Name)
			for _, v := range spec.Values(rec) {
				vec.Set(col.Add(v))
			}
		}
		sess.Add(rec, vec)
	}
	sess.Reset()
	s.session = sess

	s.logger.LogRebuild(len(records), s.index.Bitfield().Cardinality())
}

// Query resets the session, parses line and runs its operations in order.
// Clause defaults: a missing effect narrows (filter), a missing condition
// fuzzy-matches, and a clause without a field runs its condition across
// every column with the per-column matches unioned before the effect
// applies.
//
// Syntax errors and unknown field names are user errors; the previous
// session state is already gone by then, so callers should keep displaying
// their last good result set.
func (s *Sift[T]) Query(line string) ([]T, error) {
	s.session.Reset()

	ops, err := query.Parse(line)
	if err != nil {
		err = translateError(err)
		s.logger.LogQuery(line, 0, err)
		return nil, err
	}

	for _, op := range ops {
		eff := engine.EffectFilter
		if op.Effect != nil {
			eff = *op.Effect
		}
		cond := engine.ConditionMatches
		if op.Condition != nil {
			cond = *op.Condition
		}
		if op.Field != nil {
			if !s.index.Has(*op.Field) {
				fieldErr := &UnknownFieldError{Field: *op.Field}
				s.logger.LogQuery(line, 0, fieldErr)
				return nil, fieldErr
			}
			s.session.Search(*op.Field, cond, *op.Text, eff, 1)
		} else {
			s.session.SearchAll(cond, *op.Text, eff, 1)
		}
	}

	results := s.session.Results()
	s.logger.LogQuery(line, len(results), nil)
	return results, nil
}

// Reset returns the session to its baseline selection and clears all
// accumulated scores.
func (s *Sift[T]) Reset() {
	s.session.Reset()
}

// Search runs one operation against a single column. The column must be one
// of the declared specs; unknown names are a programmer error and panic,
// unlike Query which validates user input.
func (s *Sift[T]) Search(column string, cond Condition, text string, eff Effect, weight float64) {
	s.session.Search(column, cond, text, eff, weight)
}

// SearchAll runs one operation across every column.
func (s *Sift[T]) SearchAll(cond Condition, text string, eff Effect, weight float64) {
	s.session.SearchAll(cond, text, eff, weight)
}

// Results returns the current ranked record values.
func (s *Sift[T]) Results() []T {
	return s.session.Results()
}

// Len returns the number of indexed records.
func (s *Sift[T]) Len() int {
	return s.session.Len()
}

// Size returns the position high-water mark of the underlying index.
func (s *Sift[T]) Size() int {
	return s.index.Size()
}
