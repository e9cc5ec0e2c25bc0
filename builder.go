package sift

import (
	"slices"

	"github.com/sift-go/sift/engine"
	"github.com/sift-go/sift/index"
	"github.com/sift-go/sift/normalize"
)

// New creates a new Sift builder for records of type T.
//
// Example:
//
//	s := sift.New[Animal]().
//	    Column("name", func(a Animal) []string { return []string{a.Name} }).
//	    Column("tag", func(a Animal) []string { return a.Tags }).
//	    SelectAll().
//	    MustBuild()
func New[T any]() Builder[T] {
	return Builder[T]{}
}

// Builder is an immutable fluent builder for creating Sift instances.
// Each method returns a new builder with the updated configuration.
type Builder[T any] struct {
	specs      []ColumnSpec[T]
	selectAll  bool
	matcher    engine.MatchFunc
	hasMatcher bool
	less       func(a, b T) bool
	logger     *Logger
}

// Column declares a searchable property normalized with the standard
// pipeline.
func (b Builder[T]) Column(name string, values func(T) []string) Builder[T] {
	return b.ColumnWith(ColumnSpec[T]{Name: name, Values: values})
}

// ColumnWith declares a searchable property with full control over its ColumnSpec,
// including a custom normalization pipeline.
func (b Builder[T]) ColumnWith(spec ColumnSpec[T]) Builder[T] {
	b.specs = append(slices.Clip(b.specs), spec)
	return b
}

// SelectAll makes a freshly reset session select every record instead of
// none, so that a first filter clause narrows from the full set.
func (b Builder[T]) SelectAll() Builder[T] {
	b.selectAll = true
	return b
}

// Matcher overrides the fuzzy primitive used by the matches condition.
// Default: DefaultMatcher. A nil matcher disables fuzzy matching entirely.
func (b Builder[T]) Matcher(m MatchFunc) Builder[T] {
	b.matcher = m
	b.hasMatcher = true
	return b
}

// TieBreak sets the comparator ordering records with equal scores.
func (b Builder[T]) TieBreak(less func(a, b T) bool) Builder[T] {
	b.less = less
	return b
}

// Logger sets the structured logger for operation tracing.
func (b Builder[T]) Logger(l *Logger) Builder[T] {
	b.logger = l
	return b
}

// Build creates the Sift instance.
func (b Builder[T]) Build() (*Sift[T], error) {
	if len(b.specs) == 0 {
		return nil, ErrNoColumns
	}

	decls := make([]index.ColumnDecl, 0, len(b.specs))
	seen := make(map[string]struct{}, len(b.specs))
	for _, spec := range b.specs {
		if _, dup := seen[spec.Name]; dup {
			return nil, &DuplicateColumnError{Name: spec.Name}
		}
		seen[spec.Name] = struct{}{}
		t := spec.Transform
		if t == nil {
			t = normalize.Standard
		}
		decls = append(decls, index.ColumnDecl{Name: spec.Name, Transform: t})
	}

	matcher := engine.MatchFunc(DefaultMatcher)
	if b.hasMatcher {
		matcher = b.matcher
	}
	logger := b.logger
	if logger == nil {
		logger = NoopLogger()
	}

	opts := []engine.SessionOption[T]{engine.WithMatcher[T](matcher)}
	if b.selectAll {
		opts = append(opts, engine.SelectAllOnReset[T]())
	}
	if b.less != nil {
		opts = append(opts, engine.WithTieBreak[T](b.less))
	}

	ix := index.New(decls...)
	s := &Sift[T]{
		specs:       b.specs,
		index:       ix,
		sessionOpts: opts,
		session:     engine.NewSession[T](ix, opts...),
		counts:      make(map[string]map[string]int, len(b.specs)),
		logger:      logger,
	}
	return s, nil
}

// MustBuild creates the Sift instance, panicking on error.
func (b Builder[T]) MustBuild() *Sift[T] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
