package index

import (
	"fmt"
	"iter"

	"github.com/sift-go/sift/bitfield"
	"github.com/sift-go/sift/normalize"
)

// ColumnDecl declares one column at Index construction.
// A nil Transform falls back to normalize.Standard.
type ColumnDecl struct {
	Name      string
	Transform normalize.Transform
}

// Index is a named collection of Columns sharing one position registry.
// The column set is fixed at construction; the same Index instance is reused
// across rebuilds of the underlying records.
//
// Index is not safe for concurrent mutation.
type Index struct {
	registry *bitfield.Registry
	columns  map[string]*Column
	names    []string
}

// New creates an Index with the declared columns. Duplicate column names are
// a programmer error and panic.
func New(decls ...ColumnDecl) *Index {
	ix := &Index{
		registry: bitfield.NewRegistry(),
		columns:  make(map[string]*Column, len(decls)),
	}
	for _, d := range decls {
		if _, ok := ix.columns[d.Name]; ok {
			panic(fmt.Sprintf("index: duplicate column %q", d.Name))
		}
		t := d.Transform
		if t == nil {
			t = normalize.Standard
		}
		ix.columns[d.Name] = &Column{
			name:      d.Name,
			transform: t,
			registry:  ix.registry,
			positions: make(map[string]bitfield.Position),
		}
		ix.names = append(ix.names, d.Name)
	}
	return ix
}

// Column returns the named column. Looking up a column that was not declared
// at construction is a programmer error and panics.
func (ix *Index) Column(name string) *Column {
	c, ok := ix.columns[name]
	if !ok {
		panic(fmt.Sprintf("index: no such column %q", name))
	}
	return c
}

// Has reports whether the named column was declared.
func (ix *Index) Has(name string) bool {
	_, ok := ix.columns[name]
	return ok
}

// Columns iterates the columns in declaration order.
func (ix *Index) Columns() iter.Seq[*Column] {
	return func(yield func(*Column) bool) {
		for _, name := range ix.names {
			if !yield(ix.columns[name]) {
				return
			}
		}
	}
}

// Bitfield returns the union of all claimed positions across all columns.
func (ix *Index) Bitfield() *bitfield.Vector {
	return ix.registry.Field()
}

// Size returns the registry's position high-water mark.
func (ix *Index) Size() int {
	return ix.registry.Size()
}
