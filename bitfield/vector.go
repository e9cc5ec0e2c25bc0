package bitfield

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Position identifies one normalized value within a running process.
// Positions are not stable across runs and are never serialized.
type Position uint32

// Vector is an unbounded-width set of bit positions.
// It wraps a roaring bitmap so callers never see word boundaries.
type Vector struct {
	rb *roaring.Bitmap
}

// New creates an empty Vector.
func New() *Vector {
	return &Vector{rb: roaring.New()}
}

// FromPosition returns a Vector with only position p set.
func FromPosition(p Position) *Vector {
	v := New()
	v.rb.Add(uint32(p))
	return v
}

// FromPositionWithTrailing returns a Vector with positions 0 through p set.
func FromPositionWithTrailing(p Position) *Vector {
	v := New()
	v.rb.AddRange(0, uint64(p)+1)
	return v
}

// ScanMostSignificant returns the highest set position, or -1 for an empty
// vector.
func ScanMostSignificant(v *Vector) int {
	if v.rb.IsEmpty() {
		return -1
	}
	return int(v.rb.Maximum())
}

// And returns the intersection of a and b. Neither input is modified.
func And(a, b *Vector) *Vector {
	return &Vector{rb: roaring.And(a.rb, b.rb)}
}

// Or returns the union of a and b. Neither input is modified.
func Or(a, b *Vector) *Vector {
	return &Vector{rb: roaring.Or(a.rb, b.rb)}
}

// AndNot returns a with every position of b cleared. Neither input is
// modified.
func AndNot(a, b *Vector) *Vector {
	return &Vector{rb: roaring.AndNot(a.rb, b.rb)}
}

// Not returns the complement of v bounded to positions 0 through width-1.
// An unbounded complement is meaningless since the vector is conceptually
// infinite-width with implicit trailing zeros.
func Not(v *Vector, width int) *Vector {
	if width <= 0 {
		return New()
	}
	return &Vector{rb: roaring.Flip(v.rb, 0, uint64(width))}
}

// Set adds position p to the vector.
func (v *Vector) Set(p Position) {
	v.rb.Add(uint32(p))
}

// Clear removes position p from the vector.
func (v *Vector) Clear(p Position) {
	v.rb.Remove(uint32(p))
}

// Contains reports whether position p is set.
func (v *Vector) Contains(p Position) bool {
	return v.rb.Contains(uint32(p))
}

// IsEmpty reports whether no position is set.
func (v *Vector) IsEmpty() bool {
	return v.rb.IsEmpty()
}

// Intersects reports whether v and other share at least one position.
func (v *Vector) Intersects(other *Vector) bool {
	return v.rb.Intersects(other.rb)
}

// Cardinality returns the number of set positions.
func (v *Vector) Cardinality() int {
	return int(v.rb.GetCardinality())
}

// Clone returns a deep copy of the vector.
func (v *Vector) Clone() *Vector {
	return &Vector{rb: v.rb.Clone()}
}

// Equal reports whether v and other contain exactly the same positions.
func (v *Vector) Equal(other *Vector) bool {
	return v.rb.Equals(other.rb)
}

// Iterate returns an iterator over the set positions in ascending order.
func (v *Vector) Iterate() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		it := v.rb.Iterator()
		for it.HasNext() {
			if !yield(Position(it.Next())) {
				return
			}
		}
	}
}

// String returns a compact representation for debugging.
func (v *Vector) String() string {
	return v.rb.String()
}
