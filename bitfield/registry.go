package bitfield

import "fmt"

// Registry allocates unique bit positions and recycles released ones.
// A position is either claimed (set in the registry's field) or free.
//
// Registry is not safe for concurrent use.
type Registry struct {
	next     Position
	recycled []Position
	field    *Vector
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{field: New()}
}

// Claim returns a position not currently claimed, reusing a recycled
// position when one is available.
func (r *Registry) Claim() Position {
	var p Position
	if n := len(r.recycled); n > 0 {
		p = r.recycled[n-1]
		r.recycled = r.recycled[:n-1]
	} else {
		p = r.next
		r.next++
	}
	r.field.Set(p)
	return p
}

// Relinquish returns a claimed position to the free list. Releasing a
// position that is not claimed is a contract violation and panics, since
// tolerating it would corrupt the value/position bijection.
func (r *Registry) Relinquish(p Position) {
	if !r.field.Contains(p) {
		panic(fmt.Sprintf("bitfield: relinquish of unclaimed position %d", p))
	}
	r.field.Clear(p)
	r.recycled = append(r.recycled, p)
}

// Field returns the union of all currently claimed positions.
// The returned vector is a copy.
func (r *Registry) Field() *Vector {
	return r.field.Clone()
}

// Size returns the high-water mark of issued positions. Recycled positions
// still count until they are claimed again.
func (r *Registry) Size() int {
	return int(r.next)
}
