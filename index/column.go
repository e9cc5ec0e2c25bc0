package index

import (
	"iter"

	"github.com/sift-go/sift/bitfield"
	"github.com/sift-go/sift/normalize"
)

// Column is one named, independently normalized searchable property.
// Its value map is bijective: no two normalized values share a position, and
// a position maps back to exactly one normalized value at a time.
//
// A Column is always owned by an Index and shares its position registry.
type Column struct {
	name      string
	transform normalize.Transform
	registry  *bitfield.Registry
	positions map[string]bitfield.Position
}

// Name returns the column name.
func (c *Column) Name() string {
	return c.name
}

// Normalize applies the column's transform to s.
func (c *Column) Normalize(s string) string {
	return c.transform(s)
}

// Add normalizes value and returns its position, claiming a fresh one from
// the shared registry on first sight. Re-adding a present value returns the
// existing position.
func (c *Column) Add(value string) bitfield.Position {
	key := c.transform(value)
	if p, ok := c.positions[key]; ok {
		return p
	}
	p := c.registry.Claim()
	c.positions[key] = p
	return p
}

// Delete normalizes value and, when present, relinquishes its position and
// removes the entry. Deleting an absent value is a no-op.
func (c *Column) Delete(value string) {
	key := c.transform(value)
	p, ok := c.positions[key]
	if !ok {
		return
	}
	c.registry.Relinquish(p)
	delete(c.positions, key)
}

// Get normalizes value and returns its position, if any.
func (c *Column) Get(value string) (bitfield.Position, bool) {
	p, ok := c.positions[c.transform(value)]
	return p, ok
}

// Len returns the number of distinct normalized values in the column.
func (c *Column) Len() int {
	return len(c.positions)
}

// All iterates the (normalizedValue, position) pairs in unspecified order.
func (c *Column) All() iter.Seq2[string, bitfield.Position] {
	return func(yield func(string, bitfield.Position) bool) {
		for v, p := range c.positions {
			if !yield(v, p) {
				return
			}
		}
	}
}
