package engine

import (
	"fmt"

	"github.com/sift-go/sift/bitfield"
)

// Effect is a set operation combining a condition's match vector into the
// running selection.
type Effect int

const (
	// EffectAdd unions the matches into the selection.
	EffectAdd Effect = iota
	// EffectRemove subtracts the matches from the selection.
	EffectRemove
	// EffectFilter intersects the selection with the matches.
	EffectFilter
)

// String returns the effect's query-language name.
func (e Effect) String() string {
	switch e {
	case EffectAdd:
		return "add"
	case EffectRemove:
		return "remove"
	case EffectFilter:
		return "filter"
	default:
		return fmt.Sprintf("Effect(%d)", int(e))
	}
}

// combine applies the effect to the current selection. Neither input is
// modified.
func (e Effect) combine(current, matched *bitfield.Vector) *bitfield.Vector {
	switch e {
	case EffectAdd:
		return bitfield.Or(current, matched)
	case EffectRemove:
		return bitfield.AndNot(current, matched)
	case EffectFilter:
		return bitfield.And(current, matched)
	default:
		panic(fmt.Sprintf("engine: unknown effect %d", int(e)))
	}
}
