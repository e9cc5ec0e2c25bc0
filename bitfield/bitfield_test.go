package bitfield

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVector_FromPosition(t *testing.T) {
	for _, p := range []Position{0, 1, 31, 32, 63, 64, 1000} {
		v := FromPosition(p)
		require.True(t, v.Contains(p))
		require.Equal(t, 1, v.Cardinality())
		require.Equal(t, int(p), ScanMostSignificant(v))
	}
}

func TestVector_FromPositionWithTrailing(t *testing.T) {
	for _, p := range []Position{0, 1, 7, 64, 129} {
		v := FromPositionWithTrailing(p)
		require.Equal(t, int(p)+1, v.Cardinality())
		for i := Position(0); i <= p; i++ {
			require.True(t, v.Contains(i))
		}
		require.False(t, v.Contains(p+1))
	}
}

func TestVector_ScanMostSignificantEmpty(t *testing.T) {
	require.Equal(t, -1, ScanMostSignificant(New()))
}

func TestVector_AlgebraLaws(t *testing.T) {
	a := New()
	a.Set(1)
	a.Set(5)
	a.Set(70)

	b := New()
	b.Set(5)
	b.Set(9)

	require.True(t, And(a, b).Equal(And(b, a)))
	require.True(t, Or(a, b).Equal(Or(b, a)))
	require.True(t, AndNot(a, a).IsEmpty())

	// Inputs stay untouched by the pure operations.
	require.Equal(t, 3, a.Cardinality())
	require.Equal(t, 2, b.Cardinality())

	diff := AndNot(a, b)
	require.True(t, diff.Contains(1))
	require.False(t, diff.Contains(5))
	require.True(t, diff.Contains(70))
}

func TestVector_BoundedComplement(t *testing.T) {
	v := New()
	v.Set(0)
	v.Set(2)

	n := Not(v, 4)
	require.False(t, n.Contains(0))
	require.True(t, n.Contains(1))
	require.False(t, n.Contains(2))
	require.True(t, n.Contains(3))
	require.False(t, n.Contains(4))

	// Not(v, w) == FromPositionWithTrailing(w-1) minus v.
	require.True(t, n.Equal(AndNot(FromPositionWithTrailing(3), v)))

	require.True(t, Not(New(), 0).IsEmpty())
}

func TestVector_Intersects(t *testing.T) {
	a := FromPosition(3)
	b := FromPosition(4)
	require.False(t, a.Intersects(b))
	b.Set(3)
	require.True(t, a.Intersects(b))
}

func TestVector_Iterate(t *testing.T) {
	v := New()
	want := []Position{2, 40, 41, 300}
	for _, p := range want {
		v.Set(p)
	}
	var got []Position
	for p := range v.Iterate() {
		got = append(got, p)
	}
	require.Equal(t, want, got)
}

func TestRegistry_ClaimSequential(t *testing.T) {
	r := NewRegistry()
	require.Equal(t, Position(0), r.Claim())
	require.Equal(t, Position(1), r.Claim())
	require.Equal(t, Position(2), r.Claim())
	require.Equal(t, 3, r.Size())
	require.Equal(t, 3, r.Field().Cardinality())
}

func TestRegistry_Recycling(t *testing.T) {
	r := NewRegistry()
	first := r.Claim()
	r.Claim()
	r.Relinquish(first)

	// Size is a high-water mark: recycled positions still count.
	require.Equal(t, 2, r.Size())
	require.False(t, r.Field().Contains(first))

	require.Equal(t, first, r.Claim())
	require.Equal(t, 2, r.Size())
	require.True(t, r.Field().Contains(first))
}

func TestRegistry_RelinquishUnclaimedPanics(t *testing.T) {
	r := NewRegistry()
	require.Panics(t, func() { r.Relinquish(0) })

	p := r.Claim()
	r.Relinquish(p)
	require.Panics(t, func() { r.Relinquish(p) })
}

func TestRegistry_FieldIsCopy(t *testing.T) {
	r := NewRegistry()
	p := r.Claim()
	f := r.Field()
	f.Clear(p)
	require.True(t, r.Field().Contains(p))
}
