// Package bitfield provides the bit-vector set algebra and the position
// registry the search index is built on.
//
// A Vector is an unbounded-width set of bit positions. A Registry hands out
// unique positions and recycles released ones, so the number of live
// positions stays proportional to the number of distinct indexed values.
package bitfield
