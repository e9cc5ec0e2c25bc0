// Package index maintains the column-oriented value index: per named
// property, a bijective map from normalized value to bit position, with all
// columns of one index sharing a single position registry.
package index
