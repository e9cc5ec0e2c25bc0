// Package normalize provides the text transforms applied to every value
// before it is indexed and to every query string before lookup.
//
// Transforms are pure and deterministic, and the useful ones are idempotent:
// the same pipeline runs over stored values and over query text, so a value
// that is already in normalized form must normalize to itself.
package normalize
