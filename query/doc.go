// Package query parses the single-line search language into a sequence of
// operations for the search session.
//
// A query is a run of whitespace-separated clauses. Each clause is an
// optional effect prefix (-, + or &), an optional field name, an optional
// condition operator and a text payload:
//
//	-animal:dog +frog &tag^=pe "two words"
//
// Condition operators are : (matches), = (equals), %= (includes) and
// ^= (startsWith), with bracketed aliases [is]:, [equals]:, [matches]:,
// [includes]: and [contains]:. Text supports backslash escapes (\\, \", \',
// \␣, \n, \r, \xHH, \uHHHH, \u{H...}) and double-quoted spans in which
// spaces are literal.
//
// Parse errors are *SyntaxError values carrying the byte offset of the
// offending character and the parser stage reached, for diagnostics.
package query
