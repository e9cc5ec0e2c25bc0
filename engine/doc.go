// Package engine implements the search session: a running selection vector
// and score accumulator that a sequence of search operations narrows, widens
// and re-ranks, plus the closed sets of match conditions and set effects
// those operations are built from.
//
// A Session is single-threaded. Operations compose in call order; hosts that
// want concurrent querying over the same index must serialize access or run
// one session per query.
package engine
