// Package sift provides fast, incremental, multi-criteria search over an
// in-memory collection of structured records.
//
// Records expose named string properties (columns). Every distinct
// normalized value gets a bit position in a shared registry; a record's
// combined bit vector is the union of the positions of all its values. A
// search session then narrows, widens and re-ranks a working selection by
// combining per-column match conditions with set effects, driven either
// programmatically or by the single-line query language:
//
//	-animal:dog +tag^=pe "canis lupus"
//
// # Quick Start
//
//	type Animal struct {
//	    Name string
//	    Tags []string
//	}
//
//	s := sift.New[Animal]().
//	    Column("name", func(a Animal) []string { return []string{a.Name} }).
//	    Column("tag", func(a Animal) []string { return a.Tags }).
//	    SelectAll().
//	    MustBuild()
//
//	s.Index(animals)
//	ranked, err := s.Query("tag:pet -name^=ca")
//
// Rebuilding after the record set changes reuses the same index: positions
// of values no longer present are recycled.
//
// The core is single-threaded and performs no I/O. Hosts wanting concurrent
// queries over one record set must serialize access or build one Sift per
// query path.
package sift
