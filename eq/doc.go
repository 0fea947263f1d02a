// Package eq compares values of possibly different types and records why they differ.
//
// Compare is the heterogeneous entry point: a live value can be checked against a
// value of its own type or against a pattern of a different shape. Values that
// implement Equaler or Pattern decide for themselves; every other pair falls back
// to native Go equality, which is atomic and records nothing.
//
// A Context collects the human-readable differences of one top-level comparison. It
// is passed by pointer through nested comparisons; a nil Context discards them.
//
// Eq is the slot type of generated pattern structs: Any matches everything, Exact
// requires equality with the live field. Field and FieldBy check one slot and record
// a difference of the form
//
//	"Name": expected "Bob", but was "Alice"
package eq
