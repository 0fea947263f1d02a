// Package collection compares slices and maps element by element on top of the eq
// package and explains the outcome: which elements are missing, which are extra and
// whether only the order differs.
//
// Membership is decided with eq.Compare, so the two sides may have different element
// types, e.g. live structs on one side and generated patterns on the other.
package collection
