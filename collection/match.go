package collection

import "slices"

// MatchAnyInOrder checks that every value is accepted by at least one predicate,
// regardless of the predicate's position, and returns the values no predicate
// accepted. Predicates that accept no value are not reported.
func MatchAnyInOrder[T any](values []T, predicates []func(T) bool) []T {
	var unmatched []T

	for _, v := range values {
		if !slices.ContainsFunc(predicates, func(p func(T) bool) bool { return p(v) }) {
			unmatched = append(unmatched, v)
		}
	}

	return unmatched
}
