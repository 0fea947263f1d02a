package assertr

import (
	"fmt"

	"assertr/collection"
	"assertr/eq"
	"assertr/internal/render"
)

// HasLength asserts that the slice has n elements.
func HasLength[E any](a *AssertThat[[]E], n int) *AssertThat[[]E] {
	return a.verify(func(actual []E) *failure {
		if len(actual) == n {
			return nil
		}

		return &failure{
			primary: fmt.Sprintf("Expected length: %d\n\n  Actual length: %d", n, len(actual)),
			details: []string{"Actual: " + render.List(actual)},
		}
	})
}

// ContainsExactly asserts that the slice equals expected element by element, in
// order. Elements are compared with eq.Compare, so expected may hold patterns.
func ContainsExactly[E, X any](a *AssertThat[[]E], expected []X) *AssertThat[[]E] {
	return a.verify(func(actual []E) *failure {
		res := collection.CompareSlices(actual, expected)
		if res.StrictlyEqual {
			return nil
		}

		return &failure{
			primary: fmt.Sprintf("Actual: %s\n\ndid not exactly match\n\nExpected: %s", render.List(actual), render.List(expected)),
			details: res.Details(),
		}
	})
}

// ContainsExactlyInAnyOrder asserts that the slice holds exactly the expected
// elements, in any order.
func ContainsExactlyInAnyOrder[E, X any](a *AssertThat[[]E], expected []X) *AssertThat[[]E] {
	return a.verify(func(actual []E) *failure {
		res := collection.CompareSlices(actual, expected)
		if res.StrictlyEqual || res.OnlyDifferingInOrder {
			return nil
		}

		return &failure{
			primary: fmt.Sprintf("Actual: %s\n\ndid not match in any order\n\nExpected: %s", render.List(actual), render.List(expected)),
			details: res.Details(),
		}
	})
}

// ContainsExactlyMatchingInAnyOrder asserts that the slice has one element per
// predicate and that every element is accepted by at least one predicate.
// Predicates accepting no element are not reported.
func ContainsExactlyMatchingInAnyOrder[E any](a *AssertThat[[]E], predicates ...func(E) bool) *AssertThat[[]E] {
	return a.verify(func(actual []E) *failure {
		unmatched := collection.MatchAnyInOrder(actual, predicates)
		if len(actual) == len(predicates) && len(unmatched) == 0 {
			return nil
		}

		var details []string
		if len(unmatched) > 0 {
			details = append(details, "Elements not matched by any predicate: "+render.List(unmatched))
		}

		if len(actual) != len(predicates) {
			details = append(details, fmt.Sprintf("Actual length %d does not match the number of predicates %d", len(actual), len(predicates)))
		}

		return &failure{
			primary: fmt.Sprintf("Actual: %s\n\ndid not match the given predicates in any order", render.List(actual)),
			details: details,
		}
	})
}

// MapEqualTo asserts that the map has the same keys as expected with equal values.
func MapEqualTo[K comparable, V, X any](a *AssertThat[map[K]V], expected map[K]X) *AssertThat[map[K]V] {
	return a.verify(func(actual map[K]V) *failure {
		ctx := eq.NewContext()
		if collection.CompareMaps(actual, expected, ctx) {
			return nil
		}

		return &failure{
			primary: fmt.Sprintf("Expected: %s\n\n  Actual: %s", render.Value(expected), render.Value(actual)),
			details: ctx.Differences(),
		}
	})
}
