package collection

import (
	"fmt"
	"slices"

	"assertr/eq"
	"assertr/internal/render"
)

// SliceComparison is the outcome of CompareSlices(a, b).
type SliceComparison[A, B any] struct {
	// StrictlyEqual is set when both slices are index-aligned equal.
	StrictlyEqual bool
	// OnlyDifferingInOrder is set when both slices hold the same elements with the
	// same multiplicity of matches but in a different order.
	OnlyDifferingInOrder bool
	// NotInA lists the elements of b that have no equal counterpart anywhere in a.
	NotInA []B
	// NotInB lists the elements of a that have no equal counterpart anywhere in b.
	NotInB []A

	LenA int
	LenB int
}

// CompareSlices classifies a and b as strictly equal, equal but reordered, or
// different. Membership is tested per occurrence, duplicates are not collapsed.
func CompareSlices[A, B any](a []A, b []B) SliceComparison[A, B] {
	res := SliceComparison[A, B]{LenA: len(a), LenB: len(b)}

	if eq.Sequence(a, b) {
		res.StrictlyEqual = true
		return res
	}

	for _, x := range a {
		if !slices.ContainsFunc(b, func(y B) bool { return eq.Compare(x, y, nil) }) {
			res.NotInB = append(res.NotInB, x)
		}
	}

	for _, y := range b {
		if !slices.ContainsFunc(a, func(x A) bool { return eq.Compare(x, y, nil) }) {
			res.NotInA = append(res.NotInA, y)
		}
	}

	res.OnlyDifferingInOrder = len(a) == len(b) && len(res.NotInA) == 0 && len(res.NotInB) == 0

	return res
}

// Details explains a comparison of actual (a) against expected (b) as detail
// messages. A reordering is reported as a single message; otherwise unexpected and
// missing elements are listed, followed by a length mismatch if any.
func (c SliceComparison[A, B]) Details() []string {
	if c.StrictlyEqual {
		return nil
	}

	if c.OnlyDifferingInOrder {
		return []string{"The order of elements does not match!"}
	}

	var details []string
	if len(c.NotInB) > 0 {
		details = append(details, "Elements not expected: "+render.List(c.NotInB))
	}

	if len(c.NotInA) > 0 {
		details = append(details, "Elements not found: "+render.List(c.NotInA))
	}

	if c.LenA != c.LenB {
		details = append(details, fmt.Sprintf("Actual length %d does not match expected length %d", c.LenA, c.LenB))
	}

	return details
}
