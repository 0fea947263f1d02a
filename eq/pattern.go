package eq

import (
	"assertr/internal/render"
)

// Eq is one slot of a pattern: either Any, which matches every value, or Exact,
// which requires equality with the live value. The zero Eq is Any, so slots left
// out of a pattern literal are wildcards.
type Eq[T any] struct {
	exact bool
	value T
}

// Any returns a slot matching every value.
func Any[T any]() Eq[T] {
	return Eq[T]{}
}

// Exact returns a slot matching values equal to v.
func Exact[T any](v T) Eq[T] {
	return Eq[T]{exact: true, value: v}
}

// IsAny reports whether the slot is a wildcard.
func (e Eq[T]) IsAny() bool {
	return !e.exact
}

// Value returns the expected value of an Exact slot.
func (e Eq[T]) Value() (T, bool) {
	return e.value, e.exact
}

// Matches checks actual against the slot.
func (e Eq[T]) Matches(actual T, ctx *Context) bool {
	if !e.exact {
		return true
	}

	return Compare(actual, e.value, ctx)
}

// MatchAny checks a dynamically typed actual against the slot.
func (e Eq[T]) MatchAny(actual any, ctx *Context) bool {
	if !e.exact {
		return true
	}

	return Compare(actual, e.value, ctx)
}

// String returns "Any" or "Exact(<value>)".
func (e Eq[T]) String() string {
	if !e.exact {
		return "Any"
	}

	return "Exact(" + render.Value(e.value) + ")"
}

// GoString keeps pattern values readable in %#v output.
func (e Eq[T]) GoString() string {
	if !e.exact {
		return "eq.Any()"
	}

	return "eq.Exact(" + render.Value(e.value) + ")"
}

// Field checks one pattern slot against the live field value using Compare and
// records a difference named after the field on mismatch.
func Field[A, E any](ctx *Context, name string, actual A, expected Eq[E]) bool {
	return FieldBy(ctx, name, actual, expected, Compare[A, E])
}

// FieldBy is Field with a custom comparator declared for the field.
func FieldBy[A, E any](ctx *Context, name string, actual A, expected Eq[E], compare func(A, E, *Context) bool) bool {
	want, ok := expected.Value()
	if !ok {
		return true
	}

	if compare(actual, want, ctx) {
		return true
	}

	ctx.AddField(name, want, actual)

	return false
}
