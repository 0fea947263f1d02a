package assertr

import (
	"fmt"
	"reflect"
	"strings"

	"assertr/eq"
	"assertr/internal/render"
)

// failure describes a failed assertion before it is formatted.
type failure struct {
	primary string
	details []string
}

// verify counts one assertion and reports the failure returned by check, if any.
func (a *AssertThat[T]) verify(check func(actual T) *failure) *AssertThat[T] {
	a.Track()

	if a.broken {
		return a
	}

	if f := check(a.Actual()); f != nil {
		a.st.fail(f.primary, f.details)
	}

	return a
}

// IsEqualTo asserts that the value equals expected according to eq.Compare.
// expected may be a pattern for the value's type.
func (a *AssertThat[T]) IsEqualTo(expected any) *AssertThat[T] {
	return a.verify(func(actual T) *failure {
		ctx := eq.NewContext()
		if eq.Compare(actual, expected, ctx) {
			return nil
		}

		return notEqual(expected, actual, ctx)
	})
}

// EqualTo is IsEqualTo with a statically typed expectation, which lets expected
// implement eq.Pattern[T] or T implement eq.Equaler[E].
func EqualTo[T, E any](a *AssertThat[T], expected E) *AssertThat[T] {
	return a.verify(func(actual T) *failure {
		ctx := eq.NewContext()
		if eq.Compare(actual, expected, ctx) {
			return nil
		}

		return notEqual(expected, actual, ctx)
	})
}

// IsNotEqualTo asserts that the value does not equal expected.
func (a *AssertThat[T]) IsNotEqualTo(expected any) *AssertThat[T] {
	return a.verify(func(actual T) *failure {
		if !eq.Compare(actual, expected, nil) {
			return nil
		}

		return &failure{primary: fmt.Sprintf("Expected: not %s\n\n  Actual: %s", render.Value(expected), render.Value(actual))}
	})
}

// Satisfies asserts that pred accepts the value. description names the property in
// the failure report.
func (a *AssertThat[T]) Satisfies(pred func(T) bool, description string) *AssertThat[T] {
	return a.verify(func(actual T) *failure {
		if pred(actual) {
			return nil
		}

		return &failure{primary: fmt.Sprintf("Actual: %s\n\ndid not satisfy: %s", render.Value(actual), description)}
	})
}

// Some asserts that the pointer is not nil and continues the chain on the pointee.
func Some[T any](a *AssertThat[*T]) *AssertThat[T] {
	return narrow(a,
		func(p *T) (T, bool) {
			if p == nil {
				var zero T
				return zero, false
			}

			return *p, true
		},
		func(*T) string {
			return fmt.Sprintf("Expected: non-nil %s\n\n  Actual: nil", reflect.TypeFor[*T]())
		},
	)
}

func notEqual(expected, actual any, ctx *eq.Context) *failure {
	want, got := render.Value(expected), render.Value(actual)
	if want == got && reflect.TypeOf(expected) != reflect.TypeOf(actual) {
		want = fmt.Sprintf("%s (%T)", want, expected)
		got = fmt.Sprintf("%s (%T)", got, actual)
	}

	primary := fmt.Sprintf("Expected: %s\n\n  Actual: %s", want, got)
	if diff := render.Diff(expected, actual); diff != "" {
		primary += "\n\nDiff:\n" + strings.TrimRight(diff, "\n")
	}

	return &failure{primary: primary, details: ctx.Differences()}
}
