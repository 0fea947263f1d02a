package assertr

import (
	"fmt"
	"reflect"

	"assertr/internal/render"
)

// PanicValue is the outcome of running a function under ThatPanic.
type PanicValue struct {
	// Value is what the function panicked with.
	Value any
	// Panicked is false when the function returned normally.
	Panicked bool
}

// Message returns the panic value as text: strings as-is, errors and Stringers by
// their message, anything else formatted with %v.
func (p PanicValue) Message() string {
	switch v := p.Value.(type) {
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// ThatPanic runs fn and starts a chain on what it panicked with. A panic raised by
// a failed assertion inside fn becomes the actual value, so reports themselves can
// be asserted on.
func ThatPanic(fn func()) *AssertThat[PanicValue] {
	return That(catch(fn))
}

func catch(fn func()) (pv PanicValue) {
	defer func() {
		if r := recover(); r != nil {
			pv = PanicValue{Value: r, Panicked: true}
		}
	}()

	fn()

	return PanicValue{}
}

// PanicValueAs asserts that the function panicked with a value of type V and
// continues the chain on that value.
func PanicValueAs[V any](a *AssertThat[PanicValue]) *AssertThat[V] {
	return narrow(a,
		func(pv PanicValue) (V, bool) {
			v, ok := pv.Value.(V)
			return v, pv.Panicked && ok
		},
		func(pv PanicValue) string {
			if !pv.Panicked {
				return "Expected the function to panic, but it returned normally"
			}

			return fmt.Sprintf("Expected a panic value of type %s, but it was %T: %s",
				reflect.TypeFor[V](), pv.Value, render.Value(pv.Value))
		},
	)
}

// HasPanicMessage asserts that the function panicked and that the panic value's
// message equals msg.
func HasPanicMessage(a *AssertThat[PanicValue], msg string) *AssertThat[PanicValue] {
	return a.verify(func(pv PanicValue) *failure {
		if !pv.Panicked {
			return &failure{primary: "Expected the function to panic, but it returned normally"}
		}

		if pv.Message() == msg {
			return nil
		}

		return &failure{primary: fmt.Sprintf("Expected panic message: %s\n\n  Actual panic message: %s",
			render.Value(msg), render.Value(pv.Message()))}
	})
}
