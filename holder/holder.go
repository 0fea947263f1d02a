package holder

import (
	"errors"
	"fmt"
	"reflect"
)

// Kind tells which variant a Holder carries.
type Kind int

const (
	KindBorrowed Kind = iota
	KindOwned
)

// String returns a human-readable variant name.
func (k Kind) String() string {
	switch k {
	case KindBorrowed:
		return "borrowed"
	case KindOwned:
		return "owned"
	default:
		return "unknown"
	}
}

// ErrNotOwned is matched by every OwnershipError.
var ErrNotOwned = errors.New("value is borrowed, not owned")

// OwnershipError is returned when an owned value is requested from a borrowed holder.
type OwnershipError struct {
	TypeName string
}

// Error returns the formatted ownership error.
func (e *OwnershipError) Error() string {
	return fmt.Sprintf("cannot take ownership of %s: %v", e.TypeName, ErrNotOwned)
}

// Unwrap returns ErrNotOwned for errors.Is.
func (e *OwnershipError) Unwrap() error {
	return ErrNotOwned
}

// Holder carries the actual value of an assertion.
type Holder[T any] struct {
	kind Kind
	ref  *T
	val  T
}

// Borrowed creates a holder referencing a value owned by the caller.
func Borrowed[T any](ref *T) Holder[T] {
	if ref == nil {
		panic("holder: borrowed reference cannot be nil")
	}

	return Holder[T]{kind: KindBorrowed, ref: ref}
}

// Owned creates a holder owning v.
func Owned[T any](v T) Holder[T] {
	return Holder[T]{kind: KindOwned, val: v}
}

// Kind returns the variant of the holder.
func (h *Holder[T]) Kind() Kind {
	return h.kind
}

// IsOwned reports whether the holder owns its value.
func (h *Holder[T]) IsOwned() bool {
	return h.kind == KindOwned
}

// Borrow returns a pointer to the held value. It works for both variants.
func (h *Holder[T]) Borrow() *T {
	if h.kind == KindBorrowed {
		return h.ref
	}

	return &h.val
}

// UnwrapOwned moves the value out of an owned holder.
func (h *Holder[T]) UnwrapOwned() (T, error) {
	if h.kind != KindOwned {
		var zero T
		return zero, &OwnershipError{TypeName: typeName[T]()}
	}

	return h.val, nil
}

// Map transforms the held value while keeping the variant that produced it.
// A borrowed holder stays borrowed and references the freshly mapped value.
func Map[T, U any](h Holder[T], f func(T) U) Holder[U] {
	mapped := f(*h.Borrow())
	if h.kind == KindBorrowed {
		return Borrowed(&mapped)
	}

	return Owned(mapped)
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
