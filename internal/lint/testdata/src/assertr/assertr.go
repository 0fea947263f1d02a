package assertr

import "testing"

type AssertThat[T any] struct{ actual T }

func That[T any](actual T) *AssertThat[T]       { return &AssertThat[T]{actual: actual} }
func ThatRef[T any](actual *T) *AssertThat[T]   { return &AssertThat[T]{actual: *actual} }
func ThatPanic(fn func()) *AssertThat[any]      { return &AssertThat[any]{} }
func (a *AssertThat[T]) IsEqualTo(any) *AssertThat[T] { return a }
func (a *AssertThat[T]) WithCapture() *AssertThat[T]  { return a }
func (a *AssertThat[T]) BoundTo(testing.TB) *AssertThat[T] { return a }
func (a *AssertThat[T]) CaptureFailures() []string    { return nil }
func (a *AssertThat[T]) End()                         {}

func Derive[T, U any](a *AssertThat[T], f func(T) U) *AssertThat[U] {
	return &AssertThat[U]{actual: f(a.actual)}
}

func Map[T, U any](a *AssertThat[T], f func(T) U) *AssertThat[U] {
	return &AssertThat[U]{actual: f(a.actual)}
}

func HasLength[E any](a *AssertThat[[]E], n int) *AssertThat[[]E] { return a }

func PanicValueAs[V any](a *AssertThat[any]) *AssertThat[V] { return &AssertThat[V]{} }
