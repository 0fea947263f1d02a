package assertr

import (
	"errors"
	"fmt"
	"testing"

	"assertr/holder"
	"assertr/strategy"
)

// AssertThat is one link of an assertion chain over a value of type T.
type AssertThat[T any] struct {
	actual holder.Holder[T]
	st     *state

	// broken is set once a narrowing step failed in capture mode. Assertions on a
	// broken chain are counted but not evaluated: the value is a zero stand-in.
	broken bool
}

// That starts a chain owning actual.
func That[T any](actual T) *AssertThat[T] {
	return &AssertThat[T]{actual: holder.Owned(actual), st: newRootState()}
}

// ThatRef starts a chain borrowing *actual.
func ThatRef[T any](actual *T) *AssertThat[T] {
	return &AssertThat[T]{actual: holder.Borrowed(actual), st: newRootState()}
}

// Actual returns the value under test.
func (a *AssertThat[T]) Actual() T {
	return *a.actual.Borrow()
}

// ActualRef returns a pointer to the value under test. For a borrowed value this is
// the caller's original pointer.
func (a *AssertThat[T]) ActualRef() *T {
	return a.actual.Borrow()
}

// UnwrapOwned moves the owned value out of the chain. Calling it on a borrowed
// value is a misuse and panics even in capture mode.
func (a *AssertThat[T]) UnwrapOwned() T {
	v, err := a.actual.UnwrapOwned()
	if err != nil {
		panic(misuse(MisuseNotOwned, err))
	}

	return v
}

// Track counts one assertion on this chain and all its ancestors.
func (a *AssertThat[T]) Track() {
	a.st.track()
}

// Assertions returns how many assertions ran on this chain, including those of
// derived chains.
func (a *AssertThat[T]) Assertions() int {
	return a.st.assertions
}

// WithDetailMessage attaches msg to every report this chain produces from now on.
func (a *AssertThat[T]) WithDetailMessage(msg string) *AssertThat[T] {
	a.st.details = append(a.st.details, msg)
	return a
}

// WithDetailMessagef is WithDetailMessage with formatting.
func (a *AssertThat[T]) WithDetailMessagef(format string, args ...any) *AssertThat[T] {
	return a.WithDetailMessage(fmt.Sprintf(format, args...))
}

// WithSubjectName names the value under test in reports.
func (a *AssertThat[T]) WithSubjectName(name string) *AssertThat[T] {
	a.st.subject = name
	return a
}

// WithLocation enables or disables the source location header of reports.
func (a *AssertThat[T]) WithLocation(enabled bool) *AssertThat[T] {
	a.st.location = enabled
	return a
}

// Fail reports a failed assertion with the given primary message. In abort mode it
// panics with the report; in capture mode the report is stored on the root chain.
func (a *AssertThat[T]) Fail(msg string) {
	a.st.fail(msg, nil)
}

// Failf is Fail with formatting.
func (a *AssertThat[T]) Failf(format string, args ...any) {
	a.st.fail(fmt.Sprintf(format, args...), nil)
}

// IsCapturing reports whether failures of this chain are collected instead of
// aborting.
func (a *AssertThat[T]) IsCapturing() bool {
	return a.st.root().strategy.Mode() == strategy.ModeAccumulate
}

// WithCapture makes the chain collect failures instead of panicking on the first
// one. Only a root chain can switch modes.
func (a *AssertThat[T]) WithCapture() *AssertThat[T] {
	if !a.st.isRoot() {
		panic(misuse(MisuseCaptureOnDerived, nil))
	}

	if err := a.st.strategy.EnterCapture(); err != nil {
		panic(misuse(MisuseDrainedTwice, err))
	}

	return a
}

// WithoutCapture switches a capturing root chain back to aborting. No failures may
// be pending.
func (a *AssertThat[T]) WithoutCapture() *AssertThat[T] {
	if !a.st.isRoot() {
		panic(misuse(MisuseCaptureOnDerived, nil))
	}

	if err := a.st.strategy.ExitCapture(); err != nil {
		panic(misuse(MisusePendingFailures, err))
	}

	return a
}

// CaptureFailures drains the collected failure reports and ends the chain. It can
// be called exactly once, on a capturing root chain.
func (a *AssertThat[T]) CaptureFailures() []string {
	if !a.st.isRoot() {
		panic(misuse(MisuseCaptureOnDerived, nil))
	}

	failures, err := a.st.strategy.Drain()
	switch {
	case errors.Is(err, strategy.ErrAlreadyDrained):
		panic(misuse(MisuseDrainedTwice, err))
	case err != nil:
		panic(misuse(MisuseNotCapturing, err))
	}

	a.st.end()

	return failures
}

// End finishes the chain. It panics with a *MisuseError when the chain performed
// no assertion, when a derived chain performed none, or when a capturing root was
// not drained. Ending twice is a no-op.
func (a *AssertThat[T]) End() {
	a.st.end()
}

// BoundTo registers a cleanup on tb that reports the chain's root if it was never
// ended. Chains that aborted on a failure are not reported again.
func (a *AssertThat[T]) BoundTo(tb testing.TB) *AssertThat[T] {
	tb.Helper()

	root := a.st.root()
	tb.Cleanup(func() {
		if !root.ended && !root.aborted {
			tb.Errorf("%v", misuse(MisuseNotEnded, nil))
		}
	})

	return a
}
