package a

import (
	"testing"

	"assertr"
)

func dropped() {
	assertr.That(1).IsEqualTo(1) // want `assertion chain is dropped without End\(\) or CaptureFailures\(\)`
	assertr.That(1).IsEqualTo(1).End()
	assertr.HasLength(assertr.That([]int{1}), 1) // want `assertion chain is dropped`
	assertr.PanicValueAs[string](assertr.ThatPanic(func() { panic("x") })) // want `assertion chain is dropped`
	_ = assertr.That(1).WithCapture().CaptureFailures()
}

func neverEnded() {
	a := assertr.That(1) // want `assertion chain a is never ended; call a.End\(\) or a.CaptureFailures\(\)`
	a.IsEqualTo(1)
}

func derivedEndDoesNotEndRoot() {
	a := assertr.That("ab") // want `assertion chain a is never ended`
	assertr.Derive(a, func(s string) int { return len(s) }).IsEqualTo(2).End()
}

func ended() {
	a := assertr.That(1)
	a.IsEqualTo(1)
	a.End()
}

func endedThroughChain() {
	a := assertr.That(1)
	a.IsEqualTo(1).IsEqualTo(1).End()
}

func endedThroughMap() {
	a := assertr.That(1)
	assertr.Map(a, func(v int) int { return v }).End()
}

func deferred() {
	var a = assertr.That(1)
	defer a.End()
	a.IsEqualTo(1)
}

func captured() []string {
	a := assertr.That(1).WithCapture()
	a.IsEqualTo(2)

	return a.CaptureFailures()
}

func bound(t *testing.T) {
	a := assertr.That(1).BoundTo(t)
	a.IsEqualTo(1)
}

func boundMidChain(t *testing.T) {
	a := assertr.That(1).BoundTo(t).IsEqualTo(1)
	a.IsEqualTo(1)

	var b = assertr.HasLength(assertr.That([]int{1}).BoundTo(t), 1)
	b.IsEqualTo([]int{1})
}

func returned() *assertr.AssertThat[int] {
	a := assertr.That(1)

	return a
}

func handedOff() {
	a := assertr.That(1)
	finish(a)
}

func finish(a *assertr.AssertThat[int]) { a.End() }

func fromParameter(a *assertr.AssertThat[int]) {
	a.IsEqualTo(1)
	b := assertr.Derive(a, func(v int) int { return v })
	b.IsEqualTo(1)
}
