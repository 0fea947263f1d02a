// Package assertr provides fluent assertion chains with structural, diffable
// failure reports.
//
// A chain starts by wrapping the value under test:
//
//	assertr.That(got).IsEqualTo(want).End()
//
// That owns the value, ThatRef borrows it and ThatPanic runs a function and holds
// whatever it panicked with. Every chain must be finished with End (or
// CaptureFailures in capture mode); a chain that performed no assertion, or a
// capturing chain whose failures were never collected, is a programming error and
// panics with a *MisuseError.
//
// By default the first failed assertion panics with the formatted report. WithCapture
// switches a root chain to collecting reports instead:
//
//	a := assertr.That(got).WithCapture()
//	a.IsEqualTo(want).Satisfies(valid, "is valid")
//	failures := a.CaptureFailures()
//
// Derive projects a sub-value into a child chain whose failures and assertion
// counts still belong to the root; Map narrows the value in place and keeps the
// chain's identity.
package assertr
