// Package lint provides the assertrend analyzer, which reports assertion chains
// that are never ended.
//
// An assertion chain checks its invariants (at least one assertion ran, captured
// failures were drained) only in End or CaptureFailures. The analyzer flags:
//   - expression statements that start a chain with That, ThatRef or ThatPanic and
//     drop it without ending it;
//   - local variables holding such a chain that are never ended, bound to a test
//     with BoundTo, returned, or handed to code outside the assertr package.
package lint
