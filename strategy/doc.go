// Package strategy decides what happens to a failed assertion.
//
// ModeAbort unwinds immediately: the formatted failure report becomes the panic
// payload and no later assertion of the chain runs. ModeAccumulate stores the report
// and hands control back so the chain keeps going; the stored reports must be drained
// exactly once before the owning chain ends.
//
// Transitions:
//
//	Abort --EnterCapture--> Accumulate --Drain--> drained (terminal)
//	Accumulate --ExitCapture (no pending failures)--> Abort
package strategy
