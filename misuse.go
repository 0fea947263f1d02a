package assertr

//go:generate go tool stringer -type=MisuseKind -trimprefix=Misuse -output=misusekind_string.go

// MisuseKind classifies mistakes in test code, as opposed to failed assertions.
type MisuseKind int

const (
	MisuseNoAssertions MisuseKind = iota
	MisuseUndrained
	MisuseDrainedTwice
	MisuseNotCapturing
	MisuseNotOwned
	MisuseCaptureOnDerived
	MisusePendingFailures
	MisuseUncheckedChild
	MisuseNotEnded
	MisuseUsedAfterEnd
)

var misuseMessages = map[MisuseKind]string{
	MisuseNoAssertions:     "assertion chain ended without performing a single assertion",
	MisuseUndrained:        "assertion chain in capture mode ended without draining its failures; call CaptureFailures()",
	MisuseDrainedTwice:     "captured failures were already drained",
	MisuseNotCapturing:     "cannot capture failures of a chain that is not in capture mode; call WithCapture() first",
	MisuseNotOwned:         "cannot unwrap the actual value: it is borrowed, not owned",
	MisuseCaptureOnDerived: "capture mode can only be changed on a root chain, not on a derived one",
	MisusePendingFailures:  "cannot leave capture mode while captured failures are pending",
	MisuseUncheckedChild:   "derived assertion chain ended without performing a single assertion",
	MisuseNotEnded:         "assertion chain was never ended; finish it with End() or CaptureFailures()",
	MisuseUsedAfterEnd:     "assertion chain was used after it ended; start a new chain with That()",
}

// MisuseError is the panic payload for misuse of an assertion chain. It is raised
// regardless of the failure mode and is never captured as an assertion failure.
type MisuseError struct {
	Kind MisuseKind
	// Err is the underlying library error, if any.
	Err error
}

// Error returns the fixed message of the misuse kind.
func (e *MisuseError) Error() string {
	return "assertr: " + misuseMessages[e.Kind]
}

// Unwrap returns the underlying error for errors.Is and errors.As.
func (e *MisuseError) Unwrap() error {
	return e.Err
}

func misuse(kind MisuseKind, err error) *MisuseError {
	return &MisuseError{Kind: kind, Err: err}
}
