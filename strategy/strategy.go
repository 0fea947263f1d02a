package strategy

import "errors"

//go:generate go tool stringer -type=Mode -trimprefix=Mode -output=mode_string.go

// Mode selects the failure handling of a chain.
type Mode int

const (
	ModeAbort Mode = iota
	ModeAccumulate
)

var (
	// ErrNotCapturing is returned when draining a strategy that is not accumulating.
	ErrNotCapturing = errors.New("failures are not being captured")
	// ErrAlreadyDrained is returned on every drain after the first one.
	ErrAlreadyDrained = errors.New("captured failures were already drained")
	// ErrPendingFailures is returned when leaving capture mode with stored failures.
	ErrPendingFailures = errors.New("captured failures are pending")
	// ErrUndrained is returned by Verify when captured failures were never drained.
	ErrUndrained = errors.New("captured failures were never drained")
)

// Strategy holds the failure mode and, in ModeAccumulate, the stored reports.
type Strategy struct {
	mode     Mode
	failures []string
	drained  bool
}

// New returns the default strategy, which aborts on the first failure.
func New() *Strategy {
	return &Strategy{mode: ModeAbort}
}

// Mode returns the active mode.
func (s *Strategy) Mode() Mode {
	return s.mode
}

// EnterCapture switches to ModeAccumulate. Entering twice keeps the stored failures.
func (s *Strategy) EnterCapture() error {
	if s.drained {
		return ErrAlreadyDrained
	}

	s.mode = ModeAccumulate

	return nil
}

// ExitCapture switches back to ModeAbort. It fails while reports are stored.
func (s *Strategy) ExitCapture() error {
	if s.mode == ModeAbort {
		return nil
	}

	if len(s.failures) > 0 {
		return ErrPendingFailures
	}

	s.mode = ModeAbort

	return nil
}

// Record handles one formatted failure report. In ModeAbort it panics with the
// report as payload; in ModeAccumulate it stores the report and returns.
func (s *Strategy) Record(report string) {
	if s.mode == ModeAbort {
		panic(report)
	}

	s.failures = append(s.failures, report)
}

// Pending returns a copy of the stored reports without draining them.
func (s *Strategy) Pending() []string {
	return append([]string(nil), s.failures...)
}

// Drain returns the stored reports. It succeeds exactly once.
func (s *Strategy) Drain() ([]string, error) {
	if s.mode != ModeAccumulate {
		return nil, ErrNotCapturing
	}

	if s.drained {
		return nil, ErrAlreadyDrained
	}

	s.drained = true
	failures := s.failures
	s.failures = nil

	if failures == nil {
		failures = []string{}
	}

	return failures, nil
}

// Drained reports whether Drain already succeeded.
func (s *Strategy) Drained() bool {
	return s.drained
}

// Verify checks the end-of-life invariant: a capturing strategy must have been drained.
func (s *Strategy) Verify() error {
	if s.mode == ModeAccumulate && !s.drained {
		return ErrUndrained
	}

	return nil
}
