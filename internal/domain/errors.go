package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownStepKind = errors.New("unknown step kind")
	ErrUnknownChannel  = errors.New("unknown output channel")
	ErrNegativeDelay   = errors.New("negative step delay")
	ErrInputClosed     = errors.New("input stream closed")
	ErrNotANumber      = errors.New("not a valid number")
)

// FailureKind classifies what a step failure means for the process:
// benign and invalid-input failures are reported and execution continues,
// interrupted and unexpected failures terminate with non-zero status.
type FailureKind int

const (
	FailureBenign FailureKind = iota
	FailureInvalidInput
	FailureInterrupted
	FailureUnexpected
)

func (k FailureKind) String() string {
	switch k {
	case FailureBenign:
		return "benign"
	case FailureInvalidInput:
		return "invalid-input"
	case FailureInterrupted:
		return "interrupted"
	case FailureUnexpected:
		return "unexpected"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// Fatal reports whether a failure of this kind must surface as a
// non-zero process exit.
func (k FailureKind) Fatal() bool {
	return k == FailureInterrupted || k == FailureUnexpected
}

// StepError attaches a failure classification to the error produced by
// one fallible step. Callers inspect the kind immediately at the call
// site; nothing propagates past the step that failed except fatal kinds.
type StepError struct {
	Kind FailureKind
	Err  error
}

func NewStepError(kind FailureKind, err error) *StepError {
	return &StepError{Kind: kind, Err: err}
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure classification from err, defaulting to
// FailureUnexpected for errors no step classified.
func KindOf(err error) FailureKind {
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr.Kind
	}
	return FailureUnexpected
}
