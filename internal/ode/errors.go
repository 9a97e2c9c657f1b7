package ode

import (
	"errors"
	"fmt"
)

// Domain errors for integration.
var (
	// ErrNonFinite indicates the solution left the finite domain (NaN or Inf).
	ErrNonFinite = errors.New("ode: non-finite state (NaN or Inf detected)")

	// ErrSampleCount indicates a requested sample count below two.
	ErrSampleCount = errors.New("ode: at least two output samples required")

	// ErrDuration indicates a non-positive final time.
	ErrDuration = errors.New("ode: final time must be positive")

	// ErrTolerance indicates a non-positive adaptive tolerance.
	ErrTolerance = errors.New("ode: tolerance must be positive")

	// ErrStepTooSmall indicates the adaptive step size collapsed.
	ErrStepTooSmall = errors.New("ode: adaptive step size below minimum")
)

// SolveError wraps an integration failure with the time it occurred at.
type SolveError struct {
	Time    float64
	Wrapped error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("integration failed at t=%.4f: %v", e.Time, e.Wrapped)
}

func (e *SolveError) Unwrap() error {
	return e.Wrapped
}
