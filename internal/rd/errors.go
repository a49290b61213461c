package rd

import (
	"errors"
	"fmt"
)

// Domain errors for a simulation run.
var (
	// ErrGrid indicates malformed discretization or reaction parameters.
	ErrGrid = errors.New("rd: invalid grid parameters")

	// ErrSingular indicates the implicit operator could not be inverted.
	// Unreachable for sigma >= 0 by diagonal dominance; surfacing it means
	// a construction bug.
	ErrSingular = errors.New("rd: singular implicit system")

	// ErrNonFinite indicates a reaction evaluation or solve produced NaN or
	// Inf, usually from a dt too large for the reaction stiffness.
	ErrNonFinite = errors.New("rd: non-finite state")
)

// StepError records where in the time loop a run failed. The wrapped error
// names the component (reaction evaluation or one of the solves) that
// produced the failure.
type StepError struct {
	Step    int
	Scheme  string
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Step, e.Scheme, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
