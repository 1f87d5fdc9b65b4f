package orbit

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrDegenerateGeometry indicates a position where the gravity field is
	// undefined: zero radius or a non-finite coordinate.
	ErrDegenerateGeometry = errors.New("orbit: degenerate geometry (zero or non-finite radius)")

	// ErrUnsupportedMethod indicates an unknown integration method token.
	ErrUnsupportedMethod = errors.New("orbit: unsupported integration method")

	// ErrInvalidConfig indicates a non-positive time step or gravitational
	// parameter, or a negative step count.
	ErrInvalidConfig = errors.New("orbit: invalid simulation config")

	// ErrEmptyTrajectory indicates apsis analysis on a trajectory with no
	// states.
	ErrEmptyTrajectory = errors.New("orbit: empty trajectory")
)

// StepError wraps an error with the step at which it occurred.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.1fs): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
