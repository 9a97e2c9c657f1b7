package pendulum

import (
	"github.com/rayannott/flipmap/internal/integrators"
	"github.com/rayannott/flipmap/internal/ode"
)

// Samples is the number of uniformly spaced output times per trajectory.
const Samples = 201

// Solve integrates a double pendulum released at rest from the given arm
// angles and returns the trajectory sampled at Samples uniform times on
// [0, TFinal]. The default Dormand-Prince stepper and tolerance are used.
func Solve(cnst Constants, theta1, theta2 float64) (*ode.Trajectory, error) {
	return SolveWith(cnst, theta1, theta2, integrators.NewRK45(), integrators.DefaultTolerance)
}

// SolveWith is Solve with an explicit stepper and tolerance. The stepper
// must be stateless; gridmap workers call this concurrently.
func SolveWith(cnst Constants, theta1, theta2 float64, st ode.Stepper, tol float64) (*ode.Trajectory, error) {
	if err := cnst.Validate(); err != nil {
		return nil, err
	}

	sys := NewDouble(cnst)
	x0 := ode.State{theta1, theta2, 0, 0}

	return ode.SampleUniform(sys, x0, cnst.TFinal, Samples, st, tol)
}
