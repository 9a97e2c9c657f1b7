package gridmap

import (
	"github.com/rayannott/flipmap/internal/flip"
	"github.com/rayannott/flipmap/internal/integrators"
	"github.com/rayannott/flipmap/internal/pendulum"
)

// CellFunc maps one initial-angle pair to a flip count. Implementations
// must be pure: safe to call from any worker, no shared mutable state
// beyond the read-only constants.
type CellFunc func(theta1, theta2 float64, cnst pendulum.Constants) (int, error)

// Evaluate integrates one trajectory and counts flips of the second arm.
func Evaluate(theta1, theta2 float64, cnst pendulum.Constants) (int, error) {
	return EvaluateWith(theta1, theta2, cnst, integrators.DefaultTolerance)
}

// EvaluateWith is Evaluate with an explicit solver tolerance.
func EvaluateWith(theta1, theta2 float64, cnst pendulum.Constants, tol float64) (int, error) {
	traj, err := pendulum.SolveWith(cnst, theta1, theta2, integrators.NewRK45(), tol)
	if err != nil {
		return 0, err
	}
	return flip.Count(traj.Component(1)), nil
}
