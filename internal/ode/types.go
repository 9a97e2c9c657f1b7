package ode

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

type System interface {
	Derive(x State, t float64) State
	Dim() int
}

// Hamiltonian is implemented by systems that can report total energy.
type Hamiltonian interface {
	Energy(x State) float64
}

type Stepper interface {
	Step(sys System, x State, t, dt float64) State
}

// AdaptiveStepper additionally proposes the next step size from a local
// error estimate against the given tolerance.
type AdaptiveStepper interface {
	Stepper
	StepAdaptive(sys System, x State, t, dt, tol float64) (State, float64, error)
}

// Trajectory is a solution history sampled at uniformly spaced times.
// It is owned by the caller that requested it and never shared.
type Trajectory struct {
	Times  []float64
	States []State
}

func (tr *Trajectory) Len() int { return len(tr.Times) }

// Component extracts the history of a single state variable.
func (tr *Trajectory) Component(i int) []float64 {
	vals := make([]float64, len(tr.States))
	for k, x := range tr.States {
		vals[k] = x[i]
	}
	return vals
}

func (tr *Trajectory) Final() State {
	if len(tr.States) == 0 {
		return nil
	}
	return tr.States[len(tr.States)-1]
}
