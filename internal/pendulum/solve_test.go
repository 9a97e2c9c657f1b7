package pendulum

import (
	"math"
	"testing"

	"github.com/rayannott/flipmap/internal/flip"
)

func TestSolve_SampleCount(t *testing.T) {
	cnst := DefaultConstants()
	traj, err := Solve(cnst, 1.5, 1.5)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	if traj.Len() != Samples {
		t.Errorf("expected %d samples, got %d", Samples, traj.Len())
	}
	if traj.Times[0] != 0 {
		t.Errorf("expected t0=0, got %f", traj.Times[0])
	}
	if traj.Times[traj.Len()-1] != cnst.TFinal {
		t.Errorf("expected final time %g, got %f", cnst.TFinal, traj.Times[traj.Len()-1])
	}
}

func TestSolve_Deterministic(t *testing.T) {
	cnst := DefaultConstants()

	a, err := Solve(cnst, 2.0, -1.0)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	b, err := Solve(cnst, 2.0, -1.0)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	for i := range a.States {
		for k := range a.States[i] {
			if a.States[i][k] != b.States[i][k] {
				t.Fatalf("runs differ at sample %d component %d", i, k)
			}
		}
	}
}

func TestSolve_RestStaysAtRest(t *testing.T) {
	// hanging straight down with zero velocity: no motion, no flips
	cnst := DefaultConstants()
	cnst.TFinal = 25

	traj, err := Solve(cnst, 0, 0)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	if got := flip.Count(traj.Component(1)); got != 0 {
		t.Errorf("pendulum at rest flipped %d times", got)
	}
	final := traj.Final()
	if math.Abs(final[0]) > 1e-9 || math.Abs(final[1]) > 1e-9 {
		t.Errorf("pendulum at rest moved: %v", final)
	}
}

func TestSolve_EnergyDrift(t *testing.T) {
	cnst := DefaultConstants()
	dp := NewDouble(cnst)

	traj, err := Solve(cnst, 0.3, 0.3)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	initial := dp.Energy(traj.States[0])
	final := dp.Energy(traj.Final())
	drift := math.Abs(final-initial) / math.Abs(initial)

	if drift > 1e-3 {
		t.Errorf("energy drift too high: %e", drift)
	}
}

func TestSolve_InvalidConstants(t *testing.T) {
	cnst := DefaultConstants()
	cnst.L1 = -1

	if _, err := Solve(cnst, 1, 1); err == nil {
		t.Error("expected error for invalid constants")
	}
}
