package integrators

import (
	"math"
	"testing"

	"github.com/rayannott/flipmap/internal/ode"
)

func TestRK4Accuracy(t *testing.T) {
	sys := &harmonicOscillator{}
	integ := NewRK4()

	x := ode.State{1.0, 0.0}
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		x = integ.Step(sys, x, float64(i)*dt, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(x[0]-expectedX) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", x[0], expectedX)
	}
	if math.Abs(x[1]-expectedV) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", x[1], expectedV)
	}
}

func TestRK4_InputUntouched(t *testing.T) {
	sys := &harmonicOscillator{}
	integ := NewRK4()

	x := ode.State{1.0, 0.0}
	integ.Step(sys, x, 0, 0.01)

	if x[0] != 1.0 || x[1] != 0.0 {
		t.Errorf("Step mutated its input: %v", x)
	}
}

func BenchmarkRK4(b *testing.B) {
	integ := NewRK4()
	sys := &harmonicOscillator{}
	x := ode.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integ.Step(sys, x, 0, 0.01)
	}
}

func BenchmarkRK45(b *testing.B) {
	integ := NewRK45()
	sys := &harmonicOscillator{}
	x := ode.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integ.Step(sys, x, 0, 0.01)
	}
}
