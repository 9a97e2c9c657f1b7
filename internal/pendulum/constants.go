package pendulum

import (
	"errors"
	"math"
)

const (
	DefaultGravity  = 9.8
	DefaultLength   = 1.0
	DefaultMass     = 1.0
	DefaultDuration = 10.0
)

// Validation errors for physical constants.
var (
	ErrLength   = errors.New("pendulum: rod lengths must be positive")
	ErrMass     = errors.New("pendulum: bob masses must be positive")
	ErrDuration = errors.New("pendulum: simulated duration must be positive")
	ErrGravity  = errors.New("pendulum: gravity must be non-negative")
)

// Constants holds the physical parameters of a double pendulum run.
// Constructed once and shared read-only; never mutated.
type Constants struct {
	G      float64 `yaml:"g" json:"g"`
	L1     float64 `yaml:"l1" json:"l1"`
	L2     float64 `yaml:"l2" json:"l2"`
	M1     float64 `yaml:"m1" json:"m1"`
	M2     float64 `yaml:"m2" json:"m2"`
	TFinal float64 `yaml:"t_final" json:"t_final"`
}

func DefaultConstants() Constants {
	return Constants{
		G:      DefaultGravity,
		L1:     DefaultLength,
		L2:     DefaultLength,
		M1:     DefaultMass,
		M2:     DefaultMass,
		TFinal: DefaultDuration,
	}
}

func (c Constants) Validate() error {
	for _, v := range []float64{c.G, c.L1, c.L2, c.M1, c.M2, c.TFinal} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("pendulum: non-finite constant")
		}
	}
	if c.L1 <= 0 || c.L2 <= 0 {
		return ErrLength
	}
	if c.M1 <= 0 || c.M2 <= 0 {
		return ErrMass
	}
	if c.TFinal <= 0 {
		return ErrDuration
	}
	if c.G < 0 {
		return ErrGravity
	}
	return nil
}
