// Package ode provides core primitives for integrating ordinary
// differential equations:
//
//   - [State]: vector representing system state
//   - [System]: interface for autonomous or time-dependent ODE systems
//     (dX/dt = f(X, t))
//   - [Stepper]: numerical integrator interface
//   - [Trajectory]: uniformly sampled solution history
//
// SampleUniform drives a stepper from t=0 to a final time, landing exactly
// on a fixed number of equally spaced output times regardless of the
// stepper's internal step size.
//
// # Thread Safety
//
// Steppers registered here must be stateless: a single stepper value may be
// shared by concurrent SampleUniform calls.
package ode
