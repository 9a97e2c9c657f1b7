package ode

// SampleUniform integrates sys from x0 over [0, tFinal] and returns the
// solution at samples equally spaced output times. Adaptive steppers choose
// their own interior step sizes but are clamped so that every output time is
// hit exactly; fixed steppers take one step per output interval. The result
// is deterministic for fixed inputs and tolerance.
func SampleUniform(sys System, x0 State, tFinal float64, samples int, st Stepper, tol float64) (*Trajectory, error) {
	if samples < 2 {
		return nil, ErrSampleCount
	}
	if tFinal <= 0 {
		return nil, ErrDuration
	}
	if tol <= 0 {
		return nil, ErrTolerance
	}
	if !x0.IsValid() {
		return nil, &SolveError{Time: 0, Wrapped: ErrNonFinite}
	}

	tr := &Trajectory{
		Times:  make([]float64, samples),
		States: make([]State, samples),
	}
	tr.States[0] = x0.Clone()

	adaptive, _ := st.(AdaptiveStepper)

	h := tFinal / float64(samples-1)
	x := x0.Clone()
	t := 0.0
	dt := h

	for i := 1; i < samples; i++ {
		target := tFinal * float64(i) / float64(samples-1)

		for t < target {
			step := dt
			clamped := false
			if t+step >= target {
				step = target - t
				clamped = true
			}

			if adaptive != nil {
				next, dtNext, err := adaptive.StepAdaptive(sys, x, t, step, tol)
				if err != nil {
					return nil, &SolveError{Time: t, Wrapped: err}
				}
				x = next
				if dtNext > h {
					dtNext = h
				}
				if dtNext < h*1e-12 {
					return nil, &SolveError{Time: t, Wrapped: ErrStepTooSmall}
				}
				dt = dtNext
			} else {
				x = st.Step(sys, x, t, step)
			}

			if clamped {
				t = target
			} else {
				t += step
			}

			if !x.IsValid() {
				return nil, &SolveError{Time: t, Wrapped: ErrNonFinite}
			}
		}

		tr.Times[i] = target
		tr.States[i] = x.Clone()
	}

	return tr, nil
}
