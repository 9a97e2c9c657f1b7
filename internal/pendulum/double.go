package pendulum

import (
	"math"

	"github.com/rayannott/flipmap/internal/ode"
)

// Double is the classic double pendulum reduced to first order over the
// state vector (theta1, theta2, omega1, omega2). Angles are left unbounded
// rather than wrapped, so that full revolutions of the second arm remain
// visible to the flip detector.
type Double struct {
	Cnst Constants
}

func NewDouble(cnst Constants) *Double {
	return &Double{Cnst: cnst}
}

func (d *Double) Dim() int { return 4 }

func (d *Double) Derive(x ode.State, t float64) ode.State {
	th1, th2, om1, om2 := x[0], x[1], x[2], x[3]
	g, l1, l2, m1, m2 := d.Cnst.G, d.Cnst.L1, d.Cnst.L2, d.Cnst.M1, d.Cnst.M2

	den := 2*m1 + m2 - m2*math.Cos(2*th1-2*th2)
	sinD, cosD := math.Sin(th1-th2), math.Cos(th1-th2)

	alpha1 := (-g*(2*m1+m2)*math.Sin(th1) -
		m2*g*math.Sin(th1-2*th2) -
		2*sinD*m2*(om2*om2*l2+om1*om1*l1*cosD)) /
		(l1 * den)

	alpha2 := (2 * sinD * (om1*om1*l1*(m1+m2) +
		g*(m1+m2)*math.Cos(th1) +
		om2*om2*l2*m2*cosD)) /
		(l2 * den)

	return ode.State{om1, om2, alpha1, alpha2}
}

func (d *Double) Energy(x ode.State) float64 {
	th1, th2, om1, om2 := x[0], x[1], x[2], x[3]
	g, l1, l2, m1, m2 := d.Cnst.G, d.Cnst.L1, d.Cnst.L2, d.Cnst.M1, d.Cnst.M2

	v1sq := l1 * l1 * om1 * om1
	v2sq := v1sq + l2*l2*om2*om2 + 2*l1*l2*om1*om2*math.Cos(th1-th2)

	ke := 0.5*m1*v1sq + 0.5*m2*v2sq
	y1 := -l1 * math.Cos(th1)
	y2 := y1 - l2*math.Cos(th2)
	pe := m1*g*y1 + m2*g*y2

	return ke + pe
}

// BobPositions converts arm angles to the Cartesian coordinates of both
// bobs, with the pivot at the origin and y pointing up.
func (d *Double) BobPositions(th1, th2 float64) (x1, y1, x2, y2 float64) {
	x1 = d.Cnst.L1 * math.Sin(th1)
	y1 = -d.Cnst.L1 * math.Cos(th1)
	x2 = x1 + d.Cnst.L2*math.Sin(th2)
	y2 = y1 - d.Cnst.L2*math.Cos(th2)
	return
}
