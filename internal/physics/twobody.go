package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/orbitsim/internal/orbit"
)

// Physical constants (SI).
const (
	G    = 6.6743e-11 // m^3 kg^-1 s^-2
	MSun = 1.989e30   // kg

	// MuSun is the Sun's gravitational parameter G*M, the only property of
	// the central body the dynamics depend on.
	MuSun = G * MSun
)

// TwoBody is the gravity field of a point mass fixed at the origin acting
// on a test body. The orbiting body's own mass never enters: accelerations
// depend only on mu.
type TwoBody struct {
	Mu float64
}

func NewTwoBody(mu float64) (*TwoBody, error) {
	if mu <= 0 || math.IsNaN(mu) || math.IsInf(mu, 0) {
		return nil, fmt.Errorf("%w: GM must be positive, got %g", orbit.ErrInvalidConfig, mu)
	}
	return &TwoBody{Mu: mu}, nil
}

// Acceleration returns a = -mu * p / |p|^3, the inverse-square attraction
// toward the origin. A zero or non-finite position is rejected rather than
// letting NaN propagate through the integration.
func (tb *TwoBody) Acceleration(p orbit.Vec2) (orbit.Vec2, error) {
	if !p.IsFinite() {
		return orbit.Vec2{}, fmt.Errorf("%w: position (%g, %g)", orbit.ErrDegenerateGeometry, p.X, p.Y)
	}
	r := p.Norm()
	if r == 0 {
		return orbit.Vec2{}, fmt.Errorf("%w: body at the central mass", orbit.ErrDegenerateGeometry)
	}
	r3 := r * r * r
	return p.Scale(-tb.Mu / r3), nil
}

// Energy returns the specific orbital energy v^2/2 - mu/r. Conserved along
// the true dynamics; its drift measures integrator error.
func (tb *TwoBody) Energy(s orbit.State) float64 {
	v := s.Speed()
	r := s.Radius()
	if r == 0 {
		return math.Inf(-1)
	}
	return 0.5*v*v - tb.Mu/r
}

// AngularMomentum returns the specific angular momentum r x v (z component).
func (tb *TwoBody) AngularMomentum(s orbit.State) float64 {
	return s.R.Cross(s.V)
}

// SemiMajorAxis derives the semi-major axis from the vis-viva relation.
// Negative energy (a bound orbit) gives a positive axis.
func (tb *TwoBody) SemiMajorAxis(s orbit.State) float64 {
	e := tb.Energy(s)
	if e == 0 {
		return math.Inf(1)
	}
	return -tb.Mu / (2 * e)
}

// Period returns the Keplerian orbital period for a bound state, or +Inf
// for a parabolic/hyperbolic one.
func (tb *TwoBody) Period(s orbit.State) float64 {
	a := tb.SemiMajorAxis(s)
	if math.IsInf(a, 1) || a <= 0 {
		return math.Inf(1)
	}
	return 2 * math.Pi * math.Sqrt(a*a*a/tb.Mu)
}
