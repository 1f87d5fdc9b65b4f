package integrators

import "github.com/san-kum/orbitsim/internal/orbit"

// Euler is the explicit first-order scheme. The position update uses the
// pre-update velocity, not the freshly updated one; this is what makes the
// scheme explicit rather than semi-implicit, and it is kept as the
// reference behaves. Global error is O(dt).
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "euler" }

func (e *Euler) Step(f orbit.Force, s orbit.State, dt float64) (orbit.State, error) {
	a0, err := f.Acceleration(s.R)
	if err != nil {
		return orbit.State{}, err
	}
	return orbit.State{
		R: s.R.Add(s.V.Scale(dt)),
		V: s.V.Add(a0.Scale(dt)),
		T: s.T + dt,
	}, nil
}
