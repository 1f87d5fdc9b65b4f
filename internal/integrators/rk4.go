package integrators

import "github.com/san-kum/orbitsim/internal/orbit"

// RK4 is the classical four-stage Runge-Kutta scheme applied to the
// (position, velocity) pair, with derivative (velocity, acceleration).
// Global error is O(dt^4) at four acceleration evaluations per step.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Name() string { return "rk4" }

func (r *RK4) Step(f orbit.Force, s orbit.State, dt float64) (orbit.State, error) {
	half := dt * 0.5

	k1v, err := f.Acceleration(s.R)
	if err != nil {
		return orbit.State{}, err
	}
	k1r := s.V

	k2r := s.V.Add(k1v.Scale(half))
	k2v, err := f.Acceleration(s.R.Add(k1r.Scale(half)))
	if err != nil {
		return orbit.State{}, err
	}

	k3r := s.V.Add(k2v.Scale(half))
	k3v, err := f.Acceleration(s.R.Add(k2r.Scale(half)))
	if err != nil {
		return orbit.State{}, err
	}

	k4r := s.V.Add(k3v.Scale(dt))
	k4v, err := f.Acceleration(s.R.Add(k3r.Scale(dt)))
	if err != nil {
		return orbit.State{}, err
	}

	sixth := dt / 6.0
	dr := k1r.Add(k2r.Scale(2)).Add(k3r.Scale(2)).Add(k4r).Scale(sixth)
	dv := k1v.Add(k2v.Scale(2)).Add(k3v.Scale(2)).Add(k4v).Scale(sixth)

	return orbit.State{
		R: s.R.Add(dr),
		V: s.V.Add(dv),
		T: s.T + dt,
	}, nil
}
