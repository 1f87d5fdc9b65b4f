// Package metrics provides per-run conservation diagnostics. The true
// two-body dynamics conserve specific energy and specific angular momentum;
// a numerical trajectory does not, and the maximum relative drift of each
// quantity is a direct measure of integrator quality.
package metrics

import (
	"math"

	"github.com/san-kum/orbitsim/internal/orbit"
	"github.com/san-kum/orbitsim/internal/physics"
)

type EnergyDrift struct {
	field    *physics.TwoBody
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift(field *physics.TwoBody) *EnergyDrift {
	return &EnergyDrift{field: field}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(s orbit.State) {
	energy := e.field.Energy(s)
	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}

type AngularMomentumDrift struct {
	field    *physics.TwoBody
	initial  float64
	maxDrift float64
	samples  int
}

func NewAngularMomentumDrift(field *physics.TwoBody) *AngularMomentumDrift {
	return &AngularMomentumDrift{field: field}
}

func (a *AngularMomentumDrift) Name() string { return "angular_momentum_drift" }

func (a *AngularMomentumDrift) Observe(s orbit.State) {
	h := a.field.AngularMomentum(s)
	if a.samples == 0 {
		a.initial = h
	}
	a.samples++

	if a.initial != 0 {
		drift := math.Abs(h-a.initial) / math.Abs(a.initial)
		a.maxDrift = math.Max(a.maxDrift, drift)
	}
}

func (a *AngularMomentumDrift) Value() float64 { return a.maxDrift }

func (a *AngularMomentumDrift) Reset() {
	a.initial = 0
	a.maxDrift = 0
	a.samples = 0
}

// Default returns the metric set attached to every CLI run.
func Default(field *physics.TwoBody) []orbit.Metric {
	return []orbit.Metric{
		NewEnergyDrift(field),
		NewAngularMomentumDrift(field),
	}
}
