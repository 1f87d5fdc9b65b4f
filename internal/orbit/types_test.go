package orbit

import (
	"errors"
	"math"
	"testing"
)

func TestState_RadiusSpeed(t *testing.T) {
	s := State{R: Vec2{3, 4}, V: Vec2{0, -2}}
	if s.Radius() != 5 {
		t.Errorf("Radius() = %v, want 5", s.Radius())
	}
	if s.Speed() != 2 {
		t.Errorf("Speed() = %v, want 2", s.Speed())
	}
}

func TestState_IsValid(t *testing.T) {
	valid := State{R: Vec2{1, 0}, V: Vec2{0, 1}}
	if !valid.IsValid() {
		t.Error("expected valid state")
	}

	invalid := State{R: Vec2{math.NaN(), 0}, V: Vec2{0, 1}}
	if invalid.IsValid() {
		t.Error("expected invalid state with NaN position")
	}
}

func TestResult_Accessors(t *testing.T) {
	r := &Result{States: []State{
		{R: Vec2{1, 0}, T: 0},
		{R: Vec2{0, 1}, T: 10},
	}}

	if got := r.Final(); got.T != 10 {
		t.Errorf("Final().T = %v, want 10", got.T)
	}

	ps := r.Positions()
	if len(ps) != 2 || ps[0] != (Vec2{1, 0}) || ps[1] != (Vec2{0, 1}) {
		t.Errorf("Positions() = %v", ps)
	}
}

func TestStepError(t *testing.T) {
	err := &StepError{Step: 42, Time: 151200, Wrapped: ErrDegenerateGeometry}

	expected := "step 42 (t=151200.0s): orbit: degenerate geometry (zero or non-finite radius)"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
	if !errors.Is(err, ErrDegenerateGeometry) {
		t.Error("StepError should unwrap to its sentinel")
	}
}
