package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/orbitsim/internal/orbit"
	"github.com/san-kum/orbitsim/internal/physics"
)

// Config fixes the time grid of one run. Steps is the number of stepper
// applications; the produced trajectory has Steps+1 states.
type Config struct {
	Dt    float64 // seconds
	Steps int
}

// Simulator drives a stepper across the configured number of steps and
// collects the trajectory. Not safe for concurrent use; see Ensemble for
// parallel runs.
type Simulator struct {
	field   *physics.TwoBody
	stepper orbit.Stepper
	metrics []orbit.Metric
}

func New(field *physics.TwoBody, stepper orbit.Stepper) *Simulator {
	return &Simulator{
		field:   field,
		stepper: stepper,
		metrics: make([]orbit.Metric, 0),
	}
}

func (s *Simulator) AddMetric(m orbit.Metric) { s.metrics = append(s.metrics, m) }

// Run integrates s0 forward over the whole time grid. Configuration is
// validated before any stepping; a run either completes all steps or fails
// fast. Identical inputs produce bit-for-bit identical trajectories.
func (s *Simulator) Run(ctx context.Context, s0 orbit.State, cfg Config) (*orbit.Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &orbit.Result{
		States:  make([]orbit.State, 0, cfg.Steps+1),
		Method:  s.stepper.Name(),
		Dt:      cfg.Dt,
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	x := s0
	x.T = 0
	result.States = append(result.States, x)
	s.observe(x)

	initialEnergy := s.field.Energy(x)

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		next, err := s.stepper.Step(s.field, x, cfg.Dt)
		if err != nil {
			return nil, &orbit.StepError{Step: i, Time: x.T, Wrapped: err}
		}
		if !next.IsValid() {
			return nil, &orbit.StepError{Step: i, Time: x.T, Wrapped: orbit.ErrDegenerateGeometry}
		}

		// Stamp the timeline as i*dt rather than accumulating, so the
		// invariant States[i].T == i*dt holds exactly for any dt.
		next.T = float64(i+1) * cfg.Dt

		x = next
		result.States = append(result.States, x)
		result.StepsTaken++
		s.observe(x)
	}

	finalEnergy := s.field.Energy(x)
	if initialEnergy != 0 {
		result.EnergyDrift = abs(finalEnergy-initialEnergy) / abs(initialEnergy)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %g", orbit.ErrInvalidConfig, cfg.Dt)
	}
	if cfg.Steps < 0 {
		return fmt.Errorf("%w: step count must be non-negative, got %d", orbit.ErrInvalidConfig, cfg.Steps)
	}
	return nil
}

func (s *Simulator) observe(x orbit.State) {
	for _, m := range s.metrics {
		m.Observe(x)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
