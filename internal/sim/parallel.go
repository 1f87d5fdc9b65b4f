package sim

import (
	"context"
	"sync"

	"github.com/san-kum/orbitsim/internal/orbit"
	"github.com/san-kum/orbitsim/internal/physics"
)

// Run is one independent simulation in an ensemble: its own initial state
// and time grid, sharing nothing with the other runs.
type Run struct {
	Name    string
	Initial orbit.State
	Cfg     Config
}

// Ensemble executes independent runs concurrently. Every run gets a fresh
// stepper and fresh metrics from the factories, so no per-step state is
// ever shared across goroutines.
type Ensemble struct {
	field      *physics.TwoBody
	newStepper func() (orbit.Stepper, error)
	newMetrics func() []orbit.Metric
}

func NewEnsemble(field *physics.TwoBody, newStepper func() (orbit.Stepper, error), newMetrics func() []orbit.Metric) *Ensemble {
	return &Ensemble{field: field, newStepper: newStepper, newMetrics: newMetrics}
}

func (e *Ensemble) Run(ctx context.Context, runs []Run) ([]*orbit.Result, error) {
	results := make([]*orbit.Result, len(runs))
	errs := make([]error, len(runs))

	var wg sync.WaitGroup
	for i, r := range runs {
		wg.Add(1)
		go func(idx int, r Run) {
			defer wg.Done()

			stepper, err := e.newStepper()
			if err != nil {
				errs[idx] = err
				return
			}

			s := New(e.field, stepper)
			if e.newMetrics != nil {
				for _, m := range e.newMetrics() {
					s.AddMetric(m)
				}
			}

			results[idx], errs[idx] = s.Run(ctx, r.Initial, r.Cfg)
		}(i, r)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
