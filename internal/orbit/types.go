package orbit

// State is the orbiting body at one instant: position R (m), velocity V
// (m/s) and elapsed time T (s) since the start of the run. States are
// value types; each stepper call derives a new State and never touches
// its input.
type State struct {
	R Vec2
	V Vec2
	T float64
}

// Radius returns the distance from the central body at the origin.
func (s State) Radius() float64 { return s.R.Norm() }

// Speed returns the magnitude of the velocity.
func (s State) Speed() float64 { return s.V.Norm() }

func (s State) IsValid() bool { return s.R.IsFinite() && s.V.IsFinite() }

// Force is an acceleration field. Acceleration reports
// ErrDegenerateGeometry for positions where the field is undefined.
type Force interface {
	Acceleration(p Vec2) (Vec2, error)
}

// Stepper advances one state by one time step. Implementations are pure:
// identical inputs produce identical outputs.
type Stepper interface {
	Name() string
	Step(f Force, s State, dt float64) (State, error)
}

// Metric observes every state of a run and reduces it to one value.
type Metric interface {
	Name() string
	Observe(s State)
	Value() float64
	Reset()
}

// Result is a completed simulation run. States is the trajectory in time
// order, States[0] the initial condition, States[i].T == i*dt.
type Result struct {
	States      []State
	Method      string
	Dt          float64
	Metrics     map[string]float64
	EnergyDrift float64
	StepsTaken  int
}

// Final returns the last state of the trajectory.
func (r *Result) Final() State {
	return r.States[len(r.States)-1]
}

// Positions returns the path as bare position vectors, in time order,
// for consumers that only render.
func (r *Result) Positions() []Vec2 {
	ps := make([]Vec2, len(r.States))
	for i, s := range r.States {
		ps[i] = s.R
	}
	return ps
}

// ApsisResult identifies an orbital extreme point found in a trajectory.
type ApsisResult struct {
	Position Vec2
	Distance float64
	Speed    float64
	Index    int
}
