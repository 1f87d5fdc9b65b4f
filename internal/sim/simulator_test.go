package sim_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbitsim/internal/analysis"
	"github.com/san-kum/orbitsim/internal/integrators"
	"github.com/san-kum/orbitsim/internal/metrics"
	"github.com/san-kum/orbitsim/internal/orbit"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
)

// Earth at perihelion: 147.1 million km, 30.29 km/s.
var earth = orbit.State{
	R: orbit.Vec2{X: 1.471e11},
	V: orbit.Vec2{Y: 3.029e4},
}

func newSim(method string) *sim.Simulator {
	field, err := physics.NewTwoBody(physics.MuSun)
	Expect(err).NotTo(HaveOccurred())
	stepper, err := integrators.New(method)
	Expect(err).NotTo(HaveOccurred())
	return sim.New(field, stepper)
}

var _ = Describe("Simulator", func() {
	Describe("configuration validation", func() {
		It("rejects a zero time step before stepping", func() {
			_, err := newSim("rk4").Run(context.Background(), earth, sim.Config{Dt: 0, Steps: 10})
			Expect(err).To(MatchError(orbit.ErrInvalidConfig))
		})

		It("rejects a negative time step", func() {
			_, err := newSim("rk4").Run(context.Background(), earth, sim.Config{Dt: -3600, Steps: 10})
			Expect(err).To(MatchError(orbit.ErrInvalidConfig))
		})

		It("rejects a negative step count", func() {
			_, err := newSim("rk4").Run(context.Background(), earth, sim.Config{Dt: 3600, Steps: -1})
			Expect(err).To(MatchError(orbit.ErrInvalidConfig))
		})

		It("rejects a non-positive gravitational parameter at model construction", func() {
			_, err := physics.NewTwoBody(0)
			Expect(err).To(MatchError(orbit.ErrInvalidConfig))
		})
	})

	Describe("trajectory shape", func() {
		It("produces steps+1 states including the initial one", func() {
			result, err := newSim("euler").Run(context.Background(), earth, sim.Config{Dt: 3600, Steps: 100})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.States).To(HaveLen(101))
			Expect(result.StepsTaken).To(Equal(100))
			Expect(result.States[0].R).To(Equal(earth.R))
		})

		It("yields exactly one state for a zero step count", func() {
			result, err := newSim("rk4").Run(context.Background(), earth, sim.Config{Dt: 3600, Steps: 0})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.States).To(HaveLen(1))

			ap, err := analysis.FindAphelion(result.States)
			Expect(err).NotTo(HaveOccurred())
			Expect(ap.Index).To(Equal(0))
			Expect(ap.Distance).To(Equal(earth.R.Norm()))
			Expect(ap.Speed).To(Equal(earth.V.Norm()))
		})

		It("stamps elapsed time as exactly i*dt", func() {
			dt := 5123.0 // deliberately not a round number
			result, err := newSim("rk4").Run(context.Background(), earth, sim.Config{Dt: dt, Steps: 50})
			Expect(err).NotTo(HaveOccurred())
			for i, s := range result.States {
				Expect(s.T).To(Equal(float64(i) * dt))
			}
		})
	})

	Describe("determinism", func() {
		It("produces bit-for-bit identical trajectories for identical inputs", func() {
			cfg := sim.Config{Dt: 3600, Steps: 500}
			a, err := newSim("rk4").Run(context.Background(), earth, cfg)
			Expect(err).NotTo(HaveOccurred())
			b, err := newSim("rk4").Run(context.Background(), earth, cfg)
			Expect(err).NotTo(HaveOccurred())

			Expect(a.States).To(HaveLen(len(b.States)))
			for i := range a.States {
				Expect(a.States[i]).To(Equal(b.States[i]))
			}
		})
	})

	Describe("cancellation", func() {
		It("stops when the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := newSim("rk4").Run(ctx, earth, sim.Config{Dt: 3600, Steps: 1000})
			Expect(err).To(MatchError(context.Canceled))
		})
	})

	Describe("one Earth year at hourly RK4 steps", func() {
		var result *orbit.Result
		var ap orbit.ApsisResult

		BeforeEach(func() {
			var err error
			result, err = newSim("rk4").Run(context.Background(), earth, sim.Config{Dt: 3600, Steps: 8760})
			Expect(err).NotTo(HaveOccurred())
			ap, err = analysis.FindAphelion(result.States)
			Expect(err).NotTo(HaveOccurred())
		})

		It("finds the aphelion near 152.1 million km", func() {
			Expect(ap.Distance).To(BeNumerically("~", 1.521e11, 0.02*1.521e11))
		})

		It("finds the aphelion speed near 29.3 km/s", func() {
			Expect(ap.Speed).To(BeNumerically("~", 2.93e4, 0.02*2.93e4))
		})

		It("moves tangentially at the aphelion", func() {
			s := result.States[ap.Index]
			radial := math.Abs(s.V.Dot(s.R)) / s.R.Norm()
			Expect(radial / s.Speed()).To(BeNumerically("<", 1e-3))
		})

		It("closes back near the starting position", func() {
			closure := result.Final().R.Sub(earth.R).Norm()
			Expect(closure).To(BeNumerically("<", 2.5e9)) // under 2% of the orbit radius
		})
	})

	Describe("Ensemble", func() {
		It("runs independent planets concurrently with isolated state", func() {
			field, err := physics.NewTwoBody(physics.MuSun)
			Expect(err).NotTo(HaveOccurred())

			mars := orbit.State{R: orbit.Vec2{X: 2.0665e11}, V: orbit.Vec2{Y: 2.65e4}}
			runs := []sim.Run{
				{Name: "earth", Initial: earth, Cfg: sim.Config{Dt: 3600, Steps: 300}},
				{Name: "mars", Initial: mars, Cfg: sim.Config{Dt: 3600, Steps: 300}},
			}

			ens := sim.NewEnsemble(field,
				func() (orbit.Stepper, error) { return integrators.New("rk4") },
				func() []orbit.Metric { return metrics.Default(field) },
			)
			results, err := ens.Run(context.Background(), runs)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(2))

			// Each concurrent run matches its serial counterpart exactly.
			for i, r := range runs {
				serial, err := newSim("rk4").Run(context.Background(), r.Initial, r.Cfg)
				Expect(err).NotTo(HaveOccurred())
				Expect(results[i].States).To(Equal(serial.States))
			}
		})

		It("surfaces a stepper construction failure", func() {
			field, err := physics.NewTwoBody(physics.MuSun)
			Expect(err).NotTo(HaveOccurred())

			ens := sim.NewEnsemble(field,
				func() (orbit.Stepper, error) { return integrators.New("nope") },
				nil,
			)
			_, err = ens.Run(context.Background(), []sim.Run{{Initial: earth, Cfg: sim.Config{Dt: 1, Steps: 1}}})
			Expect(err).To(MatchError(orbit.ErrUnsupportedMethod))
		})
	})

	Describe("order accuracy", func() {
		// Final-position error against a fine-step reference after an
		// eighth of an orbit, at dt and dt/2.
		finalPos := func(method string, dt float64, steps int) orbit.Vec2 {
			r, err := newSim(method).Run(context.Background(), earth, sim.Config{Dt: dt, Steps: steps})
			Expect(err).NotTo(HaveOccurred())
			return r.Final().R
		}

		It("halving dt cuts Euler error about 2x and RK4 error about 16x", func() {
			span := 3600.0 * 1024 // about 42 days
			ref := finalPos("rk4", span/16384, 16384)

			eulerCoarse := finalPos("euler", span/1024, 1024).Sub(ref).Norm()
			eulerFine := finalPos("euler", span/2048, 2048).Sub(ref).Norm()
			Expect(eulerCoarse / eulerFine).To(BeNumerically("~", 2, 0.5))

			rk4Coarse := finalPos("rk4", span/64, 64).Sub(ref).Norm()
			rk4Fine := finalPos("rk4", span/128, 128).Sub(ref).Norm()
			Expect(rk4Coarse / rk4Fine).To(BeNumerically("~", 16, 6))
		})
	})
})
