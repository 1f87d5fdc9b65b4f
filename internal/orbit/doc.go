// Package orbit provides the core primitives for two-body orbit simulation.
//
// The package defines the fundamental types shared by the physics model,
// the steppers and the simulation driver:
//
//   - [Vec2]: immutable 2D vector (meters or meters/second)
//   - [State]: position, velocity and elapsed time of the orbiting body
//   - [Force]: acceleration field interface (implemented by physics.TwoBody)
//   - [Stepper]: single-step numerical integrator interface
//   - [Result]: the completed trajectory plus per-run metric values
//
// All positions and velocities are in SI units. Unit conversion from the
// configuration's millions-of-km / km-per-second happens once, at the
// boundary, before a State is ever constructed.
//
// # Thread Safety
//
// Values in this package are immutable once produced and safe to share.
// Concurrent simulation runs must not share Stepper or metric instances;
// see sim.Ensemble.
package orbit
