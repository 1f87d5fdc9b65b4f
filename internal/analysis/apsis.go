// Package analysis extracts orbital features from completed trajectories.
package analysis

import "github.com/san-kum/orbitsim/internal/orbit"

// FindAphelion scans the trajectory for the state farthest from the origin
// and reports its position, distance, speed and step index. The comparison
// is strict, so among equal maxima the earliest index wins. O(n), no side
// effects.
func FindAphelion(states []orbit.State) (orbit.ApsisResult, error) {
	return FindAphelionAfter(states, 0)
}

// FindAphelionAfter is FindAphelion restricted to states[start:], keeping
// the original indexing. Callers use it to rescan past the lead-in when the
// raw maximum lands on the very first sample (which is the perihelion, not
// a real aphelion, whenever the run covers less than half an orbit).
func FindAphelionAfter(states []orbit.State, start int) (orbit.ApsisResult, error) {
	if start < 0 {
		start = 0
	}
	if start >= len(states) {
		return orbit.ApsisResult{}, orbit.ErrEmptyTrajectory
	}

	best := start
	bestDist := states[start].Radius()
	for i := start + 1; i < len(states); i++ {
		if d := states[i].Radius(); d > bestDist {
			best = i
			bestDist = d
		}
	}

	return orbit.ApsisResult{
		Position: states[best].R,
		Distance: bestDist,
		Speed:    states[best].Speed(),
		Index:    best,
	}, nil
}

// FindPerihelion is the minimum-distance counterpart of FindAphelion, with
// the same earliest-index tie break.
func FindPerihelion(states []orbit.State) (orbit.ApsisResult, error) {
	if len(states) == 0 {
		return orbit.ApsisResult{}, orbit.ErrEmptyTrajectory
	}

	best := 0
	bestDist := states[0].Radius()
	for i := 1; i < len(states); i++ {
		if d := states[i].Radius(); d < bestDist {
			best = i
			bestDist = d
		}
	}

	return orbit.ApsisResult{
		Position: states[best].R,
		Distance: bestDist,
		Speed:    states[best].Speed(),
		Index:    best,
	}, nil
}

// LeadIn returns the index cutting off the first 5% of a run, at least 1.
// Used with FindAphelionAfter when the raw aphelion is index 0.
func LeadIn(n int) int {
	cutoff := n / 20
	if cutoff < 1 {
		cutoff = 1
	}
	return cutoff
}
