package config

import (
	"sort"

	"github.com/san-kum/orbitsim/internal/orbit"
)

// Planet is one entry of the built-in preset table, in the input units of
// the original data set: perihelion distance in millions of km, perihelion
// speed in km/s, orbital period in days. Color is the accent used for the
// orbit path.
type Planet struct {
	Name              string
	PerihelionMkm     float64
	PerihelionKmS     float64
	OrbitalPeriodDays float64
	Color             string
}

var planets = map[string]Planet{
	"mercury": {"mercury", 46.000, 58.98, 88, "#9f9f9f"},
	"venus":   {"venus", 107.480, 35.26, 225, "#e8cda2"},
	"earth":   {"earth", 147.100, 30.29, 365, "#3b82f6"},
	"mars":    {"mars", 206.650, 26.50, 687, "#c1440e"},
	"jupiter": {"jupiter", 740.595, 13.72, 4333, "#d8ca9d"},
	"saturn":  {"saturn", 1357.554, 10.18, 10759, "#ead6b8"},
	"uranus":  {"uranus", 2732.696, 7.11, 30687, "#4fd0e7"},
	"neptune": {"neptune", 4471.050, 5.50, 60190, "#4b70dd"},
}

func GetPlanet(name string) (Planet, bool) {
	p, ok := planets[name]
	return p, ok
}

// PlanetNames lists the known planets sorted by perihelion distance.
func PlanetNames() []string {
	names := make([]string, 0, len(planets))
	for name := range planets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return planets[names[i]].PerihelionMkm < planets[names[j]].PerihelionMkm
	})
	return names
}

// InitialState places the body at perihelion on the +x axis, moving
// perpendicular to the radius. This is the only place input units are
// converted to SI: millions of km to meters, km/s to m/s. The core never
// re-converts.
func (p Planet) InitialState() orbit.State {
	return orbit.State{
		R: orbit.Vec2{X: p.PerihelionMkm * 1e9, Y: 0},
		V: orbit.Vec2{X: 0, Y: p.PerihelionKmS * 1e3},
	}
}
