package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/orbitsim/internal/orbit"
)

// maxPathEdges caps the number of line segments per rendered orbit; a year
// at hourly steps has far more samples than the canvas can resolve.
const maxPathEdges = 720

// BuildOrbitScene converts a trajectory in meters into a unit-scale
// wireframe in the z=0 plane: the path, a sun disc at the origin, a ring at
// the perihelion (the first sample) and a cross at the aphelion.
// apIndex < 0 omits the aphelion marker.
func BuildOrbitScene(positions []orbit.Vec2, apIndex int) *Wireframe {
	w := NewWireframe()
	if len(positions) == 0 {
		return w
	}

	maxR := 0.0
	for _, p := range positions {
		if r := p.Norm(); r > maxR {
			maxR = r
		}
	}
	if maxR == 0 {
		maxR = 1
	}
	scale := 1.0 / maxR

	stride := 1
	if len(positions) > maxPathEdges {
		stride = len(positions) / maxPathEdges
	}

	prev := toScene(positions[0], scale)
	for i := stride; i < len(positions); i += stride {
		cur := toScene(positions[i], scale)
		w.AddEdge(prev, cur)
		prev = cur
	}
	last := toScene(positions[len(positions)-1], scale)
	if last != prev {
		w.AddEdge(prev, last)
	}

	w.AddMarker(Vec3{}, MarkerDisc, 3)
	w.AddMarker(toScene(positions[0], scale), MarkerRing, 2)
	if apIndex >= 0 && apIndex < len(positions) {
		w.AddMarker(toScene(positions[apIndex], scale), MarkerCross, 2)
	}

	return w
}

func toScene(p orbit.Vec2, scale float64) Vec3 {
	return Vec3{X: p.X * scale, Y: p.Y * scale}
}

// Summary renders the title block the original plot carried: method and
// planet on the first line, aphelion distance and speed on the second.
func Summary(planet, method string, ap orbit.ApsisResult) string {
	title := lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Bold(true)
	sub := lipgloss.NewStyle().Foreground(CurrentTheme.Text)

	head := fmt.Sprintf("%s method – %s orbit", strings.ToUpper(method), planet)
	info := fmt.Sprintf("aphelion distance: %.1f million km   aphelion speed: %.1f km/s",
		ap.Distance/1e9, ap.Speed/1e3)

	return title.Render(head) + "\n" + sub.Render(info)
}

// Legend explains the scene markers in the current theme's colors.
func Legend() string {
	sun := lipgloss.NewStyle().Foreground(CurrentTheme.Sun)
	peri := lipgloss.NewStyle().Foreground(CurrentTheme.Perihelion)
	ap := lipgloss.NewStyle().Foreground(CurrentTheme.Aphelion)
	return sun.Render("● sun") + "   " + peri.Render("○ perihelion") + "   " + ap.Render("✕ aphelion")
}
