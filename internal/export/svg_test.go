package export

import (
	"strings"
	"testing"

	"github.com/san-kum/orbitsim/internal/orbit"
)

func TestOrbitSVG(t *testing.T) {
	positions := []orbit.Vec2{
		{X: 1.471e11, Y: 0},
		{X: 0, Y: 1.5e11},
		{X: -1.521e11, Y: 0},
		{X: 0, Y: -1.5e11},
	}
	ap := orbit.ApsisResult{Position: positions[2], Distance: 1.521e11, Speed: 2.93e4, Index: 2}

	svg := OrbitSVG(positions, ap, SVGOptions{Title: "RK4 method – earth orbit"})

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML prolog")
	}
	if !strings.Contains(svg, "<path fill=\"none\"") {
		t.Error("missing orbit path")
	}
	// Sun, perihelion and aphelion markers.
	if got := strings.Count(svg, "<circle"); got != 3 {
		t.Errorf("expected 3 markers, got %d", got)
	}
	if !strings.Contains(svg, "RK4 method") {
		t.Error("missing title text")
	}
	if !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Error("unterminated document")
	}
}

func TestOrbitSVG_TooFewPoints(t *testing.T) {
	if svg := OrbitSVG([]orbit.Vec2{{X: 1}}, orbit.ApsisResult{}, SVGOptions{}); svg != "" {
		t.Error("expected empty output for a single point")
	}
}
