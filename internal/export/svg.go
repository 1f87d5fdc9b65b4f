// Package export renders completed runs to standalone artifacts.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/orbitsim/internal/orbit"
)

// SVGOptions controls the rendered orbit plot. Colors are CSS colors; zero
// values fall back to the defaults below.
type SVGOptions struct {
	Width, Height int
	Background    string
	Orbit         string
	Sun           string
	Perihelion    string
	Aphelion      string
	Title         string
	Subtitle      string
}

func (o *SVGOptions) fill() {
	if o.Width == 0 {
		o.Width = 700
	}
	if o.Height == 0 {
		o.Height = 700
	}
	if o.Background == "" {
		o.Background = "#0a0a0a"
	}
	if o.Orbit == "" {
		o.Orbit = "#e0e0e0"
	}
	if o.Sun == "" {
		o.Sun = "#ffd700"
	}
	if o.Perihelion == "" {
		o.Perihelion = "#00ffff"
	}
	if o.Aphelion == "" {
		o.Aphelion = "#ff00ff"
	}
}

// OrbitSVG draws the trajectory with the sun at the origin and the two
// apsis markers, preserving aspect ratio so the ellipse is not distorted.
// The title block mirrors what the interactive view shows.
func OrbitSVG(positions []orbit.Vec2, ap orbit.ApsisResult, opts SVGOptions) string {
	if len(positions) < 2 {
		return ""
	}
	opts.fill()

	// Bounds including the origin, padded, equal scale on both axes.
	minX, maxX, minY, maxY := 0.0, 0.0, 0.0, 0.0
	for _, p := range positions {
		minX = minFloat(minX, p.X)
		maxX = maxFloat(maxX, p.X)
		minY = minFloat(minY, p.Y)
		maxY = maxFloat(maxY, p.Y)
	}
	span := maxFloat(maxX-minX, maxY-minY)
	if span == 0 {
		span = 1
	}
	span *= 1.15
	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2

	w := float64(opts.Width)
	h := float64(opts.Height)
	plot := minFloat(w, h)
	toX := func(x float64) float64 { return w/2 + (x-cx)/span*plot }
	toY := func(y float64) float64 { return h/2 - (y-cy)/span*plot }

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, opts.Width, opts.Height, opts.Width, opts.Height, opts.Background))

	if opts.Title != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%0.1f" y="28" fill="%s" font-family="monospace" font-size="18" text-anchor="middle">%s</text>
`, w/2, opts.Orbit, opts.Title))
	}
	if opts.Subtitle != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%0.1f" y="50" fill="%s" font-family="monospace" font-size="13" text-anchor="middle">%s</text>
`, w/2, opts.Aphelion, opts.Subtitle))
	}

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, opts.Orbit))
	for i, p := range positions {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", toX(p.X), toY(p.Y)))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", toX(p.X), toY(p.Y)))
		}
	}
	sb.WriteString("\"/>\n")

	// Sun, perihelion (trajectory start), aphelion.
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="10" fill="%s"/>
`, toX(0), toY(0), opts.Sun))
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="5" fill="%s"/>
`, toX(positions[0].X), toY(positions[0].Y), opts.Perihelion))
	if ap.Index >= 0 && ap.Index < len(positions) {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="5" fill="%s"/>
`, toX(ap.Position.X), toY(ap.Position.Y), opts.Aphelion))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
