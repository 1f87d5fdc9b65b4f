package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/orbitsim/internal/orbit"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	historyCapacity = 240
	playbackFrames  = 900 // target frames for one full trajectory
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(45)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Playback animates a completed trajectory. It owns no physics: the states
// and the aphelion are computed before the program starts and only read
// here.
type Playback struct {
	states     []orbit.State
	positions  []orbit.Vec2
	ap         orbit.ApsisResult
	planet     string
	method     string
	idx        int
	stride     int
	running    bool
	canvas     *Canvas
	camera     *Camera
	radiusHist []float64
	showHelp   bool
}

func NewPlayback(result *orbit.Result, ap orbit.ApsisResult, planet string) Playback {
	stride := len(result.States) / playbackFrames
	if stride < 1 {
		stride = 1
	}
	return Playback{
		states:     result.States,
		positions:  result.Positions(),
		ap:         ap,
		planet:     planet,
		method:     result.Method,
		stride:     stride,
		running:    true,
		canvas:     NewCanvas(canvasWidth, canvasHeight),
		camera:     NewCamera(),
		radiusHist: make([]float64, 0, historyCapacity),
	}
}

func (m Playback) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Playback) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.idx = 0
			m.radiusHist = m.radiusHist[:0]
			m.running = true
		case "[":
			m.seek(-10 * m.stride)
		case "]":
			m.seek(10 * m.stride)
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == CurrentTheme.Name {
					SetTheme(names[(i+1)%len(names)])
					break
				}
			}
		case "x":
			m.camera.RotateX(0.1)
		case "X":
			m.camera.RotateX(-0.1)
		case "y":
			m.camera.RotateY(0.1)
		case "Y":
			m.camera.RotateY(-0.1)
		case "z":
			m.camera.RotateZ(0.1)
		case "Z":
			m.camera.RotateZ(-0.1)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.advance()
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Playback) advance() {
	m.idx += m.stride
	if m.idx >= len(m.states) {
		m.idx = len(m.states) - 1
		m.running = false
	}
	m.radiusHist = append(m.radiusHist, m.states[m.idx].Radius()/1e9)
	if len(m.radiusHist) > historyCapacity {
		m.radiusHist = m.radiusHist[1:]
	}
}

func (m *Playback) seek(delta int) {
	m.idx += delta
	if m.idx < 0 {
		m.idx = 0
	}
	if m.idx >= len(m.states) {
		m.idx = len(m.states) - 1
	}
}

func (m *Playback) draw() {
	m.canvas.Clear()
	apIdx := -1
	if m.ap.Index <= m.idx {
		apIdx = m.ap.Index
	}
	scene := BuildOrbitScene(m.positions[:m.idx+1], apIdx)
	Render3D(m.canvas, scene, m.camera)
}

func (m Playback) View() string {
	m.draw()
	orbitStyle := lipgloss.NewStyle().Foreground(CurrentTheme.Orbit)
	canvasView := canvasStyle.Render(orbitStyle.Render(m.canvas.String()))

	cur := m.states[m.idx]
	status := "RUNNING"
	if !m.running {
		if m.idx == len(m.states)-1 {
			status = "DONE"
		} else {
			status = "PAUSED"
		}
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.planet)+" / "+strings.ToUpper(m.method)) + "\n")
	s.WriteString(status + "\n\n")

	if len(m.radiusHist) > 1 {
		chart := asciigraph.Plot(m.radiusHist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("radius (Mkm)"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Day") + valueStyle.Render(fmt.Sprintf("%.1f", cur.T/86400)) + "\n")
	s.WriteString(labelStyle.Render("Radius") + valueStyle.Render(fmt.Sprintf("%.1f Mkm", cur.Radius()/1e9)) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%.1f km/s", cur.Speed()/1e3)) + "\n")
	denom := len(m.states) - 1
	if denom < 1 {
		denom = 1
	}
	s.WriteString(labelStyle.Render("Progress") + valueStyle.Render(fmt.Sprintf("%d%%", 100*m.idx/denom)) + "\n")
	if m.ap.Index <= m.idx {
		s.WriteString("\n" + Summary(m.planet, m.method, m.ap) + "\n")
	}
	s.WriteString("\n" + Legend() + "\n")
	s.WriteString(helpStyle.Render("SP:Pause R:Restart [ ]:Seek\nXYZ:Rotate +-:Zoom T:Theme Q:Quit"))

	main := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
	if m.showHelp {
		return helpStyle.Render("space pause/resume, r restart, [ ] seek, x/y/z rotate (shift reverses), +/- zoom, t theme, q quit") + "\n" + main
	}
	return main
}
