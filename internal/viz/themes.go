package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles of the orbit display.
type Theme struct {
	Name       string
	Orbit      lipgloss.Color
	Sun        lipgloss.Color
	Perihelion lipgloss.Color
	Aphelion   lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
}

// Available themes
var (
	ThemeSolar = Theme{
		Name:       "solar",
		Orbit:      lipgloss.Color("#e0e0e0"),
		Sun:        lipgloss.Color("#ffd700"),
		Perihelion: lipgloss.Color("#00ffff"),
		Aphelion:   lipgloss.Color("#ff00ff"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Accent:     lipgloss.Color("#ff8800"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Orbit:      lipgloss.Color("#00ff00"),
		Sun:        lipgloss.Color("#88ff88"),
		Perihelion: lipgloss.Color("#00cc00"),
		Aphelion:   lipgloss.Color("#ccffcc"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Accent:     lipgloss.Color("#88ff88"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Orbit:      lipgloss.Color("#cccccc"),
		Sun:        lipgloss.Color("#ffffff"),
		Perihelion: lipgloss.Color("#0088ff"),
		Aphelion:   lipgloss.Color("#ff4444"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Accent:     lipgloss.Color("#0088ff"),
	}

	ThemeNeon = Theme{
		Name:       "neon",
		Orbit:      lipgloss.Color("#00ffff"),
		Sun:        lipgloss.Color("#ffff00"),
		Perihelion: lipgloss.Color("#00ff88"),
		Aphelion:   lipgloss.Color("#ff00ff"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#444466"),
		Accent:     lipgloss.Color("#ff00ff"),
	}

	// Default theme
	CurrentTheme = ThemeSolar

	Themes = []Theme{
		ThemeSolar,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeNeon,
	}
)

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeSolar
}

// SetTheme changes the current theme.
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// ThemeNames returns the available theme names.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
