package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/orbitsim/internal/orbit"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Planet != "earth" {
		t.Errorf("expected planet earth, got %s", cfg.Planet)
	}
	if cfg.Method != "rk4" {
		t.Errorf("expected method rk4, got %s", cfg.Method)
	}
	if cfg.TimeStepHours <= 0 {
		t.Error("time step should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown planet", func(c *Config) { c.Planet = "pluto" }},
		{"zero time step", func(c *Config) { c.TimeStepHours = 0 }},
		{"negative time step", func(c *Config) { c.TimeStepHours = -1 }},
		{"negative days", func(c *Config) { c.SimulationDays = -10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, orbit.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestGetPlanet(t *testing.T) {
	p, ok := GetPlanet("earth")
	if !ok {
		t.Fatal("earth should exist")
	}
	if p.PerihelionMkm != 147.1 || p.PerihelionKmS != 30.29 {
		t.Errorf("unexpected earth preset: %+v", p)
	}

	if _, ok := GetPlanet("pluto"); ok {
		t.Error("pluto should not exist")
	}
}

func TestPlanetNames_OrderedByDistance(t *testing.T) {
	names := PlanetNames()
	if len(names) != 8 {
		t.Fatalf("expected 8 planets, got %d", len(names))
	}
	if names[0] != "mercury" || names[7] != "neptune" {
		t.Errorf("expected mercury first and neptune last, got %v", names)
	}
}

func TestInitialState_UnitConversion(t *testing.T) {
	p, _ := GetPlanet("earth")
	s := p.InitialState()

	// 147.1 million km on the +x axis, in meters.
	if s.R != (orbit.Vec2{X: 1.471e11, Y: 0}) {
		t.Errorf("position = %v, want (1.471e11, 0)", s.R)
	}
	// 30.29 km/s perpendicular to the radius, in m/s.
	if s.V != (orbit.Vec2{X: 0, Y: 3.029e4}) {
		t.Errorf("velocity = %v, want (0, 3.029e4)", s.V)
	}
	if s.T != 0 {
		t.Errorf("elapsed time = %v, want 0", s.T)
	}
}

func TestTimeSettings(t *testing.T) {
	p, _ := GetPlanet("earth")

	cfg := &Config{TimeStepHours: 1, SimulationDays: 365}
	dt, steps := cfg.TimeSettings(p)
	if dt != 3600 {
		t.Errorf("dt = %v, want 3600", dt)
	}
	if steps != 8760 {
		t.Errorf("steps = %d, want 8760", steps)
	}

	// Zero days falls back to the planet's orbital period.
	cfg = &Config{TimeStepHours: 24, SimulationDays: 0}
	_, steps = cfg.TimeSettings(p)
	if steps != 365 {
		t.Errorf("steps = %d, want 365 (one orbital period at daily steps)", steps)
	}
}

func TestLoadSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := &Config{
		Planet:         "mars",
		Method:         "euler",
		TimeStepHours:  0.5,
		SimulationDays: 687,
		Theme:          "retro",
	}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded, cfg)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("planet: venus\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Planet != "venus" {
		t.Errorf("planet = %s, want venus", cfg.Planet)
	}
	if cfg.Method != DefaultMethod {
		t.Errorf("method should keep its default, got %s", cfg.Method)
	}
}
