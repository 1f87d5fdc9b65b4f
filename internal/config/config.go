package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitsim/internal/orbit"
)

const (
	DefaultPlanet        = "earth"
	DefaultMethod        = "rk4"
	DefaultTimeStepHours = 1.0
)

// Config is the run configuration, loadable from YAML and overridable by
// CLI flags. SimulationDays of zero means "one orbital period of the
// selected planet".
type Config struct {
	Planet         string  `yaml:"planet"`
	Method         string  `yaml:"method"`
	TimeStepHours  float64 `yaml:"time_step_hours"`
	SimulationDays float64 `yaml:"simulation_days"`
	Theme          string  `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Planet:        DefaultPlanet,
		Method:        DefaultMethod,
		TimeStepHours: DefaultTimeStepHours,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the boundary constraints before anything is converted or
// simulated. The method token itself is resolved later by the integrator
// registry, which owns the closed set.
func (c *Config) Validate() error {
	if _, ok := GetPlanet(c.Planet); !ok {
		return fmt.Errorf("%w: unknown planet %q (known: %v)", orbit.ErrInvalidConfig, c.Planet, PlanetNames())
	}
	if c.TimeStepHours <= 0 {
		return fmt.Errorf("%w: time_step_hours must be positive, got %g", orbit.ErrInvalidConfig, c.TimeStepHours)
	}
	if c.SimulationDays < 0 {
		return fmt.Errorf("%w: simulation_days must be non-negative, got %g", orbit.ErrInvalidConfig, c.SimulationDays)
	}
	return nil
}

// TimeSettings derives the SI time grid: the step in seconds and the step
// count covering the simulated span. With SimulationDays zero the span is
// the planet's orbital period.
func (c *Config) TimeSettings(p Planet) (dt float64, steps int) {
	dt = c.TimeStepHours * 3600
	days := c.SimulationDays
	if days == 0 {
		days = p.OrbitalPeriodDays
	}
	steps = int(days * 24 * 3600 / dt)
	return dt, steps
}
