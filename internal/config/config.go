package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/calistasalscpw/newtonlab/internal/phys"
	"github.com/calistasalscpw/newtonlab/internal/scenario"
)

const (
	DefaultFPS       = 60
	DefaultMass      = "medium"
	DefaultSpeed     = "medium"
	DefaultMassScale = 1.0
	DefaultTrailCap  = 90
)

type Config struct {
	Scenario string       `yaml:"scenario"`
	FPS      int          `yaml:"fps"`
	Seed     int64        `yaml:"seed"`
	Sound    bool         `yaml:"sound"`
	Hammer   HammerConfig `yaml:"hammer"`
	Orbit    OrbitConfig  `yaml:"orbit"`
}

type HammerConfig struct {
	Mass  string `yaml:"mass"`
	Speed string `yaml:"speed"`
}

type OrbitConfig struct {
	MassScale  float64 `yaml:"mass_scale"`
	Distance   float64 `yaml:"distance"`
	ShowForces bool    `yaml:"show_forces"`
	ShowTrail  bool    `yaml:"show_trail"`
	TrailCap   int     `yaml:"trail_cap"`
}

func DefaultConfig() *Config {
	return &Config{
		Scenario: "hammer",
		FPS:      DefaultFPS,
		Hammer: HammerConfig{
			Mass:  DefaultMass,
			Speed: DefaultSpeed,
		},
		Orbit: OrbitConfig{
			MassScale:  DefaultMassScale,
			Distance:   scenario.DefaultOrbitParams().InitDistance,
			ShowForces: true,
			ShowTrail:  true,
			TrailCap:   DefaultTrailCap,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
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

func (c *Config) Validate() error {
	if c.Scenario != "hammer" && c.Scenario != "orbit" {
		return fmt.Errorf("unknown scenario %q", c.Scenario)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if _, err := phys.MassUnits(c.Hammer.Mass); err != nil {
		return err
	}
	if _, err := phys.SwingStep(c.Hammer.Speed); err != nil {
		return err
	}
	if !validMassScale(c.Orbit.MassScale) {
		return fmt.Errorf("mass_scale %v not one of %v", c.Orbit.MassScale, phys.CelestialMassScales)
	}
	if c.Orbit.TrailCap <= 0 {
		return fmt.Errorf("trail_cap must be positive, got %d", c.Orbit.TrailCap)
	}
	return nil
}

func validMassScale(scale float64) bool {
	for _, s := range phys.CelestialMassScales {
		if s == scale {
			return true
		}
	}
	return false
}

// HammerParams resolves the hammer categories into scenario parameters.
func (c *Config) HammerParams() (scenario.HammerParams, error) {
	p := scenario.DefaultHammerParams()
	mass, err := phys.MassUnits(c.Hammer.Mass)
	if err != nil {
		return p, err
	}
	step, err := phys.SwingStep(c.Hammer.Speed)
	if err != nil {
		return p, err
	}
	p.Mass = mass
	p.SwingStep = step
	return p, nil
}

// OrbitParams resolves the orbit settings into scenario parameters.
func (c *Config) OrbitParams() scenario.OrbitParams {
	p := scenario.DefaultOrbitParams()
	p.MassScale = c.Orbit.MassScale
	if c.Orbit.Distance > 0 {
		p.InitDistance = phys.Clamp(c.Orbit.Distance, p.MinDistance, p.MaxDistance)
	}
	if c.Orbit.TrailCap > 0 {
		p.TrailCap = c.Orbit.TrailCap
	}
	return p
}
