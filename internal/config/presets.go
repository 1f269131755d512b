package config

import "sort"

// Presets are ready-made classroom setups, keyed by scenario then name.
var Presets = map[string]map[string]*Config{
	"hammer": {
		"gentle": {
			Scenario: "hammer", FPS: DefaultFPS,
			Hammer: HammerConfig{Mass: "light", Speed: "slow"},
		},
		"standard": {
			Scenario: "hammer", FPS: DefaultFPS,
			Hammer: HammerConfig{Mass: "medium", Speed: "medium"},
		},
		"sledge": {
			Scenario: "hammer", FPS: DefaultFPS,
			Hammer: HammerConfig{Mass: "heavy", Speed: "fast"},
		},
	},
	"orbit": {
		"classroom": {
			Scenario: "orbit", FPS: DefaultFPS,
			Orbit: OrbitConfig{MassScale: 1.0, ShowForces: true, ShowTrail: true, TrailCap: DefaultTrailCap},
		},
		"tight": {
			Scenario: "orbit", FPS: DefaultFPS,
			Orbit: OrbitConfig{MassScale: 2.0, Distance: 25, ShowForces: true, ShowTrail: true, TrailCap: DefaultTrailCap},
		},
		"wide": {
			Scenario: "orbit", FPS: DefaultFPS,
			Orbit: OrbitConfig{MassScale: 0.5, Distance: 60, ShowForces: true, ShowTrail: true, TrailCap: DefaultTrailCap},
		},
	},
}

// GetPreset returns the named preset for a scenario, or nil.
func GetPreset(scenarioName, name string) *Config {
	group, ok := Presets[scenarioName]
	if !ok {
		return nil
	}
	return group[name]
}

// ListPresets returns the preset names for a scenario, sorted, or nil for an
// unknown scenario.
func ListPresets(scenarioName string) []string {
	group, ok := Presets[scenarioName]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Normalized fills the category defaults a preset may omit so Validate
// passes on the result.
func (c *Config) Normalized() *Config {
	out := *c
	if out.Hammer.Mass == "" {
		out.Hammer.Mass = DefaultMass
	}
	if out.Hammer.Speed == "" {
		out.Hammer.Speed = DefaultSpeed
	}
	if out.Orbit.MassScale == 0 {
		out.Orbit.MassScale = DefaultMassScale
	}
	if out.Orbit.TrailCap == 0 {
		out.Orbit.TrailCap = DefaultTrailCap
	}
	return &out
}
