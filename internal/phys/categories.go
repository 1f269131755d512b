package phys

import (
	"fmt"
	"sort"
)

// Discrete teaching categories. The UI exposes named buckets; the numbers
// behind them are fixed and documented so worksheet answers line up.
var massUnits = map[string]float64{
	"light":  1,
	"medium": 5,
	"heavy":  10,
}

// Swing speed buckets, in radians of hammer rotation per frame.
var swingSteps = map[string]float64{
	"slow":   0.045,
	"medium": 0.09,
	"fast":   0.16,
}

// CelestialMassScales are the selectable planet/moon mass multipliers.
var CelestialMassScales = []float64{0.5, 1.0, 1.5, 2.0}

// MassUnits resolves a hammer mass category to mass units.
func MassUnits(category string) (float64, error) {
	m, ok := massUnits[category]
	if !ok {
		return 0, fmt.Errorf("unknown mass category %q (available: %v)", category, MassCategories())
	}
	return m, nil
}

// SwingStep resolves a swing speed category to radians per frame.
func SwingStep(category string) (float64, error) {
	s, ok := swingSteps[category]
	if !ok {
		return 0, fmt.Errorf("unknown speed category %q (available: %v)", category, SpeedCategories())
	}
	return s, nil
}

// MassCategories lists the known mass categories, sorted.
func MassCategories() []string {
	return sortedKeys(massUnits)
}

// SpeedCategories lists the known swing speed categories, sorted.
func SpeedCategories() []string {
	return sortedKeys(swingSteps)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
