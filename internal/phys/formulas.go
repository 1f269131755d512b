package phys

import "math"

const (
	// Hammer strike tuning. Depth saturates so a single swing can never
	// bury the nail, arrows saturate so they stay legible on screen.
	DepthPerImpulse = 0.35
	MaxStrikeDepth  = 14.0
	ArrowPerImpulse = 1.2
	MinArrowLength  = 10.0
	MaxArrowLength  = 56.0
)

// Impulse returns |mass * velocity|.
func Impulse(mass, velocity float64) float64 {
	return math.Abs(mass * velocity)
}

// PenetrationDepth maps a strike impulse to how far the nail sinks,
// saturating at MaxStrikeDepth.
func PenetrationDepth(impulse float64) float64 {
	return math.Min(impulse*DepthPerImpulse, MaxStrikeDepth)
}

// ForceArrowLength maps an impulse to the on-screen arrow length, clamped to
// [MinArrowLength, MaxArrowLength].
func ForceArrowLength(impulse float64) float64 {
	return Clamp(impulse*ArrowPerImpulse, MinArrowLength, MaxArrowLength)
}

// GravitationalForce returns G*m1*m2/r^2, or 0 when r is non-positive.
func GravitationalForce(g, m1, m2, r float64) float64 {
	if r <= 0 {
		return 0
	}
	return g * m1 * m2 / (r * r)
}

// OrbitalVelocity returns the circular-orbit speed sqrt(G*M/r), or 0 when r
// is non-positive.
func OrbitalVelocity(g, m, r float64) float64 {
	if r <= 0 {
		return 0
	}
	return math.Sqrt(g * m / r)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
