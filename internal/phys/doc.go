// Package phys holds the closed-form formulas behind both demonstrations.
//
// Everything here is a pure function over finite float64 inputs. The only
// guarded edge is a non-positive separation distance, for which the
// gravitational formulas return zero instead of dividing by zero:
//
//   - [Impulse]: |mass * velocity|, drives the hammer strike
//   - [PenetrationDepth]: saturating impulse -> nail depth mapping
//   - [ForceArrowLength]: impulse -> arrow pixels, clamped both ends
//   - [GravitationalForce]: G*m1*m2/r^2
//   - [OrbitalVelocity]: sqrt(G*M/r), circular-orbit approximation
//
// The package also defines the discrete teaching categories (mass, swing
// speed, celestial mass multipliers) and their numeric mappings.
package phys
