package scenario

import (
	"math"

	"github.com/calistasalscpw/newtonlab/internal/phys"
	"github.com/calistasalscpw/newtonlab/internal/vec"
)

// OrbitPhase is the gravity scenario phase.
type OrbitPhase int

const (
	OrbitIdle OrbitPhase = iota
	OrbitRunning
	OrbitPaused
)

func (p OrbitPhase) String() string {
	switch p {
	case OrbitIdle:
		return "idle"
	case OrbitRunning:
		return "running"
	case OrbitPaused:
		return "paused"
	}
	return "unknown"
}

// OrbitParams holds the tuning for the Earth-Moon scenario.
type OrbitParams struct {
	G          float64
	PlanetMass float64
	MoonMass   float64
	MassScale  float64 // selected planet/moon mass multiplier

	InitDistance float64
	MinDistance  float64
	MaxDistance  float64

	// AngularScale turns the orbital-velocity formula output into an
	// animation-appropriate angular rate.
	AngularScale float64

	TrailCap      int
	DragHitRadius float64

	CenterX, CenterY float64 // planet position in world coordinates
}

// DefaultOrbitParams returns the standard Earth-Moon setup, centered in the
// world space.
func DefaultOrbitParams() OrbitParams {
	return OrbitParams{
		G:             1.0,
		PlanetMass:    2000,
		MoonMass:      8,
		MassScale:     1.0,
		InitDistance:  45,
		MinDistance:   22,
		MaxDistance:   62,
		AngularScale:  0.25,
		TrailCap:      90,
		DragHitRadius: 10,
		CenterX:       WorldW / 2,
		CenterY:       WorldH / 2,
	}
}

// Orbit is the gravity scenario state record. The moon follows a fixed-radius
// circular path whose rate comes from the orbital-velocity formula; this is a
// deliberate classroom approximation, not a two-body integration.
type Orbit struct {
	Phase OrbitPhase

	Angle    float64
	Distance float64
	Velocity float64

	// Force is recomputed every frame and is the single source both the
	// planet-on-moon and moon-on-planet arrows read their length from.
	Force float64

	MoonX, MoonY float64

	Trail []vec.Vec2

	ShowForces bool
	ShowTrail  bool

	Params OrbitParams

	dragging bool
}

// NewOrbit creates an orbit scenario in the Idle phase at the default
// distance with zero angle and velocity.
func NewOrbit(p OrbitParams) *Orbit {
	o := &Orbit{
		Phase:      OrbitIdle,
		Distance:   p.InitDistance,
		ShowForces: true,
		ShowTrail:  true,
		Params:     p,
	}
	o.updatePosition()
	return o
}

// Play starts or resumes the orbit.
func (o *Orbit) Play() { o.Phase = OrbitRunning }

// Pause freezes physics mutation; rendering continues.
func (o *Orbit) Pause() {
	if o.Phase == OrbitRunning {
		o.Phase = OrbitPaused
	}
}

// TogglePlay flips between Running and Paused (Idle counts as paused).
func (o *Orbit) TogglePlay() {
	if o.Phase == OrbitRunning {
		o.Phase = OrbitPaused
	} else {
		o.Phase = OrbitRunning
	}
}

// Reset restores the initial distance, zero angle and velocity, clears the
// trail, and returns to Idle.
func (o *Orbit) Reset() {
	o.Phase = OrbitIdle
	o.Angle = 0
	o.Distance = o.Params.InitDistance
	o.Velocity = 0
	o.Force = 0
	o.Trail = nil
	o.dragging = false
	o.updatePosition()
}

// SetMassScale selects a planet/moon mass multiplier.
func (o *Orbit) SetMassScale(scale float64) {
	o.Params.MassScale = scale
}

// Dragging reports whether a pointer drag is in progress.
func (o *Orbit) Dragging() bool { return o.dragging }

// Step advances the orbit one frame. Only the Running phase mutates physics;
// during a drag the angular advance is suppressed but force and velocity are
// still recomputed from the (possibly just changed) distance.
func (o *Orbit) Step() {
	if o.Phase != OrbitRunning {
		return
	}
	p := o.Params

	planetMass := p.PlanetMass * p.MassScale
	moonMass := p.MoonMass * p.MassScale
	o.Force = phys.GravitationalForce(p.G, planetMass, moonMass, o.Distance)
	o.Velocity = phys.OrbitalVelocity(p.G, planetMass, o.Distance)

	if !o.dragging && o.Distance > 0 {
		// Angular velocity approximated as linear velocity over radius.
		o.Angle += o.Velocity / o.Distance * p.AngularScale
	}

	o.updatePosition()
	o.appendTrail()
}

// PointerDown begins a drag when the press lands within the hit radius of
// the moon. Returns whether a drag started.
func (o *Orbit) PointerDown(x, y float64) bool {
	hit := vec.Vec2{X: x, Y: y}.Distance(vec.Vec2{X: o.MoonX, Y: o.MoonY}) <= o.Params.DragHitRadius
	if hit {
		o.dragging = true
	}
	return hit
}

// PointerMove overrides distance and angle from the pointer position while a
// drag is active. Distance is clamped; force and velocity catch up on the
// next Step.
func (o *Orbit) PointerMove(x, y float64) {
	if !o.dragging {
		return
	}
	p := o.Params
	d := vec.Vec2{X: x, Y: y}.Sub(vec.Vec2{X: p.CenterX, Y: p.CenterY})
	o.Distance = phys.Clamp(d.Length(), p.MinDistance, p.MaxDistance)
	if d.Length() > 0 {
		o.Angle = d.Angle()
	}
	o.updatePosition()
}

// PointerUp ends a drag.
func (o *Orbit) PointerUp() { o.dragging = false }

func (o *Orbit) updatePosition() {
	o.MoonX = o.Params.CenterX + math.Cos(o.Angle)*o.Distance
	o.MoonY = o.Params.CenterY + math.Sin(o.Angle)*o.Distance
}

func (o *Orbit) appendTrail() {
	o.Trail = append(o.Trail, vec.Vec2{X: o.MoonX, Y: o.MoonY})
	if len(o.Trail) > o.Params.TrailCap {
		o.Trail = o.Trail[1:]
	}
}

// orbitArrowScale converts gravitational force into world-space arrow length.
// Tuned so the arrows shrink and grow visibly across the draggable distance
// range instead of sitting on the clamp.
const orbitArrowScale = 4.0

// ArrowLength maps the current force to a drawable arrow length. Both arrows
// of the pair use this one value.
func (o *Orbit) ArrowLength() float64 {
	return phys.Clamp(o.Force*orbitArrowScale, phys.MinArrowLength, phys.MaxArrowLength)
}
