package scenario

import (
	"math"

	"github.com/calistasalscpw/newtonlab/internal/phys"
)

// HammerPhase is the hammer scenario state machine phase.
type HammerPhase int

const (
	HammerIdle HammerPhase = iota
	HammerSwinging
	HammerContact
	HammerPause
	HammerResetting
)

func (p HammerPhase) String() string {
	switch p {
	case HammerIdle:
		return "idle"
	case HammerSwinging:
		return "swinging"
	case HammerContact:
		return "contact"
	case HammerPause:
		return "pause"
	case HammerResetting:
		return "resetting"
	}
	return "unknown"
}

// HammerParams holds the tuning for one hammer scenario instance. Geometry
// is in world units so every renderer draws the same scene.
type HammerParams struct {
	RaisedAngle float64 // hammer held up, radians from vertical
	ImpactAngle float64 // hammer touching the nail head
	SwingStep   float64 // radians per frame while swinging
	Mass        float64 // mass units from the selected category

	// Impact velocity is the swing rate scaled to velocity units, so a
	// faster swing setting strikes harder.
	VelocityPerStep float64

	ContactRate    float64 // nail world-units per frame during contact
	ResetAngleRate float64 // radians per frame while resetting
	ResetDepthRate float64 // nail world-units per frame while resetting

	// Scene geometry.
	PivotX, PivotY float64 // hammer pivot
	ArmLength      float64
	NailX, GroundY float64
	NailHeight     float64
}

// DefaultHammerParams returns the medium mass, medium speed setup.
func DefaultHammerParams() HammerParams {
	return HammerParams{
		RaisedAngle:     math.Pi * 0.45,
		ImpactAngle:     0.08,
		SwingStep:       0.09,
		Mass:            5,
		VelocityPerStep: 60,
		ContactRate:     0.8,
		ResetAngleRate:  0.05,
		ResetDepthRate:  0.6,
		PivotX:          78,
		PivotY:          52,
		ArmLength:       53,
		NailX:           126,
		GroundY:         104,
		NailHeight:      30,
	}
}

// Hammer is the hammer-and-nail scenario state record. One instance per
// mounted scenario; all mutation happens on the frame loop that owns it.
type Hammer struct {
	Phase HammerPhase

	Angle     float64 // current hammer angle, radians
	NailDepth float64 // how far the nail currently sits below flush
	MaxDepth  float64 // cumulative target depth across hits

	// ForceMagnitude is the single source both opposing arrows read their
	// length from. Set once on impact, held through Contact and Pause.
	ForceMagnitude float64

	Params HammerParams
}

// NewHammer creates a hammer scenario in the Idle phase.
func NewHammer(p HammerParams) *Hammer {
	return &Hammer{
		Phase:  HammerIdle,
		Angle:  p.RaisedAngle,
		Params: p,
	}
}

// Hit starts a swing. Ignored unless the hammer is idle.
func (h *Hammer) Hit() {
	if h.Phase != HammerIdle {
		return
	}
	h.Phase = HammerSwinging
}

// Up raises the hammer and backs the nail out. Ignored unless paused on a
// finished strike.
func (h *Hammer) Up() {
	if h.Phase != HammerPause {
		return
	}
	h.Phase = HammerResetting
}

// Reset re-initializes every field and returns to Idle from any phase.
func (h *Hammer) Reset() {
	h.Phase = HammerIdle
	h.Angle = h.Params.RaisedAngle
	h.NailDepth = 0
	h.MaxDepth = 0
	h.ForceMagnitude = 0
}

// SetMass switches the mass category mid-session. Takes effect on the next
// strike.
func (h *Hammer) SetMass(mass float64) {
	h.Params.Mass = mass
}

// SetSwingStep switches the swing speed category.
func (h *Hammer) SetSwingStep(step float64) {
	h.Params.SwingStep = step
}

// Step advances the state machine one frame.
func (h *Hammer) Step() {
	p := h.Params
	switch h.Phase {
	case HammerSwinging:
		h.Angle -= p.SwingStep
		if h.Angle <= p.ImpactAngle {
			h.Angle = p.ImpactAngle
			h.strike()
			h.Phase = HammerContact
		}

	case HammerContact:
		h.NailDepth += p.ContactRate
		if h.NailDepth >= h.MaxDepth {
			h.NailDepth = h.MaxDepth
			h.Phase = HammerPause
		}

	case HammerResetting:
		h.Angle += p.ResetAngleRate
		h.NailDepth -= p.ResetDepthRate
		if h.NailDepth < 0 {
			h.NailDepth = 0
		}
		if h.Angle >= p.RaisedAngle {
			// Snap to exact initial values.
			h.Angle = p.RaisedAngle
			h.NailDepth = 0
			h.Phase = HammerIdle
		}
	}
}

// strike runs the one-shot impact physics: impulse from the current mass and
// swing speed, penetration added to the cumulative depth, arrow length fixed
// for the rest of the strike. The nail can sink at most to its own height.
func (h *Hammer) strike() {
	p := h.Params
	impulse := phys.Impulse(p.Mass, p.SwingStep*p.VelocityPerStep)
	h.MaxDepth = math.Min(h.MaxDepth+phys.PenetrationDepth(impulse), p.NailHeight)
	h.ForceMagnitude = phys.ForceArrowLength(impulse)
}

// HeadPosition returns the hammer head center in world coordinates.
func (h *Hammer) HeadPosition() (x, y float64) {
	p := h.Params
	x = p.PivotX + p.ArmLength*math.Sin(h.Angle+h.impactOffset())
	y = p.PivotY + p.ArmLength*math.Cos(h.Angle+h.impactOffset())
	return x, y
}

// impactOffset rotates the arm so that at ImpactAngle the head rests on the
// nail position.
func (h *Hammer) impactOffset() float64 {
	p := h.Params
	return math.Atan2(p.NailX-p.PivotX, p.GroundY-p.NailHeight-p.PivotY) - p.ImpactAngle
}
