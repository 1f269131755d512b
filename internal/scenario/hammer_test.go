package scenario

import (
	"testing"

	"github.com/calistasalscpw/newtonlab/internal/phys"
)

// stepUntil advances h until the phase is reached or the frame budget runs
// out, returning the number of frames taken.
func stepUntil(t *testing.T, h *Hammer, phase HammerPhase, budget int) int {
	t.Helper()
	for i := 0; i < budget; i++ {
		if h.Phase == phase {
			return i
		}
		h.Step()
	}
	if h.Phase != phase {
		t.Fatalf("did not reach phase %v within %d frames, stuck in %v", phase, budget, h.Phase)
	}
	return budget
}

func TestHammerInitialState(t *testing.T) {
	h := NewHammer(DefaultHammerParams())

	if h.Phase != HammerIdle {
		t.Errorf("expected Idle, got %v", h.Phase)
	}
	if h.Angle != h.Params.RaisedAngle {
		t.Errorf("expected raised angle %v, got %v", h.Params.RaisedAngle, h.Angle)
	}
	if h.NailDepth != 0 || h.MaxDepth != 0 || h.ForceMagnitude != 0 {
		t.Error("expected zeroed depth and force")
	}
}

func TestHammerStepInIdleIsNoOp(t *testing.T) {
	h := NewHammer(DefaultHammerParams())
	for i := 0; i < 10; i++ {
		h.Step()
	}
	if h.Phase != HammerIdle || h.Angle != h.Params.RaisedAngle {
		t.Error("Idle frames must not mutate the hammer")
	}
}

func TestHammerHitReachesContactOnce(t *testing.T) {
	h := NewHammer(DefaultHammerParams())
	h.Hit()

	if h.Phase != HammerSwinging {
		t.Fatalf("Hit should start the swing, got %v", h.Phase)
	}

	contacts := 0
	budget := int((h.Params.RaisedAngle-h.Params.ImpactAngle)/h.Params.SwingStep) + 3
	prev := h.Phase
	for i := 0; i < budget; i++ {
		h.Step()
		if h.Phase == HammerContact && prev != HammerContact {
			contacts++
		}
		prev = h.Phase
		if h.Phase == HammerContact {
			break
		}
	}

	if contacts != 1 {
		t.Fatalf("expected exactly one transition into Contact, got %d", contacts)
	}
	if h.Angle != h.Params.ImpactAngle {
		t.Errorf("angle should snap to impact angle, got %v", h.Angle)
	}
	if h.MaxDepth <= 0 {
		t.Error("strike should set a positive target depth")
	}
	if h.ForceMagnitude < phys.MinArrowLength || h.ForceMagnitude > phys.MaxArrowLength {
		t.Errorf("force magnitude %v outside arrow bounds", h.ForceMagnitude)
	}
}

func TestHammerContactSinksToMaxDepthThenPauses(t *testing.T) {
	h := NewHammer(DefaultHammerParams())
	h.Hit()
	stepUntil(t, h, HammerContact, 1000)

	force := h.ForceMagnitude
	prevDepth := h.NailDepth
	for i := 0; i < 1000 && h.Phase == HammerContact; i++ {
		h.Step()
		if h.NailDepth < prevDepth {
			t.Fatal("nail depth decreased during contact")
		}
		if h.NailDepth > h.MaxDepth {
			t.Fatalf("nail depth %v exceeded target %v", h.NailDepth, h.MaxDepth)
		}
		prevDepth = h.NailDepth
	}

	if h.Phase != HammerPause {
		t.Fatalf("expected Pause after contact, got %v", h.Phase)
	}
	if h.NailDepth != h.MaxDepth {
		t.Errorf("depth %v should equal target %v at Pause", h.NailDepth, h.MaxDepth)
	}
	if h.ForceMagnitude != force {
		t.Error("force magnitude must hold constant through Contact and Pause")
	}
}

func TestHammerUpReturnsToIdleExactly(t *testing.T) {
	h := NewHammer(DefaultHammerParams())
	h.Hit()
	stepUntil(t, h, HammerPause, 1000)

	h.Up()
	if h.Phase != HammerResetting {
		t.Fatalf("Up from Pause should start Resetting, got %v", h.Phase)
	}

	stepUntil(t, h, HammerIdle, 1000)

	if h.NailDepth != 0 {
		t.Errorf("nail depth should snap to exactly 0, got %v", h.NailDepth)
	}
	if h.Angle != h.Params.RaisedAngle {
		t.Errorf("angle should snap to exactly %v, got %v", h.Params.RaisedAngle, h.Angle)
	}
}

func TestHammerCommandsIgnoredInWrongPhase(t *testing.T) {
	h := NewHammer(DefaultHammerParams())

	h.Up() // not paused
	if h.Phase != HammerIdle {
		t.Error("Up in Idle should be ignored")
	}

	h.Hit()
	h.Hit() // already swinging
	if h.Phase != HammerSwinging {
		t.Error("second Hit should be ignored")
	}

	stepUntil(t, h, HammerPause, 1000)
	h.Hit() // paused, not idle
	if h.Phase != HammerPause {
		t.Error("Hit in Pause should be ignored")
	}
}

func TestHammerResetFromAnyPhase(t *testing.T) {
	for _, target := range []HammerPhase{HammerSwinging, HammerContact, HammerPause} {
		h := NewHammer(DefaultHammerParams())
		h.Hit()
		stepUntil(t, h, target, 1000)

		h.Reset()
		if h.Phase != HammerIdle {
			t.Errorf("Reset from %v: expected Idle, got %v", target, h.Phase)
		}
		if h.Angle != h.Params.RaisedAngle || h.NailDepth != 0 || h.MaxDepth != 0 || h.ForceMagnitude != 0 {
			t.Errorf("Reset from %v left residual state", target)
		}
	}
}

func TestHammerDepthAccumulatesAcrossHits(t *testing.T) {
	h := NewHammer(DefaultHammerParams())

	h.Hit()
	stepUntil(t, h, HammerPause, 1000)
	first := h.MaxDepth

	h.Up()
	stepUntil(t, h, HammerIdle, 1000)

	h.Hit()
	stepUntil(t, h, HammerPause, 1000)

	if h.MaxDepth <= first {
		t.Errorf("second strike should deepen the target: %v -> %v", first, h.MaxDepth)
	}
	if h.MaxDepth > h.Params.NailHeight {
		t.Errorf("target depth %v exceeds nail height %v", h.MaxDepth, h.Params.NailHeight)
	}
}

func TestHammerHeavyFastSinksAtLeastAsDeepAsLightSlow(t *testing.T) {
	strike := func(mass, speed string) float64 {
		p := DefaultHammerParams()
		m, err := phys.MassUnits(mass)
		if err != nil {
			t.Fatal(err)
		}
		s, err := phys.SwingStep(speed)
		if err != nil {
			t.Fatal(err)
		}
		p.Mass = m
		p.SwingStep = s
		h := NewHammer(p)
		h.Hit()
		stepUntil(t, h, HammerPause, 1000)
		return h.MaxDepth
	}

	if strike("heavy", "fast") < strike("light", "slow") {
		t.Error("heavy+fast strike sank less than light+slow")
	}
}
