package render

import (
	"github.com/calistasalscpw/newtonlab/internal/scenario"
	"github.com/calistasalscpw/newtonlab/internal/vec"
)

// Arrow is a force arrow in world coordinates.
type Arrow struct {
	From, To vec.Vec2
	Label    string
}

// Length returns the arrow length in world units.
func (a Arrow) Length() float64 {
	return a.To.Sub(a.From).Length()
}

// HammerArrows builds the action/reaction pair for the hammer scene. Both
// arrows take their length from the hammer's one ForceMagnitude field; they
// only exist during Contact and Pause.
func HammerArrows(h *scenario.Hammer) []Arrow {
	if h.Phase != scenario.HammerContact && h.Phase != scenario.HammerPause {
		return nil
	}
	p := h.Params
	l := h.ForceMagnitude
	nailTop := p.GroundY - p.NailHeight + h.NailDepth

	down := vec.Vec2{X: 0, Y: 1}
	up := down.Invert()

	const offset = 7 // keep the pair side by side and readable
	return []Arrow{
		{
			From:  vec.Vec2{X: p.NailX - offset, Y: nailTop}.Add(up.Scale(l)),
			To:    vec.Vec2{X: p.NailX - offset, Y: nailTop},
			Label: "hammer on nail",
		},
		{
			From:  vec.Vec2{X: p.NailX + offset, Y: nailTop},
			To:    vec.Vec2{X: p.NailX + offset, Y: nailTop}.Add(up.Scale(l)),
			Label: "nail on hammer",
		},
	}
}

// OrbitArrows builds the gravitational pair. Both arrows take their length
// from the orbit's one force value.
func OrbitArrows(o *scenario.Orbit) []Arrow {
	if !o.ShowForces {
		return nil
	}
	p := o.Params
	center := vec.Vec2{X: p.CenterX, Y: p.CenterY}
	moon := vec.Vec2{X: o.MoonX, Y: o.MoonY}

	toPlanet := center.Sub(moon).Normalize()
	if toPlanet.Length() == 0 {
		return nil
	}
	toMoon := toPlanet.Invert()
	l := o.ArrowLength()

	return []Arrow{
		{From: moon, To: moon.Add(toPlanet.Scale(l)), Label: "earth on moon"},
		{From: center, To: center.Add(toMoon.Scale(l)), Label: "moon on earth"},
	}
}
