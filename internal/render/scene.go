package render

import (
	"github.com/calistasalscpw/newtonlab/internal/scenario"
	"github.com/calistasalscpw/newtonlab/internal/vec"
)

// HammerScene paints the full hammer frame: ground, nail, hammer, and the
// force-arrow pair when the strike is in Contact or Pause.
func HammerScene(c *Canvas, v Viewport, h *scenario.Hammer) {
	p := h.Params

	groundY := yPix(v, p.GroundY)
	x0, _ := v.ToPixel(4, 0)
	x1, _ := v.ToPixel(scenario.WorldW-4, 0)
	c.DrawLine(x0, groundY, x1, groundY)
	// Hatching below the surface.
	for x := x0; x < x1; x += 8 {
		c.DrawLine(x+4, groundY+4, x, groundY+8)
	}

	drawNail(c, v, h)
	drawHammer(c, v, h)

	for _, a := range HammerArrows(h) {
		drawArrow(c, v, a)
	}
}

func drawNail(c *Canvas, v Viewport, h *scenario.Hammer) {
	p := h.Params
	topY := p.GroundY - p.NailHeight + h.NailDepth

	x, y0 := v.ToPixel(p.NailX, topY)
	_, y1 := v.ToPixel(p.NailX, p.GroundY)
	c.DrawLine(x, y0, x, y1)
	c.DrawLine(x+1, y0, x+1, y1)

	// Nail head.
	hx0, _ := v.ToPixel(p.NailX-2.5, 0)
	hx1, _ := v.ToPixel(p.NailX+2.5, 0)
	c.DrawLine(hx0, y0, hx1, y0)
}

func drawHammer(c *Canvas, v Viewport, h *scenario.Hammer) {
	p := h.Params
	hx, hy := h.HeadPosition()

	px, py := v.ToPixel(p.PivotX, p.PivotY)
	ex, ey := v.ToPixel(hx, hy)
	c.DrawLine(px, py, ex, ey)

	// Head block perpendicular to the handle.
	handle := vec.Vec2{X: float64(ex - px), Y: float64(ey - py)}.Normalize()
	side := vec.Vec2{X: -handle.Y, Y: handle.X}
	for i := -2; i <= 2; i++ {
		off := handle.Scale(float64(i))
		a := vec.Vec2{X: float64(ex), Y: float64(ey)}.Add(off).Add(side.Scale(6))
		b := vec.Vec2{X: float64(ex), Y: float64(ey)}.Add(off).Add(side.Scale(-6))
		c.DrawLine(int(a.X), int(a.Y), int(b.X), int(b.Y))
	}
}

// OrbitScene paints the full gravity frame: starfield, bodies, trail, and
// the force-arrow pair.
func OrbitScene(c *Canvas, v Viewport, o *scenario.Orbit, stars []vec.Vec2) {
	for _, s := range stars {
		x, y := v.ToPixel(s.X, s.Y)
		c.Set(x, y)
	}

	if o.ShowTrail {
		for _, pt := range o.Trail {
			x, y := v.ToPixel(pt.X, pt.Y)
			c.Set(x, y)
		}
	}

	p := o.Params
	ex, ey := v.ToPixel(p.CenterX, p.CenterY)
	c.FillCircle(ex, ey, v.PixelLength(7))

	mx, my := v.ToPixel(o.MoonX, o.MoonY)
	c.FillCircle(mx, my, v.PixelLength(2.5))
	c.DrawCircle(mx, my, v.PixelLength(2.5)+1)

	for _, a := range OrbitArrows(o) {
		drawArrow(c, v, a)
	}
}

// Starfield returns a deterministic scatter of background stars in world
// coordinates, from an xorshift of the seed.
func Starfield(seed int64, n int) []vec.Vec2 {
	s := uint64(seed)
	if s == 0 {
		s = 0x9e3779b97f4a7c15
	}
	next := func() float64 {
		s ^= s << 13
		s ^= s >> 7
		s ^= s << 17
		return float64(s%10000) / 10000
	}
	stars := make([]vec.Vec2, n)
	for i := range stars {
		stars[i] = vec.Vec2{X: next() * scenario.WorldW, Y: next() * scenario.WorldH}
	}
	return stars
}

func drawArrow(c *Canvas, v Viewport, a Arrow) {
	x0, y0 := v.ToPixel(a.From.X, a.From.Y)
	x1, y1 := v.ToPixel(a.To.X, a.To.Y)
	c.DrawArrow(x0, y0, x1, y1)

	if a.Label == "" {
		return
	}
	// Label past the tip, nudged off the shaft.
	dir := a.To.Sub(a.From).Normalize()
	lx := a.To.X + dir.X*4
	ly := a.To.Y + dir.Y*4 - 2
	col, row := v.ToCell(lx, ly)
	if dir.X < 0 {
		col -= len(a.Label)
	}
	c.AddLabel(col, row, a.Label)
}

func yPix(v Viewport, wy float64) int {
	_, y := v.ToPixel(0, wy)
	return y
}
