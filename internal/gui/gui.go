// Package gui is the desktop window front-end. It drives the same scenario
// records as the TUI, drawn with Ebitengine vector primitives, and gives the
// moon drag a real pointer.
package gui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/calistasalscpw/newtonlab/internal/audio"
	"github.com/calistasalscpw/newtonlab/internal/config"
	"github.com/calistasalscpw/newtonlab/internal/phys"
	"github.com/calistasalscpw/newtonlab/internal/render"
	"github.com/calistasalscpw/newtonlab/internal/scenario"
	"github.com/calistasalscpw/newtonlab/internal/vec"
)

// Scale from world units to window pixels.
const pixelsPerUnit = 4

const (
	windowW = int(scenario.WorldW) * pixelsPerUnit
	windowH = int(scenario.WorldH) * pixelsPerUnit
)

var (
	colorBackground = color.RGBA{8, 10, 22, 255}
	colorGround     = color.RGBA{110, 80, 50, 255}
	colorNail       = color.RGBA{190, 190, 200, 255}
	colorHammer     = color.RGBA{210, 160, 90, 255}
	colorEarth      = color.RGBA{70, 130, 220, 255}
	colorMoon       = color.RGBA{200, 200, 190, 255}
	colorTrail      = color.RGBA{90, 90, 140, 255}
	colorStar       = color.RGBA{120, 120, 140, 255}
	colorAction     = color.RGBA{240, 80, 80, 255}
	colorReaction   = color.RGBA{80, 200, 120, 255}
)

// Game owns whichever scenario is mounted and satisfies ebiten.Game.
type Game struct {
	hammer *scenario.Hammer
	orbit  *scenario.Orbit
	stars  []vec.Vec2
	player *audio.Player
}

// NewGame mounts the configured scenario.
func NewGame(cfg *config.Config, player *audio.Player) (*Game, error) {
	g := &Game{player: player}
	switch cfg.Scenario {
	case "hammer":
		hp, err := cfg.HammerParams()
		if err != nil {
			return nil, err
		}
		g.hammer = scenario.NewHammer(hp)
	case "orbit":
		g.orbit = scenario.NewOrbit(cfg.OrbitParams())
		g.orbit.ShowForces = cfg.Orbit.ShowForces
		g.orbit.ShowTrail = cfg.Orbit.ShowTrail
		g.stars = render.Starfield(cfg.Seed, 90)
	default:
		return nil, fmt.Errorf("unknown scenario %q", cfg.Scenario)
	}
	return g, nil
}

func (g *Game) Update() error {
	if g.hammer != nil {
		g.updateHammer()
	}
	if g.orbit != nil {
		g.updateOrbit()
	}
	return nil
}

func (g *Game) updateHammer() {
	h := g.hammer
	if inpututil.IsKeyJustPressed(ebiten.KeyH) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		h.Hit()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		h.Up()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		h.Reset()
	}
	masses := []string{"light", "medium", "heavy"}
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
		if inpututil.IsKeyJustPressed(key) {
			if units, err := phys.MassUnits(masses[i]); err == nil {
				h.SetMass(units)
			}
		}
	}

	before := h.Phase
	h.Step()
	if before == scenario.HammerSwinging && h.Phase == scenario.HammerContact {
		g.player.Thunk(h.ForceMagnitude)
	}
}

func (g *Game) updateOrbit() {
	o := g.orbit
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		o.TogglePlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		o.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		o.ShowForces = !o.ShowForces
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		o.ShowTrail = !o.ShowTrail
	}
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4} {
		if inpututil.IsKeyJustPressed(key) {
			o.SetMassScale(phys.CelestialMassScales[i])
		}
	}

	cx, cy := ebiten.CursorPosition()
	wx := float64(cx) / pixelsPerUnit
	wy := float64(cy) / pixelsPerUnit
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		o.PointerDown(wx, wy)
	}
	if o.Dragging() && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		o.PointerMove(wx, wy)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		o.PointerUp()
	}

	o.Step()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if g.hammer != nil {
		g.drawHammer(screen)
	}
	if g.orbit != nil {
		g.drawOrbit(screen)
	}
}

func px(w float64) float32 { return float32(w * pixelsPerUnit) }

func (g *Game) drawHammer(screen *ebiten.Image) {
	h := g.hammer
	p := h.Params

	// Ground.
	vector.FillRect(screen, 0, px(p.GroundY), float32(windowW), float32(windowH)-px(p.GroundY), colorGround, false)

	// Nail: a thin rect from its current top down into the ground.
	nailTop := p.GroundY - p.NailHeight + h.NailDepth
	vector.FillRect(screen, px(p.NailX)-2, px(nailTop), 4, px(p.GroundY-nailTop)+12, colorNail, true)
	vector.FillRect(screen, px(p.NailX-2.5), px(nailTop)-2, px(5), 3, colorNail, true)

	// Hammer handle and head.
	hx, hy := h.HeadPosition()
	vector.StrokeLine(screen, px(p.PivotX), px(p.PivotY), px(hx), px(hy), 5, colorHammer, true)
	handle := vec.Vec2{X: hx - p.PivotX, Y: hy - p.PivotY}.Normalize()
	side := vec.Vec2{X: -handle.Y, Y: handle.X}
	a := vec.Vec2{X: hx, Y: hy}.Add(side.Scale(6))
	b := vec.Vec2{X: hx, Y: hy}.Sub(side.Scale(6))
	vector.StrokeLine(screen, px(a.X), px(a.Y), px(b.X), px(b.Y), 14, colorNail, true)

	for i, arrow := range render.HammerArrows(h) {
		c := colorAction
		if i == 1 {
			c = colorReaction
		}
		drawArrow(screen, arrow, c)
	}

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("phase %s  depth %.1f/%.1f  force %.1f\n[h] hit  [u] up  [r] reset  [1-3] mass",
			h.Phase, h.NailDepth, h.MaxDepth, h.ForceMagnitude), 8, 8)
}

func (g *Game) drawOrbit(screen *ebiten.Image) {
	o := g.orbit
	p := o.Params

	for _, s := range g.stars {
		vector.FillRect(screen, px(s.X), px(s.Y), 2, 2, colorStar, false)
	}

	if o.ShowTrail {
		for i := 1; i < len(o.Trail); i++ {
			a, b := o.Trail[i-1], o.Trail[i]
			vector.StrokeLine(screen, px(a.X), px(a.Y), px(b.X), px(b.Y), 1, colorTrail, true)
		}
	}

	vector.FillCircle(screen, px(p.CenterX), px(p.CenterY), px(7), colorEarth, true)
	vector.FillCircle(screen, px(o.MoonX), px(o.MoonY), px(2.5), colorMoon, true)

	for i, arrow := range render.OrbitArrows(o) {
		c := colorAction
		if i == 1 {
			c = colorReaction
		}
		drawArrow(screen, arrow, c)
	}

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("phase %s  distance %.1f  velocity %.2f  force %.2f\n[space] play/pause  [r] reset  [f] forces  [t] trail  [1-4] mass  drag the moon",
			o.Phase, o.Distance, o.Velocity, o.Force), 8, 8)
}

func drawArrow(screen *ebiten.Image, a render.Arrow, c color.Color) {
	vector.StrokeLine(screen, px(a.From.X), px(a.From.Y), px(a.To.X), px(a.To.Y), 3, c, true)

	theta := a.To.Sub(a.From).Angle()
	const headLen = 3.0
	for _, offset := range []float64{2.6, -2.6} {
		hx := a.To.X + headLen*math.Cos(theta+offset)
		hy := a.To.Y + headLen*math.Sin(theta+offset)
		vector.StrokeLine(screen, px(a.To.X), px(a.To.Y), px(hx), px(hy), 3, c, true)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowW, windowH
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, player *audio.Player) error {
	game, err := NewGame(cfg, player)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(windowW, windowH)
	ebiten.SetWindowTitle("newtonlab")
	return ebiten.RunGame(game)
}
