package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calistasalscpw/newtonlab/internal/audio"
	"github.com/calistasalscpw/newtonlab/internal/config"
	"github.com/calistasalscpw/newtonlab/internal/phys"
	"github.com/calistasalscpw/newtonlab/internal/render"
	"github.com/calistasalscpw/newtonlab/internal/scenario"
	"github.com/calistasalscpw/newtonlab/internal/vec"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type screen int

const (
	screenMenu screen = iota
	screenHammer
	screenOrbit
)

// Canvas placement within the rendered view, used to map mouse cells back
// into world coordinates.
const (
	canvasLeft = 3
	canvasTop  = 3
)

var menuEntries = []struct {
	name, desc string
}{
	{"hammer & nail", "contact forces"},
	{"earth & moon", "gravitational forces"},
}

type model struct {
	screen screen
	cursor int

	cfg *config.Config

	hammer    *scenario.Hammer
	massName  string
	speedName string

	orbit    *scenario.Orbit
	scaleIdx int
	stars    []vec.Vec2

	player *audio.Player

	history   []float64
	lastFrame time.Time
	fps       float64

	width  int
	height int
}

// New builds the interactive app. The starting screen follows the configured
// scenario.
func New(cfg *config.Config, player *audio.Player) (tea.Model, error) {
	hp, err := cfg.HammerParams()
	if err != nil {
		return nil, err
	}

	m := model{
		screen:    screenMenu,
		cfg:       cfg,
		hammer:    scenario.NewHammer(hp),
		massName:  cfg.Hammer.Mass,
		speedName: cfg.Hammer.Speed,
		orbit:     scenario.NewOrbit(cfg.OrbitParams()),
		player:    player,
		stars:     render.Starfield(cfg.Seed, 70),
		width:     80,
		height:    24,
	}
	m.orbit.ShowForces = cfg.Orbit.ShowForces
	m.orbit.ShowTrail = cfg.Orbit.ShowTrail
	for i, s := range phys.CelestialMassScales {
		if s == cfg.Orbit.MassScale {
			m.scaleIdx = i
		}
	}

	switch cfg.Scenario {
	case "orbit":
		m.screen = screenOrbit
	case "hammer":
		m.screen = screenHammer
	}
	return m, nil
}

func (m model) Init() tea.Cmd { return tick() }

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		m.trackFPS()
		switch m.screen {
		case screenHammer:
			m.stepHammer()
		case screenOrbit:
			m.stepOrbit()
		}
		return m, tick()
	}
	return m, nil
}

func (m *model) trackFPS() {
	now := time.Now()
	if !m.lastFrame.IsZero() {
		if dt := now.Sub(m.lastFrame).Seconds(); dt > 0 {
			m.fps = 1.0 / dt
		}
	}
	m.lastFrame = now
}

func (m *model) stepHammer() {
	before := m.hammer.Phase
	m.hammer.Step()
	if before == scenario.HammerSwinging && m.hammer.Phase == scenario.HammerContact {
		m.player.Thunk(m.hammer.ForceMagnitude)
	}
	m.pushHistory(m.hammer.NailDepth)
}

func (m *model) stepOrbit() {
	m.orbit.Step()
	m.pushHistory(m.orbit.Force)
}

func (m *model) pushHistory(v float64) {
	m.history = append(m.history, v)
	if len(m.history) > 60 {
		m.history = m.history[1:]
	}
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.screen {
	case screenMenu:
		return m.menuKey(msg)
	case screenHammer:
		return m.hammerKey(msg)
	case screenOrbit:
		return m.orbitKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.history = nil
		if m.cursor == 0 {
			m.screen = screenHammer
		} else {
			m.screen = screenOrbit
		}
		return m, tea.ClearScreen
	}
	return m, nil
}

func (m model) hammerKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "escape":
		m.screen = screenMenu
		return m, tea.ClearScreen
	case "h", "enter":
		m.hammer.Hit()
	case "u":
		m.hammer.Up()
	case "r":
		m.hammer.Reset()
		m.history = nil
	case "1":
		m.setMass("light")
	case "2":
		m.setMass("medium")
	case "3":
		m.setMass("heavy")
	case ",":
		m.setSpeed("slow")
	case ".":
		m.setSpeed("medium")
	case "/":
		m.setSpeed("fast")
	}
	return m, nil
}

func (m *model) setMass(category string) {
	if units, err := phys.MassUnits(category); err == nil {
		m.hammer.SetMass(units)
		m.massName = category
	}
}

func (m *model) setSpeed(category string) {
	if step, err := phys.SwingStep(category); err == nil {
		m.hammer.SetSwingStep(step)
		m.speedName = category
	}
}

func (m model) orbitKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "escape":
		m.screen = screenMenu
		return m, tea.ClearScreen
	case " ", "p":
		m.orbit.TogglePlay()
	case "r":
		m.orbit.Reset()
		m.history = nil
	case "f":
		m.orbit.ShowForces = !m.orbit.ShowForces
	case "t":
		m.orbit.ShowTrail = !m.orbit.ShowTrail
	case "1", "2", "3", "4":
		m.scaleIdx = int(msg.String()[0] - '1')
		m.orbit.SetMassScale(phys.CelestialMassScales[m.scaleIdx])
	}
	return m, nil
}

// handleMouse drives the moon drag. Mouse cells are translated through the
// same viewport the scene was drawn with.
func (m model) handleMouse(msg tea.MouseMsg) (model, tea.Cmd) {
	if m.screen != screenOrbit {
		return m, nil
	}

	v := m.viewport()
	wx, wy := v.CellToWorld(msg.X-canvasLeft, msg.Y-canvasTop)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.orbit.PointerDown(wx, wy)
		}
	case tea.MouseActionMotion:
		m.orbit.PointerMove(wx, wy)
	case tea.MouseActionRelease:
		m.orbit.PointerUp()
	}
	return m, nil
}

func (m model) canvasSize() (cols, rows int) {
	cols = m.width - 2*canvasLeft
	rows = m.height - 11
	if cols > 100 {
		cols = 100
	}
	if rows > 35 {
		rows = 35
	}
	if cols < 50 {
		cols = 50
	}
	if rows < 18 {
		rows = 18
	}
	return cols, rows
}

func (m model) viewport() render.Viewport {
	cols, rows := m.canvasSize()
	return render.NewViewport(cols, rows)
}

func (m model) View() string {
	switch m.screen {
	case screenMenu:
		return m.viewMenu()
	case screenHammer:
		return m.viewHammer()
	case screenOrbit:
		return m.viewOrbit()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("        " + cyan.Render("n e w t o n l a b") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString(dim.Render("      every action has an equal and") + "\n")
	b.WriteString(dim.Render("      opposite reaction") + "\n\n")

	for i, entry := range menuEntries {
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-16s", entry.name)) + dim.Render(entry.desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-16s", entry.name)) + dimmer.Render(entry.desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter start   q quit") + "\n")

	return b.String()
}

func (m model) viewHammer() string {
	cols, rows := m.canvasSize()
	canvas := render.NewCanvas(cols, rows)
	render.HammerScene(canvas, m.viewport(), m.hammer)

	var b strings.Builder
	b.WriteString("\n")

	h := m.hammer
	statusIcon := green.Render("●")
	if h.Phase == scenario.HammerIdle || h.Phase == scenario.HammerPause {
		statusIcon = yellow.Render("○")
	}
	b.WriteString(fmt.Sprintf("   %s %s  %s  %s\n", statusIcon,
		cyan.Render("hammer & nail"),
		white.Render(h.Phase.String()),
		dim.Render(fmt.Sprintf("%.0ffps", m.fps))))
	b.WriteString("\n")

	for _, row := range canvas.Rows() {
		b.WriteString(strings.Repeat(" ", canvasLeft) + row + "\n")
	}

	b.WriteString(fmt.Sprintf("   %s%s  %s%s  %s%s  %s%s\n",
		dim.Render("mass "), magenta.Render(m.massName),
		dim.Render("speed "), magenta.Render(m.speedName),
		dim.Render("depth "), white.Render(fmt.Sprintf("%.1f/%.1f", h.NailDepth, h.MaxDepth)),
		dim.Render("force "), white.Render(fmt.Sprintf("%.1f", h.ForceMagnitude))))

	if h.Phase == scenario.HammerPause {
		b.WriteString("   " + yellow.Render("the nail pushes back on the hammer exactly as hard as the hammer pushes on the nail") + "\n")
	} else if len(m.history) > 1 {
		b.WriteString(fmt.Sprintf("   %s %s\n", dim.Render("depth"), cyan.Render(sparkline(m.history, 24))))
	}

	b.WriteString("\n" + dim.Render("   h hit  u up  r reset  1-3 mass  ,./ speed  q back") + "\n")
	return b.String()
}

func (m model) viewOrbit() string {
	cols, rows := m.canvasSize()
	canvas := render.NewCanvas(cols, rows)
	render.OrbitScene(canvas, m.viewport(), m.orbit, m.stars)

	var b strings.Builder
	b.WriteString("\n")

	o := m.orbit
	statusIcon := green.Render("●")
	statusText := green.Render(o.Phase.String())
	if o.Phase != scenario.OrbitRunning {
		statusIcon = yellow.Render("○")
		statusText = yellow.Render(o.Phase.String())
	}
	b.WriteString(fmt.Sprintf("   %s %s  %s  %s\n", statusIcon,
		cyan.Render("earth & moon"), statusText,
		dim.Render(fmt.Sprintf("%.0ffps", m.fps))))
	b.WriteString("\n")

	for _, row := range canvas.Rows() {
		b.WriteString(strings.Repeat(" ", canvasLeft) + row + "\n")
	}

	b.WriteString(fmt.Sprintf("   %s%s  %s%s  %s%s  %s%s\n",
		dim.Render("distance "), white.Render(fmt.Sprintf("%.1f", o.Distance)),
		dim.Render("velocity "), white.Render(fmt.Sprintf("%.2f", o.Velocity)),
		dim.Render("force "), white.Render(fmt.Sprintf("%.2f", o.Force)),
		dim.Render("mass ×"), magenta.Render(fmt.Sprintf("%.1f", phys.CelestialMassScales[m.scaleIdx]))))

	if len(m.history) > 1 {
		b.WriteString(fmt.Sprintf("   %s %s\n", dim.Render("force"), cyan.Render(sparkline(m.history, 24))))
	} else {
		b.WriteString("\n")
	}

	b.WriteString("\n" + dim.Render("   space play/pause  r reset  f forces  t trail  1-4 mass  drag moon  q back") + "\n")
	return b.String()
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	step := len(data) / width
	if step < 1 {
		step = 1
	}
	var sb strings.Builder
	for i := 0; i < width && i*step < len(data); i++ {
		idx := int((data[i*step] - minVal) / rang * 7)
		if idx > 7 {
			idx = 7
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

// Run starts the interactive program with the alt screen and mouse tracking
// enabled; cell-motion tracking is what makes the moon drag work.
func Run(cfg *config.Config, player *audio.Player) error {
	m, err := New(cfg, player)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
