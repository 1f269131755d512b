package render

import (
	"math"
	"strings"
)

// Braille patterns pack 2x4 dots per terminal cell:
//
//	1 4
//	2 5
//	3 6
//	7 8
//
// Unicode offset 0x2800.
var dotBits = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBase = 0x2800

// Label is a short text overlaid on the cell grid.
type Label struct {
	Col, Row int
	Text     string
}

// Canvas is a Braille sub-pixel canvas. Its drawable area is
// (Width*2) x (Height*4) sub-pixels.
type Canvas struct {
	Width, Height int
	grid          [][]rune
	labels        []Label
}

// NewCanvas creates a cleared canvas of w x h cells.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, grid: make([][]rune, h)}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
		for j := range c.grid[i] {
			c.grid[i][j] = brailleBase
		}
	}
	return c
}

// Set lights the sub-pixel at (x, y). Out-of-range coordinates are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.grid[row][col] |= dotBits[y%4][x%2]
}

// Unset clears the sub-pixel at (x, y). Out-of-range coordinates are
// ignored.
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.grid[row][col] &^= dotBits[y%4][x%2]
}

// Lit reports whether the sub-pixel at (x, y) is set.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return false
	}
	return c.grid[row][col]&dotBits[y%4][x%2] != 0
}

// Clear resets every sub-pixel and drops all labels.
func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = brailleBase
		}
	}
	c.labels = c.labels[:0]
}

// DrawLine draws a Bresenham line in sub-pixel coordinates.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawCircle draws a circle outline centered at (cx, cy) with radius r, all
// in sub-pixels.
func (c *Canvas) DrawCircle(cx, cy, r int) {
	if r <= 0 {
		c.Set(cx, cy)
		return
	}
	steps := 8 * r
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		c.Set(cx+int(math.Round(float64(r)*math.Cos(theta))),
			cy+int(math.Round(float64(r)*math.Sin(theta))))
	}
}

// FillCircle draws a filled disc.
func (c *Canvas) FillCircle(cx, cy, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.Set(cx+dx, cy+dy)
			}
		}
	}
}

// DrawArrow draws a shaft from (x0, y0) to (x1, y1) with a two-line head at
// the tip.
func (c *Canvas) DrawArrow(x0, y0, x1, y1 int) {
	c.DrawLine(x0, y0, x1, y1)

	theta := math.Atan2(float64(y1-y0), float64(x1-x0))
	const headLen = 5.0
	const headAngle = 2.6 // radians back from the shaft direction
	for _, a := range []float64{theta + headAngle, theta - headAngle} {
		hx := x1 + int(math.Round(headLen*math.Cos(a)))
		hy := y1 + int(math.Round(headLen*math.Sin(a)))
		c.DrawLine(x1, y1, hx, hy)
	}
}

// AddLabel attaches text at a cell position; it is overlaid when the canvas
// is rendered.
func (c *Canvas) AddLabel(col, row int, text string) {
	c.labels = append(c.labels, Label{Col: col, Row: row, Text: text})
}

// Rows returns the rendered cell rows with labels overlaid.
func (c *Canvas) Rows() []string {
	rows := make([]string, c.Height)
	for i, gridRow := range c.grid {
		row := make([]rune, c.Width)
		copy(row, gridRow)
		for _, l := range c.labels {
			if l.Row != i {
				continue
			}
			for j, r := range l.Text {
				if l.Col+j >= 0 && l.Col+j < c.Width {
					row[l.Col+j] = r
				}
			}
		}
		rows[i] = string(row)
	}
	return rows
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Rows() {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
