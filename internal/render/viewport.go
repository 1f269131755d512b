package render

import "github.com/calistasalscpw/newtonlab/internal/scenario"

// Viewport maps the fixed logical world space onto a canvas of terminal
// cells, and maps pointer cells back into world coordinates.
type Viewport struct {
	Cols, Rows int
}

func NewViewport(cols, rows int) Viewport {
	return Viewport{Cols: cols, Rows: rows}
}

func (v Viewport) scale() (sx, sy float64) {
	return float64(v.Cols*2) / scenario.WorldW, float64(v.Rows*4) / scenario.WorldH
}

// ToPixel converts world coordinates to canvas sub-pixels.
func (v Viewport) ToPixel(wx, wy float64) (x, y int) {
	sx, sy := v.scale()
	return int(wx * sx), int(wy * sy)
}

// ToCell converts world coordinates to a cell position, for labels.
func (v Viewport) ToCell(wx, wy float64) (col, row int) {
	x, y := v.ToPixel(wx, wy)
	return x / 2, y / 4
}

// CellToWorld converts a cell position (e.g. a mouse event) to the world
// coordinates of the cell center.
func (v Viewport) CellToWorld(col, row int) (wx, wy float64) {
	sx, sy := v.scale()
	return (float64(col)*2 + 1) / sx, (float64(row)*4 + 2) / sy
}

// PixelLength converts a world-space length to sub-pixels along x.
func (v Viewport) PixelLength(l float64) int {
	sx, _ := v.scale()
	return int(l * sx)
}
