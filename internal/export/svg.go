// Package export turns a rendered canvas frame into a standalone SVG, for
// pasting a snapshot of either demonstration into worksheets.
package export

import (
	"fmt"
	"strings"

	"github.com/calistasalscpw/newtonlab/internal/render"
)

// SVG converts a canvas to SVG markup, one dot per lit sub-pixel.
func SVG(canvas *render.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a14"/>
<g fill="#8fd4ff">
`, width, height, width, height))

	dotRadius := scale * 0.4
	for y := 0; y < canvas.Height*4; y++ {
		for x := 0; x < canvas.Width*2; x++ {
			if !canvas.Lit(x, y) {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>`,
				(float64(x)+0.5)*scale, (float64(y)+0.5)*scale, dotRadius))
			sb.WriteByte('\n')
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}
