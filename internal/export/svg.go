package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/fieldlab/internal/charge"
	"github.com/san-kum/fieldlab/internal/field"
	"github.com/san-kum/fieldlab/internal/viz"
)

const (
	background    = "#0a0a0a"
	positiveColor = "#ff4444"
	negativeColor = "#4488ff"
	neutralColor  = "#888888"
)

// CanvasToSVG converts a Braille canvas to SVG format
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder
	writeHeader(&sb, width, height)
	sb.WriteString("<g fill=\"#00ff00\">\n")

	dotRadius := scale * 0.4
	for y := 0; y < canvas.Height*4; y++ {
		for x := 0; x < canvas.Width*2; x++ {
			if !canvas.Lit(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, dotRadius)
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// VectorsToSVG draws vectors as lines in display-plane coordinates. Vector
// weight becomes stroke width, with 1 used when unset.
func VectorsToSVG(vectors []field.Vector, width, height float64, strokeColor string) string {
	if len(vectors) == 0 {
		return ""
	}

	var sb strings.Builder
	writeHeader(&sb, width, height)
	fmt.Fprintf(&sb, "<g stroke=\"%s\" stroke-linecap=\"round\">\n", strokeColor)

	for _, v := range vectors {
		w := v.Weight
		if w <= 0 {
			w = 1
		}
		fmt.Fprintf(&sb, "<line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke-width=\"%.2f\"/>\n",
			v.Origin.X, v.Origin.Y, v.End.X, v.End.Y, w)
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// PolesToSVG appends pole markers to an SVG produced by VectorsToSVG.
func PolesToSVG(svg string, poles []charge.Pole) string {
	if svg == "" || len(poles) == 0 {
		return svg
	}

	var sb strings.Builder
	sb.WriteString(strings.TrimSuffix(svg, "</svg>"))
	for _, p := range poles {
		color := neutralColor
		switch p.Sign() {
		case 1:
			color = positiveColor
		case -1:
			color = negativeColor
		}
		fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"%s\"/>\n", p.X(), p.Y(), p.Radius, color)
	}
	sb.WriteString("</svg>")
	return sb.String()
}

func writeHeader(sb *strings.Builder, width, height float64) {
	fmt.Fprintf(sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background)
}
