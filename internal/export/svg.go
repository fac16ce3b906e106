package export

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/golang/geo/r2"
	"github.com/san-kum/ballsim/internal/control"
	"github.com/san-kum/ballsim/internal/sim"
)

// Arrow is an aim arrow to overlay, from the pointer to the aimed ball.
type Arrow struct {
	Tail, Tip r2.Point
}

// WorldToSVG renders balls as outlines in their colors and the last tick's
// contacts as red lines on a black background, at the world's size.
func WorldToSVG(w *sim.World, thickness float64, arrow *Arrow) string {
	if w == nil {
		return ""
	}
	width, height := w.Bounds.Width, w.Bounds.Height

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#000000"/>
<g fill="none" stroke-width="%.1f">
`, width, height, width, height, thickness))

	for _, b := range w.Balls {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" stroke="%s"/>
`, b.Position.X, b.Position.Y, b.Radius, hex(b.Color)))
	}

	sb.WriteString("</g>\n")

	if len(w.Contacts) > 0 {
		sb.WriteString(`<g stroke="#e62937" stroke-width="1">` + "\n")
		for _, c := range w.Contacts {
			sb.WriteString(line(c.A, c.B))
		}
		sb.WriteString("</g>\n")
	}

	if arrow != nil {
		left, right := control.AimArrow(arrow.Tail, arrow.Tip)
		sb.WriteString(`<g stroke="#00e430" stroke-width="1">` + "\n")
		sb.WriteString(line(arrow.Tail, arrow.Tip))
		sb.WriteString(line(arrow.Tip, left))
		sb.WriteString(line(arrow.Tip, right))
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func line(a, b r2.Point) string {
	return fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, a.X, a.Y, b.X, b.Y)
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// EnergyToSVG plots kinetic energy over time as a polyline
func EnergyToSVG(samples []sim.Sample, width, height int, strokeColor string) string {
	if len(samples) < 2 {
		return ""
	}

	minX, maxX := samples[0].Time, samples[len(samples)-1].Time
	minY, maxY := samples[0].KineticEnergy, samples[0].KineticEnergy
	for _, s := range samples {
		if s.KineticEnergy < minY {
			minY = s.KineticEnergy
		}
		if s.KineticEnergy > maxY {
			maxY = s.KineticEnergy
		}
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, s := range samples {
		x := (s.Time - minX) / rangeX * float64(width)
		y := float64(height) - (s.KineticEnergy-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
