package export

import (
	"fmt"
	"strings"
)

// ProbabilityBarsToSVG renders a measurement distribution as an SVG
// bar chart with basis-state labels. Probabilities map to the fixed
// range [0, 1] so charts from different runs stay comparable.
func ProbabilityBarsToSVG(probs []float64, qubits, width, height int, barColor string) string {
	if len(probs) == 0 || qubits <= 0 {
		return ""
	}

	const labelBand = 18.0
	plotHeight := float64(height) - labelBand
	slot := float64(width) / float64(len(probs))
	barWidth := slot * 0.8

	var sb strings.Builder

	// SVG header
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="%s">
`, width, height, width, height, barColor))

	for i, p := range probs {
		if p < 0 {
			p = 0
		}
		if p > 1 {
			p = 1
		}
		barHeight := p * plotHeight
		x := float64(i)*slot + slot*0.1
		y := plotHeight - barHeight
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, x, y, barWidth, barHeight))
	}
	sb.WriteString("</g>\n")

	// Basis labels along the bottom
	fontSize := labelBand * 0.6
	for i := range probs {
		cx := float64(i)*slot + slot/2
		label := fmt.Sprintf("|%0*b>", qubits, i)
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="%.1f" fill="#888888" text-anchor="middle" font-family="monospace">%s</text>
`, cx, float64(height)-4, fontSize, label))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// HistoryToSVG creates an SVG polyline from a probability trace, one
// sample per step. The vertical axis is the fixed range [0, 1].
func HistoryToSVG(history []float64, width, height int, strokeColor string) string {
	if len(history) < 2 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	stepX := float64(width) / float64(len(history)-1)
	for i, p := range history {
		if p < 0 {
			p = 0
		}
		if p > 1 {
			p = 1
		}
		x := float64(i) * stepX
		y := float64(height) - p*float64(height)

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
