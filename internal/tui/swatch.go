package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/MKhiriev/go-plot-style/internal/rcparams"
)

const swatchWidth = 2

var paper = colorful.Color{R: 1, G: 1, B: 1}

// swatch renders c as a block of background color. Translucent colors are
// shown as they would look over white paper.
func swatch(c rcparams.Color) string {
	if c.None {
		return strings.Repeat(" ", swatchWidth)
	}
	opaque := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped()
	if c.A < 1 {
		opaque = paper.BlendRgb(opaque, c.A).Clamped()
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(opaque.Hex())).
		Render(strings.Repeat(" ", swatchWidth))
}

// swatchStrip renders colors side by side followed by their hex codes.
func swatchStrip(colors []rcparams.Color) string {
	blocks := make([]string, 0, len(colors))
	names := make([]string, 0, len(colors))
	for _, c := range colors {
		blocks = append(blocks, swatch(c))
		names = append(names, c.Hex())
	}
	return strings.Join(blocks, " ") + "  " + helpStyle.Render(strings.Join(names, " "))
}
