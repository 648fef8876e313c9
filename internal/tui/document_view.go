package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-plot-style/internal/rcparams"
	"github.com/MKhiriev/go-plot-style/internal/style"
)

const maxValueWidth = 60

// RenderDocument renders doc as one table per key group, with color
// swatches next to color settings and under cycler colors.
func RenderDocument(title string, doc *style.Document) string {
	var b strings.Builder

	for i, group := range doc.Groups() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(namespaceRule.Render(group))
		b.WriteString("\n")
		b.WriteString(renderGroup(doc.Namespace(group)))
		b.WriteString("\n")
	}

	footer := fmt.Sprintf("%d settings", doc.Len())
	return renderPage(title, b.String(), footer)
}

func renderGroup(doc *style.Document) string {
	var cycles []string

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("KEY", "VALUE", "LINE").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return keyCellStyle
			default:
				return cellStyle
			}
		})

	for _, s := range doc.Settings() {
		value := fitText(s.Value, maxValueWidth)

		kind, _ := rcparams.KindOf(s.Key)
		switch kind {
		case rcparams.KindColor:
			if c, err := rcparams.ParseColor(s.Value); err == nil {
				value = swatch(c) + " " + value
			}
		case rcparams.KindCycler:
			if strip := cycleStrip(s.Value); strip != "" {
				cycles = append(cycles, s.Key+": "+strip)
			}
		}

		t.Row(s.Key, valueOrDash(value), lineOrDash(s.Line))
	}

	out := t.String()
	if len(cycles) > 0 {
		out += "\n" + strings.Join(cycles, "\n")
	}
	return out
}

// cycleStrip renders the colors of a cycler value, or "" when it has none
// or does not parse.
func cycleStrip(value string) string {
	cycle, err := rcparams.ParseCycler(value)
	if err != nil {
		return ""
	}
	colors, err := cycle.Colors()
	if err != nil || len(colors) == 0 {
		return ""
	}
	return swatchStrip(colors)
}

func lineOrDash(line int) string {
	if line <= 0 {
		return "-"
	}
	return strconv.Itoa(line)
}
