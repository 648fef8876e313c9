package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-plot-style/internal/app"
	"github.com/MKhiriev/go-plot-style/models"
)

// RenderReport renders a validation report for source.
func RenderReport(source string, report models.ValidationReport) string {
	var b strings.Builder

	verdict := app.MsgStyleIsValid
	if !report.Valid {
		verdict = app.MsgStyleIsInvalid
	}
	fmt.Fprintf(&b, "%s: %s (%d keys, %d applied)\n", source, verdict, report.Keys, len(report.Applied))

	for _, u := range report.Unknown {
		if u.Line > 0 {
			fmt.Fprintf(&b, "  %s:%d: unknown key %q\n", source, u.Line, u.Key)
		} else {
			fmt.Fprintf(&b, "  %s: unknown key %q\n", source, u.Key)
		}
	}
	for _, e := range report.Errors {
		fmt.Fprintf(&b, "  %s: %s\n", source, e)
	}

	return b.String()
}

// RenderStyleList renders library entries one per line.
func RenderStyleList(styles []models.StyleSummary) string {
	if len(styles) == 0 {
		return renderPage("STYLES", "", "")
	}
	var b strings.Builder
	for _, s := range styles {
		fmt.Fprintf(&b, "%-24s %s  %s\n", s.Name, fitText(s.Checksum, 12), s.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return renderPage("STYLES", b.String(), fmt.Sprintf("%d styles", len(styles)))
}
