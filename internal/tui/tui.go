package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/MKhiriev/go-plot-style/internal/style"
	"github.com/MKhiriev/go-plot-style/models"
)

// TUI writes rendered views to a terminal and runs the interactive
// browser when both ends are one.
type TUI struct {
	in  io.Reader
	out io.Writer
}

// Option customizes a [TUI].
type Option func(*TUI)

// WithInput sets the key input of interactive views.
func WithInput(in io.Reader) Option {
	return func(t *TUI) {
		t.in = in
	}
}

func New(out io.Writer, opts ...Option) *TUI {
	t := &TUI{out: out}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Interactive reports whether input and output are terminals.
func (t *TUI) Interactive() bool {
	return t.in != nil && isTerminal(t.in) && isTerminal(t.out)
}

func isTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Browse runs the settings browser until the user quits or ctx ends.
func (t *TUI) Browse(ctx context.Context, title string, doc *style.Document) error {
	p := tea.NewProgram(newBrowserModel(title, doc),
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

func (t *TUI) ShowDocument(title string, doc *style.Document) error {
	_, err := fmt.Fprintln(t.out, RenderDocument(title, doc))
	return err
}

func (t *TUI) ShowReport(source string, report models.ValidationReport) error {
	_, err := io.WriteString(t.out, RenderReport(source, report))
	return err
}

func (t *TUI) ShowStyles(styles []models.StyleSummary) error {
	_, err := fmt.Fprintln(t.out, RenderStyleList(styles))
	return err
}

func (t *TUI) ShowBuildInfo(info models.AppBuildInfo, server *models.VersionResponse) error {
	_, err := fmt.Fprintln(t.out, RenderBuildInfo(info, server))
	return err
}
