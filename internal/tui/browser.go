package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-plot-style/internal/rcparams"
	"github.com/MKhiriev/go-plot-style/internal/style"
)

const (
	allGroups = "all"

	keyColumnWidth   = 32
	valueColumnWidth = 44
	lineColumnWidth  = 6

	defaultTableHeight = 12
	detailHeight       = 7
	chromeHeight       = 8
)

// browserModel lets the user page through a document one key group at a
// time and inspect the selected setting.
type browserModel struct {
	title  string
	doc    *style.Document
	groups []string
	group  int

	settings   []style.Setting
	table      table.Model
	detail     viewport.Model
	showDetail bool
}

func newBrowserModel(title string, doc *style.Document) browserModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "KEY", Width: keyColumnWidth},
			{Title: "VALUE", Width: valueColumnWidth},
			{Title: "LINE", Width: lineColumnWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(defaultTableHeight),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = lipgloss.NewStyle().Bold(true).Reverse(true)
	t.SetStyles(styles)

	m := browserModel{
		title:  title,
		doc:    doc,
		groups: append([]string{allGroups}, doc.Groups()...),
		table:  t,
		detail: viewport.New(keyColumnWidth+valueColumnWidth+lineColumnWidth, detailHeight),
	}
	m.loadGroup()
	return m
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.right), key.Matches(msg, keys.tab):
			m.selectGroup(m.group + 1)
			return m, nil
		case key.Matches(msg, keys.left), key.Matches(msg, keys.backtab):
			m.selectGroup(m.group - 1)
			return m, nil
		case key.Matches(msg, keys.enter):
			m.showDetail = !m.showDetail
			return m, nil
		case key.Matches(msg, keys.esc):
			m.showDetail = false
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	m.refreshDetail()
	return m, cmd
}

func (m browserModel) View() string {
	var b strings.Builder
	b.WriteString(m.tabs())
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	if m.showDetail {
		b.WriteString("\n")
		b.WriteString(m.detail.View())
		b.WriteString("\n")
	}

	footer := fmt.Sprintf("%d of %d settings  ←/→ group  ↑/↓ move  enter details  q quit",
		len(m.settings), m.doc.Len())
	return renderPage(m.title, b.String(), footer)
}

func (m browserModel) tabs() string {
	parts := make([]string, len(m.groups))
	for i, g := range m.groups {
		if i == m.group {
			parts[i] = activeTabStyle.Render(g)
			continue
		}
		parts[i] = tabStyle.Render(g)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// selectGroup wraps i around the group list and reloads the table.
func (m *browserModel) selectGroup(i int) {
	n := len(m.groups)
	m.group = ((i % n) + n) % n
	m.loadGroup()
}

func (m *browserModel) loadGroup() {
	doc := m.doc
	if g := m.groups[m.group]; g != allGroups {
		doc = m.doc.Namespace(g)
	}
	m.settings = doc.Settings()

	rows := make([]table.Row, 0, len(m.settings))
	for _, s := range m.settings {
		rows = append(rows, table.Row{s.Key, fitText(s.Value, valueColumnWidth), lineOrDash(s.Line)})
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
	m.refreshDetail()
}

func (m *browserModel) resize(width, height int) {
	tableHeight := height - chromeHeight
	if m.showDetail {
		tableHeight -= detailHeight
	}
	if tableHeight < 3 {
		tableHeight = 3
	}
	m.table.SetHeight(tableHeight)
	m.detail.Width = width - 4
}

func (m *browserModel) selected() (style.Setting, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.settings) {
		return style.Setting{}, false
	}
	return m.settings[i], true
}

func (m *browserModel) refreshDetail() {
	s, ok := m.selected()
	if !ok {
		m.detail.SetContent("")
		return
	}
	m.detail.SetContent(renderSettingDetail(s))
	m.detail.GotoTop()
}

// renderSettingDetail shows how the renderer reads s.
func renderSettingDetail(s style.Setting) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", titleStyle.Render(s.Key))
	fmt.Fprintf(&b, "value: %s\n", s.Value)
	fmt.Fprintf(&b, "line:  %s\n", lineOrDash(s.Line))

	kind, known := rcparams.KindOf(s.Key)
	if !known {
		b.WriteString(helpStyle.Render("not recognized by the renderer"))
		return b.String()
	}
	fmt.Fprintf(&b, "kind:  %s\n", kind)

	if err := rcparams.DefaultParams().Set(s.Key, s.Value); err != nil {
		b.WriteString(errorStyle.Render(HumanizeError(err)))
		return b.String()
	}

	switch kind {
	case rcparams.KindColor:
		if c, err := rcparams.ParseColor(s.Value); err == nil {
			b.WriteString(swatch(c) + " " + c.Hex())
		}
	case rcparams.KindCycler:
		b.WriteString(cycleStrip(s.Value))
	}
	return strings.TrimRight(b.String(), "\n")
}
