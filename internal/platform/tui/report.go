package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"maxcatch/internal/catcher"
)

// ReportKeyMap defines the key bindings for the session report screen.
type ReportKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReportKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ReportKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Quit},
	}
}

// DefaultReportKeyMap returns default key bindings.
func DefaultReportKeyMap() ReportKeyMap {
	return ReportKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "enter", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ReportModel shows the end-of-session tally table.
type ReportModel struct {
	title  string
	report catcher.Report
	table  table.Model
	help   help.Model
	keys   ReportKeyMap
	width  int
	height int
}

// NewReportModel creates the report screen for a finished session.
func NewReportModel(title string, r catcher.Report, width, height int) ReportModel {
	h := help.New()
	h.ShowAll = false

	m := ReportModel{
		title:  title,
		report: r,
		keys:   DefaultReportKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// createTable creates the tally table.
func (m *ReportModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Bonus", Width: 14},
		{Title: "Points", Width: 8},
		{Title: "Caught", Width: 8},
		{Title: "Missed", Width: 8},
	}

	rows := make([]table.Row, len(m.report.Lines))
	for i, line := range m.report.Lines {
		rows[i] = table.Row{
			line.Name,
			fmt.Sprintf("%d", line.Points),
			fmt.Sprintf("%d", line.Hit),
			fmt.Sprintf("%d", line.Miss),
		}
	}

	height := len(rows)
	if avail := m.height - 10; height > avail && avail > 1 {
		height = avail
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Update handles a key press. The second return value reports that the
// player is done with the screen.
func (m ReportModel) Update(msg tea.KeyMsg) (ReportModel, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, true
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		m.table, _ = m.table.Update(msg)
	}
	return m, false
}

// Resize adapts the screen to a new terminal size.
func (m ReportModel) Resize(width, height int) ReportModel {
	m.width = width
	m.height = height
	m.help.Width = width
	m.table = m.createTable()
	return m
}

// View renders the report screen.
func (m ReportModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText(m.title+" - RESULTS", m.width)))
	b.WriteString("\n\n")

	summary := fmt.Sprintf("Score: %d    Misses: %d/%d",
		m.report.Score, m.report.Misses, m.report.MissesAllowed)
	b.WriteString(centerText(summary, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.table.View()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// centerText centers each line of text within the given width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}
