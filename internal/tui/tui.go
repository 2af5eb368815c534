package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xab-mack/quorum/internal/model"
	"github.com/xab-mack/quorum/internal/report"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	criticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	highStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	mediumStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	disputeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("135"))
)

type row struct {
	label string
	group report.Group
}

type modelT struct {
	rows   []row
	cursor int
}

func newModel(r *report.Report) modelT {
	var rows []row
	for _, sec := range r.Sections {
		for _, g := range sec.Groups {
			rows = append(rows, row{label: string(sec.Priority), group: g})
		}
	}
	for _, g := range r.Disputes {
		rows = append(rows, row{label: "DISPUTED", group: g})
	}
	return modelT{rows: rows}
}

func (m modelT) Init() tea.Cmd { return nil }

func (m modelT) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m modelT) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Consensus groups (%d)", len(m.rows))))
	b.WriteString("\n\n")
	for i, r := range m.rows {
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		loc := r.group.Artifact
		if r.group.Line > 0 {
			loc = fmt.Sprintf("%s:%d", r.group.Artifact, r.group.Line)
		}
		if loc == "" {
			loc = r.group.Key
		}
		fmt.Fprintf(&b, "%s%s %s %s\n",
			prefix, labelStyle(r.label).Render("["+r.label+"]"), loc, r.group.Title)
	}
	if len(m.rows) > 0 {
		g := m.rows[m.cursor].group
		b.WriteString("\n")
		fmt.Fprintf(&b, "severity=%s consensus=%s sources=%s\n",
			g.Severity, g.Consensus, strings.Join(g.Sources, ","))
	}
	b.WriteString(dimStyle.Render("\nj/k move · q quit\n"))
	return b.String()
}

func labelStyle(label string) lipgloss.Style {
	switch label {
	case string(model.PriorityCritical):
		return criticalStyle
	case string(model.PriorityHigh):
		return highStyle
	case string(model.PriorityMedium):
		return mediumStyle
	case "DISPUTED":
		return disputeStyle
	}
	return dimStyle
}

// Run launches the interactive report browser.
func Run(r *report.Report) error {
	p := tea.NewProgram(newModel(r))
	_, err := p.Run()
	return err
}
