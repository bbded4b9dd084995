package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	filterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

func (m AppModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Skeleton  depth %d  %d/%d entries", m.Options.MaxDepth, len(m.FilteredIndices), len(m.Lines))
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if len(m.FilteredIndices) == 0 {
		if m.FilterActive {
			b.WriteString(dimStyle.Render("  No entries match the filter."))
		} else {
			b.WriteString(dimStyle.Render("  Nothing to show (empty input or depth 0)."))
		}
		b.WriteString("\n")
	} else {
		b.WriteString(m.ListViewport.View())
		b.WriteString("\n")
	}

	b.WriteString(m.footer())
	return b.String()
}

func (m AppModel) footer() string {
	if m.InputMode {
		return filterStyle.Render("Filter: ") + m.InputBuffer.View()
	}
	help := "j/k move • +/- depth • c classify • / filter • q quit"
	if m.FilterActive {
		help = fmt.Sprintf("filter %q • esc clear • ", m.InputBuffer.Value()) + help
	}
	return dimStyle.Render(help)
}

// listContent renders the visible lines with the selection highlighted.
func (m AppModel) listContent() string {
	rows := make([]string, 0, len(m.FilteredIndices))
	for i, idx := range m.FilteredIndices {
		style := normalStyle
		if i == m.SelectedIdx {
			style = selectedStyle
		}
		rows = append(rows, style.Render(m.Lines[idx]))
	}
	return strings.Join(rows, "\n")
}

// Selected returns the line under the cursor, or "" when nothing is shown.
func (m AppModel) Selected() string {
	if m.SelectedIdx < 0 || m.SelectedIdx >= len(m.FilteredIndices) {
		return ""
	}
	return m.Lines[m.FilteredIndices[m.SelectedIdx]]
}
