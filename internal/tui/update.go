package tui

import (
	"strings"

	"acstools/internal/model"
	"acstools/internal/skeleton"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// chrome is the number of rows taken by the title and the footer.
const chrome = 4

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.ListViewport.Width = msg.Width
		m.ListViewport.Height = max(msg.Height-chrome, 1)
		m.syncViewport()
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.applyFilter()
				return m, nil
			case tea.KeyEsc:
				m.clearFilter()
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.FilterActive {
				m.clearFilter()
			}
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
			}
		case "down", "j":
			if m.SelectedIdx < len(m.FilteredIndices)-1 {
				m.SelectedIdx++
			}
		case "pgup":
			m.SelectedIdx = max(m.SelectedIdx-m.ListViewport.Height, 0)
		case "pgdown":
			m.SelectedIdx = max(min(m.SelectedIdx+m.ListViewport.Height, len(m.FilteredIndices)-1), 0)
		case "home", "g":
			m.SelectedIdx = 0
		case "end", "G":
			m.SelectedIdx = max(len(m.FilteredIndices)-1, 0)
		case "+", "=":
			m.Options.MaxDepth++
			m.rerender()
		case "-":
			if m.Options.MaxDepth > 1 {
				m.Options.MaxDepth--
				m.rerender()
			}
		case "c":
			m.Options.Classify = !m.Options.Classify
			m.rerender()
		case "/":
			m.InputMode = true
			m.InputBuffer.Focus()
			m.InputBuffer.SetValue("")
			return m, textinput.Blink
		}
		m.syncViewport()
	}

	return m, cmd
}

// rerender rebuilds Lines after a depth or classify change and keeps the filter.
func (m *AppModel) rerender() {
	m.Lines = skeleton.Render(m.Root, m.Options)
	m.applyFilter()
}

func (m *AppModel) clearFilter() {
	m.InputMode = false
	m.InputBuffer.Blur()
	m.InputBuffer.SetValue("")
	m.applyFilter()
}

// applyFilter keeps the lines whose node name contains the filter text,
// case-insensitively. Connector glyphs never match.
func (m *AppModel) applyFilter() {
	term := strings.ToLower(strings.TrimSpace(m.InputBuffer.Value()))
	m.FilterActive = term != ""

	m.FilteredIndices = make([]int, 0, len(m.Lines))
	for i, line := range m.Lines {
		if !m.FilterActive || strings.Contains(strings.ToLower(nameOf(line)), term) {
			m.FilteredIndices = append(m.FilteredIndices, i)
		}
	}

	if m.SelectedIdx >= len(m.FilteredIndices) {
		m.SelectedIdx = max(len(m.FilteredIndices)-1, 0)
	}
	m.syncViewport()
}

// nameOf strips the prefix and connector from a rendered line. Prefixes are
// built from indent pieces only, so the first connector is the right one.
func nameOf(line string) string {
	cut := -1
	for _, connector := range []string{model.ConnectorMiddle, model.ConnectorLast} {
		if i := strings.Index(line, connector); i >= 0 && (cut == -1 || i < cut) {
			cut = i + len(connector)
		}
	}
	if cut == -1 {
		return line
	}
	return line[cut:]
}

// syncViewport refreshes the viewport content and scrolls the selection into view.
func (m *AppModel) syncViewport() {
	m.ListViewport.SetContent(m.listContent())
	h := m.ListViewport.Height
	if h <= 0 {
		return
	}
	switch {
	case m.SelectedIdx < m.ListViewport.YOffset:
		m.ListViewport.SetYOffset(m.SelectedIdx)
	case m.SelectedIdx >= m.ListViewport.YOffset+h:
		m.ListViewport.SetYOffset(m.SelectedIdx - h + 1)
	}
}
