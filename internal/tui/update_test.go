package tui

import (
	"testing"

	"acstools/internal/skeleton"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m AppModel, msgs ...tea.Msg) AppModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(AppModel)
		require.True(t, ok)
	}
	return m
}

func newModel() AppModel {
	root := skeleton.Build([]string{"cmd/skeleton/main.go", "internal/tui/view.go", "go.mod", "README.md"})
	return InitialModel(root, skeleton.Options{MaxDepth: 1})
}

func TestInitialModel(t *testing.T) {
	m := newModel()

	assert.Equal(t, []string{"├─ cmd", "├─ internal", "├─ README.md", "└─ go.mod"}, m.Lines)
	assert.Equal(t, []int{0, 1, 2, 3}, m.FilteredIndices)
	assert.Equal(t, "├─ cmd", m.Selected())
}

func TestUpdate_Navigation(t *testing.T) {
	m := send(t, newModel(), key("j"), key("j"))
	assert.Equal(t, "├─ README.md", m.Selected())

	m = send(t, m, key("k"))
	assert.Equal(t, "├─ internal", m.Selected())

	m = send(t, m, key("G"))
	assert.Equal(t, "└─ go.mod", m.Selected())

	m = send(t, m, key("j"))
	assert.Equal(t, "└─ go.mod", m.Selected(), "cursor stays on the last line")

	m = send(t, m, key("g"), key("k"))
	assert.Equal(t, "├─ cmd", m.Selected())
}

func TestUpdate_Depth(t *testing.T) {
	m := send(t, newModel(), key("+"))
	assert.Equal(t, 2, m.Options.MaxDepth)
	assert.Contains(t, m.Lines, "│  └─ skeleton")

	m = send(t, m, key("-"), key("-"), key("-"))
	assert.Equal(t, 1, m.Options.MaxDepth, "depth never drops below one")
	assert.Len(t, m.Lines, 4)
}

func TestUpdate_Classify(t *testing.T) {
	m := send(t, newModel(), key("c"))
	assert.Equal(t, "├─ cmd/", m.Lines[0])
}

func TestUpdate_Filter(t *testing.T) {
	m := send(t, newModel(), key("/"))
	require.True(t, m.InputMode)

	m = send(t, m, key("m"), key("d"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.InputMode)
	assert.True(t, m.FilterActive)
	assert.Equal(t, []int{0, 2}, m.FilteredIndices)
	assert.Equal(t, "├─ cmd", m.Selected())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.FilterActive)
	assert.Len(t, m.FilteredIndices, 4)
}

func TestUpdate_FilterLeavesPreviousModelIntact(t *testing.T) {
	before := newModel()
	after := send(t, before, key("/"), key("m"), key("d"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []int{0, 2}, after.FilteredIndices)
	assert.Equal(t, []int{0, 1, 2, 3}, before.FilteredIndices)
	assert.Equal(t, "├─ cmd", before.Selected())
}

func TestUpdate_FilterIgnoresConnectors(t *testing.T) {
	m := send(t, newModel(), key("/"), key("─"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.FilteredIndices)
	assert.Equal(t, "", m.Selected())
	assert.Contains(t, m.View(), "No entries match")
}

func TestUpdate_Quit(t *testing.T) {
	_, cmd := newModel().Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestNameOf(t *testing.T) {
	assert.Equal(t, "main.go", nameOf("│  │  └─ main.go"))
	assert.Equal(t, "a ├─ b", nameOf("├─ a ├─ b"))
	assert.Equal(t, "plain", nameOf("plain"))
}
