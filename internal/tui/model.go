package tui

import (
	"acstools/internal/model"
	"acstools/internal/skeleton"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Root    *model.TreeNode
	Options skeleton.Options
	Lines   []string // Rendered tree at the current depth

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// Filter State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int // Indices into Lines that match the filter
	FilterActive    bool

	// Components
	ListViewport viewport.Model
}

// InitialModel renders root with opts and selects the first line.
func InitialModel(root *model.TreeNode, opts skeleton.Options) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Name contains..."
	ti.CharLimit = 64
	ti.Width = 24

	m := AppModel{
		Root:         root,
		Options:      opts,
		InputBuffer:  ti,
		ListViewport: viewport.New(80, 20),
	}
	m.rerender()
	return m
}

func (m AppModel) Init() tea.Cmd {
	return nil
}
