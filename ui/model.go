package ui

import (
	"sync/atomic"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wtop/model"
)

// chromeLines is how many screen lines the header, column titles and footer
// occupy around the process rows.
const chromeLines = 8

// Model holds the TUI state.
type Model struct {
	state   model.ViewState
	ranked  []model.RankedProcess
	visible []model.RankedProcess

	sysCPU   float64
	sysOK    bool
	memUsed  uint64
	memTotal uint64
	degraded bool

	width  int
	height int
	rows   int // configured row cap

	filterInput textinput.Model

	// paused tells the engine to skip sampling while help is showing.
	paused *atomic.Bool
}

func NewModel(rows int, paused *atomic.Bool) Model {
	ti := textinput.New()
	ti.Placeholder = "filter by process name..."
	ti.CharLimit = 50
	ti.Prompt = "/"

	if rows < 1 {
		rows = 15
	}

	return Model{
		state:       model.NewViewState(rows),
		rows:        rows,
		filterInput: ti,
		paused:      paused,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}
