package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"wtop/model"
)

// Data is one cycle's output from the engine: the ranked process list plus
// the global counters the header shows.
type Data struct {
	Ranked   []model.RankedProcess
	SysCPU   float64
	SysOK    bool
	MemUsed  uint64
	MemTotal uint64

	// Degraded marks a redisplay of the previous cycle after a failed
	// process-table enumeration.
	Degraded bool
}

type dataMsg struct {
	data Data
}

type cfgMsg struct {
	rows int
}

// SendData is called by the engine to push a fresh cycle into the TUI.
func SendData(p *tea.Program, d Data) {
	p.Send(dataMsg{data: d})
}

// SendConfig is called by the engine after a config reload.
func SendConfig(p *tea.Program, rows int) {
	p.Send(cfgMsg{rows: rows})
}
