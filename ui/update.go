package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wtop/model"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.state.SetPageSize(m.pageSize())
		return m, nil

	case dataMsg:
		m.ranked = msg.data.Ranked
		m.sysCPU = msg.data.SysCPU
		m.sysOK = msg.data.SysOK
		m.memUsed = msg.data.MemUsed
		m.memTotal = msg.data.MemTotal
		m.degraded = msg.data.Degraded
		m.refresh()
		return m, nil

	case cfgMsg:
		if msg.rows >= 1 {
			m.rows = msg.rows
			m.state.SetPageSize(m.pageSize())
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	wasSearch := m.state.Mode == model.ModeSearch

	m.state.Handle(translateKey(msg))
	m.refresh()

	m.paused.Store(m.state.Mode == model.ModeHelp)

	// The state machine owns the filter text; the textinput only renders it.
	m.filterInput.SetValue(m.state.Filter)
	m.filterInput.CursorEnd()

	var cmd tea.Cmd
	if m.state.Mode == model.ModeSearch && !wasSearch {
		m.filterInput.Focus()
		cmd = textinput.Blink
	} else if m.state.Mode != model.ModeSearch && wasSearch {
		m.filterInput.Blur()
	}
	return m, cmd
}

// translateKey maps a bubbletea key press onto the view's event alphabet.
// Keys outside it come back as KeyNone, a no-op.
func translateKey(msg tea.KeyMsg) model.KeyEvent {
	switch msg.Type {
	case tea.KeyUp:
		return model.KeyEvent{Kind: model.KeyUp}
	case tea.KeyDown:
		return model.KeyEvent{Kind: model.KeyDown}
	case tea.KeyTab:
		return model.KeyEvent{Kind: model.KeyTab}
	case tea.KeyEnter:
		return model.KeyEvent{Kind: model.KeyEnter}
	case tea.KeyEsc:
		return model.KeyEvent{Kind: model.KeyEscape}
	case tea.KeyBackspace:
		return model.KeyEvent{Kind: model.KeyBackspace}
	case tea.KeySpace:
		return model.KeyEvent{Kind: model.KeyRune, Rune: ' '}
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return model.KeyEvent{Kind: model.KeyRune, Rune: msg.Runes[0]}
		}
	}
	return model.KeyEvent{}
}

// refresh recomputes the filtered, sorted view and re-clamps the scroll
// offset against it.
func (m *Model) refresh() {
	m.visible = model.Apply(m.ranked, m.state.Filter, m.state.Sort)
	m.state.SetFilteredCount(len(m.visible))
}

// pageSize is how many process rows fit in the current terminal, capped by
// the configured row count.
func (m *Model) pageSize() int {
	size := m.rows
	if m.height > 0 && m.height-chromeLines < size {
		size = m.height - chromeLines
	}
	if size < 1 {
		size = 1
	}
	return size
}
