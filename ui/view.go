package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wtop/model"
)

func (m Model) View() string {
	if m.state.Mode == model.ModeHelp {
		return m.renderHelp()
	}

	var b strings.Builder

	title := titleStyle.Render("wtop - process monitor")
	b.WriteString(lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Render(title))
	b.WriteString("\n\n")

	filter := m.state.Filter
	if filter == "" {
		filter = "<none>"
	} else {
		filter = filterStyle.Render(filter)
	}

	header := fmt.Sprintf(
		"CPU: %s%%  |  Mem: %s MB / %s MB  |  Sort: %s  |  Filter: %s",
		FormatPercent(m.sysCPU, m.sysOK),
		FormatMB(m.memUsed), FormatMB(m.memTotal),
		m.state.Sort, filter,
	)
	b.WriteString(headerStyle.Render(header))
	if m.degraded {
		b.WriteString("  ")
		b.WriteString(degradedStyle.Render("[stale]"))
	}
	b.WriteString("\n")

	if m.state.Mode == model.ModeSearch {
		b.WriteString(m.filterInput.View())
		b.WriteString(keybindDescStyle.Render("  (Enter to apply, Esc to cancel)"))
	}
	b.WriteString("\n")

	b.WriteString(columnStyle.Render(fmt.Sprintf(
		"%-7s %-30s %10s %8s", "PID", "PROCESS", "MEM(MB)", "CPU%")))
	b.WriteString("\n")

	b.WriteString(m.renderRows())

	b.WriteString("\n")
	quickHelp := fmt.Sprintf("%s Sort | %s Filter | %s Scroll | %s Help | %s Quit",
		keybindStyle.Render("[tab]"),
		keybindStyle.Render("[/]"),
		keybindStyle.Render("[↑/↓]"),
		keybindStyle.Render("[h]"),
		keybindStyle.Render("[ctrl+c]"),
	)
	b.WriteString(keybindDescStyle.Render(quickHelp))
	b.WriteString("\n")

	return b.String()
}

// renderRows formats the visible window of the filtered, sorted list.
func (m Model) renderRows() string {
	var b strings.Builder

	start := m.state.Scroll
	end := start + m.state.PageSize
	if end > len(m.visible) {
		end = len(m.visible)
	}

	for i := start; i < end; i++ {
		p := m.visible[i]

		cpu := FormatPercent(p.CPU, p.HasTimes)
		if p.CPU > 50 {
			cpu = highCPUStyle.Render(cpu)
		} else if p.CPU > 20 {
			cpu = medCPUStyle.Render(cpu)
		}

		b.WriteString(fmt.Sprintf("%-7d %-30s %10s %8s\n",
			p.Pid,
			Truncate(p.Name, 28),
			FormatMB(p.RSS),
			cpu,
		))
	}

	if len(m.visible) > end {
		b.WriteString(keybindDescStyle.Render(
			fmt.Sprintf("... %d more (scroll with ↑/↓)", len(m.visible)-end)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderHelp() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("wtop - keyboard shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"tab", "Toggle sorting (CPU% <-> RAM)"},
		{"/", "Search filter by process name"},
		{"enter", "Apply filter"},
		{"esc", "Cancel search"},
		{"up/down", "Scroll process list"},
		{"h", "Toggle this help screen"},
		{"ctrl+c", "Quit"},
	}
	for _, kb := range bindings {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			keybindStyle.Render(lipgloss.NewStyle().Width(10).Render(kb.key)),
			keybindDescStyle.Render(kb.desc)))
	}

	b.WriteString("\n")
	b.WriteString(keybindDescStyle.Render("Press h to return to the main screen..."))

	return helpBoxStyle.Render(b.String())
}
