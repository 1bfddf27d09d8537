package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+r":
			m.reconnErr = nil
			return m, m.reconnectCmd()
		case "ctrl+d":
			if m.mode == modeTail && !m.digging {
				m.digging = true
				m.digErr = nil
				return m, m.digCmd()
			}
			return m, nil
		case "esc":
			if m.mode == modeDig {
				m.mode = modeTail
				m.snapshot = nil
				m.digErr = nil
				m.renderViewport()
			}
			return m, nil
		case "up", "down", "pgup", "pgdown", "home", "end":
			// Scrolling belongs to the viewport; the filter input keeps
			// everything else.
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		prev := m.filter.Value()
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		cmds = append(cmds, cmd)
		if m.filter.Value() != prev {
			m.controller.SetFilter(m.filter.Value())
			if m.mode == modeDig {
				m.renderViewport()
			}
		}
		return m, tea.Batch(cmds...)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerH := 1
		statusH := 1
		footerH := 1
		vpHeight := msg.Height - headerH - statusH - footerH
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.renderViewport()

	case LinesMsg:
		if m.mode == modeTail && len(msg) > 0 {
			m.appendLines(msg)
			m.renderViewport()
		}

	case StatusTickMsg:
		m.statuses = m.supervisor.Statuses()
		m.dropped = m.buf.Dropped()
		cmds = append(cmds, statusTick())

	case DigResultMsg:
		m.digging = false
		if msg.Err != nil {
			m.digErr = msg.Err
		} else {
			m.mode = modeDig
			m.snapshot = msg.Snapshot
			m.renderViewport()
		}

	case ReconnectDoneMsg:
		m.reconnErr = msg.Err
		m.statuses = m.supervisor.Statuses()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}
