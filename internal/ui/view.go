package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/devpopsdotin/logdeck/internal/parser"
	"github.com/devpopsdotin/logdeck/internal/queue"
	"github.com/devpopsdotin/logdeck/internal/stream"
)

func (m *Model) renderViewport() {
	if !m.ready {
		return
	}
	var lines []queue.LogLine
	if m.mode == modeDig {
		lines = m.visibleDigLines()
	} else {
		lines = m.lines
	}

	keyword := m.filter.Value()
	rendered := make([]string, 0, len(lines))
	for _, l := range lines {
		rendered = append(rendered, renderLine(l, keyword, m.mode == modeDig))
	}
	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(strings.Join(rendered, "\n"))
	if m.mode == modeTail && atBottom {
		m.viewport.GotoBottom()
	}
	if m.mode == modeDig {
		m.viewport.GotoBottom()
	}
}

func renderLine(l queue.LogLine, keyword string, pretty bool) string {
	prefix := parser.FormatTargetPrefix(l.Source.Key(), l.Source.Label())
	text := l.Text
	if pretty {
		info := parser.ParseLogLine(text)
		if info.IsJSON {
			text = parser.HighlightJSON(text)
		} else {
			text = parser.ColorizeLogLevel(text)
		}
	} else {
		text = parser.ColorizeLogLevel(text)
	}
	if keyword != "" {
		text = parser.HighlightKeyword(text, keyword)
	}
	return prefix + " " + text
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.viewport.View(),
		m.statusView(),
		m.footerView(),
	)
}

func (m Model) headerView() string {
	title := styleTitle.Render("logdeck")
	scope := styleDim.Render(fmt.Sprintf(" ns=%s query=%q", m.namespace, m.podQuery))
	right := ""
	switch {
	case m.mode == modeDig:
		right = styleDigTag.Render("DIG")
	case m.digging:
		right = styleDim.Render("digging...")
	}
	left := title + scope
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) statusView() string {
	parts := make([]string, 0, len(m.statuses)+1)
	for _, st := range m.statuses {
		parts = append(parts, stateStyle(st.State).Render(fmt.Sprintf("%s:%s", st.Key, st.State)))
	}
	if m.dropped > 0 {
		parts = append(parts, styleErr.Render(fmt.Sprintf("dropped=%d", m.dropped)))
	}
	if m.reconnErr != nil {
		parts = append(parts, styleErr.Render("reconnect: "+m.reconnErr.Error()))
	}
	if m.digErr != nil {
		parts = append(parts, styleErr.Render("dig: "+m.digErr.Error()))
	}
	if m.mode == modeDig && m.snapshot != nil && len(m.snapshot.Errs) > 0 {
		parts = append(parts, styleErr.Render(fmt.Sprintf("dig failures=%d", len(m.snapshot.Errs))))
	}
	if len(parts) == 0 {
		return styleDim.Render("no targets")
	}
	line := strings.Join(parts, styleDim.Render(" | "))
	return lipgloss.NewStyle().MaxWidth(m.width).Render(line)
}

func (m Model) footerView() string {
	help := styleDim.Render("  ctrl+r reconnect · ctrl+d dig · esc back · ctrl+c quit")
	return m.filter.View() + help
}

func stateStyle(s stream.ConnState) lipgloss.Style {
	switch s {
	case stream.StateStreaming:
		return styleStreaming
	case stream.StateErrored:
		return styleErrored
	case stream.StateReconnecting:
		return styleReconnecting
	default:
		return styleAwaiting
	}
}
