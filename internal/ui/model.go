package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/devpopsdotin/logdeck/internal/dig"
	"github.com/devpopsdotin/logdeck/internal/flow"
	"github.com/devpopsdotin/logdeck/internal/queue"
	"github.com/devpopsdotin/logdeck/internal/stream"
)

const (
	// maxDisplayLines bounds the in-memory scrollback kept by the viewer.
	maxDisplayLines = 2000

	statusPollInterval = 500 * time.Millisecond
)

type mode int

const (
	modeTail mode = iota
	modeDig
)

// Model is the bubbletea model driving the log viewer.
type Model struct {
	supervisor *stream.Supervisor
	controller *flow.Controller
	digger     *dig.Digger
	buf        *queue.Buffer

	namespace string
	podQuery  string

	viewport  viewport.Model
	filter    textinput.Model
	lines     []queue.LogLine
	mode      mode
	snapshot  *dig.Snapshot
	statuses  []stream.TargetStatus
	dropped   uint64
	digErr    error
	reconnErr error
	digging   bool

	width  int
	height int
	ready  bool
}

// New builds the initial model. The supervisor and controller are assumed
// to be running already; the model only reads from them and issues commands.
func New(sup *stream.Supervisor, ctrl *flow.Controller, digger *dig.Digger, buf *queue.Buffer, namespace, podQuery string) Model {
	ti := textinput.New()
	ti.Placeholder = "filter (substring)"
	ti.Prompt = "/ "
	ti.CharLimit = 256
	ti.Focus()

	return Model{
		supervisor: sup,
		controller: ctrl,
		digger:     digger,
		buf:        buf,
		namespace:  namespace,
		podQuery:   podQuery,
		filter:     ti,
		lines:      make([]queue.LogLine, 0, maxDisplayLines),
	}
}

func (m Model) Init() tea.Cmd {
	return statusTick()
}

func statusTick() tea.Cmd {
	return tea.Tick(statusPollInterval, func(t time.Time) tea.Msg {
		return StatusTickMsg(t)
	})
}

func (m *Model) appendLines(batch []queue.LogLine) {
	m.lines = append(m.lines, batch...)
	if over := len(m.lines) - maxDisplayLines; over > 0 {
		m.lines = m.lines[over:]
	}
}

func (m *Model) reconnectCmd() tea.Cmd {
	sup := m.supervisor
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return ReconnectDoneMsg{Err: sup.Reconnect(ctx)}
	}
}

func (m *Model) digCmd() tea.Cmd {
	digger := m.digger
	targets := m.supervisor.Targets()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		snap, err := digger.Fetch(ctx, targets)
		return DigResultMsg{Snapshot: snap, Err: err}
	}
}

// visibleDigLines re-applies the current filter to the dig snapshot. The
// snapshot itself is immutable; editing the filter only changes the view.
func (m *Model) visibleDigLines() []queue.LogLine {
	if m.snapshot == nil {
		return nil
	}
	keyword := m.filter.Value()
	if keyword == "" {
		return m.snapshot.Lines
	}
	out := make([]queue.LogLine, 0, len(m.snapshot.Lines))
	for _, l := range m.snapshot.Lines {
		if strings.Contains(l.Text, keyword) {
			out = append(out, l)
		}
	}
	return out
}
