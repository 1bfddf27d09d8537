package ui

import (
	"time"

	"github.com/devpopsdotin/logdeck/internal/dig"
	"github.com/devpopsdotin/logdeck/internal/queue"
)

// Bubble Tea messages

// LinesMsg carries one flow controller tick's filtered lines.
type LinesMsg []queue.LogLine

// StatusTickMsg triggers a refresh of per-target connection states.
type StatusTickMsg time.Time

// DigResultMsg carries the result of a digger fetch.
type DigResultMsg struct {
	Snapshot *dig.Snapshot
	Err      error
}

// ReconnectDoneMsg indicates a manual reconnect attempt has finished.
type ReconnectDoneMsg struct {
	Err error
}
