package dig

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/devpopsdotin/logdeck/internal/k8s"
	"github.com/devpopsdotin/logdeck/internal/queue"
	"github.com/devpopsdotin/logdeck/internal/target"
)

// fetchConcurrency bounds how many historical fetches run at once.
const fetchConcurrency = 8

// Snapshot is one digger fetch: the last N lines of every target at the
// moment of activation, plus the targets whose fetch failed. Ephemeral;
// re-entering digger mode replaces it wholesale.
type Snapshot struct {
	Lines []queue.LogLine
	Errs  map[string]error
}

// Digger performs the bounded historical fetch behind digger mode.
// It reuses the shared buffer so the flow controller displays dug lines
// through the same drain path as live ones. It never touches the live
// stream workers: digging is additive.
type Digger struct {
	client    k8s.Client
	buf       *queue.Buffer
	tailLines int64
}

// NewDigger creates a digger fetching the last tailLines lines per target.
func NewDigger(client k8s.Client, buf *queue.Buffer, tailLines int64) *Digger {
	return &Digger{client: client, buf: buf, tailLines: tailLines}
}

// Fetch retrieves the last N lines for every target concurrently, enqueues
// them tagged with their target, and returns the snapshot. A failed target
// lands in Snapshot.Errs without aborting the others. Lines keep their
// per-target chronological order; no filtering happens here, the filter
// is applied at drain time like everywhere else.
func (d *Digger) Fetch(ctx context.Context, targets []target.Target) (*Snapshot, error) {
	snap := &Snapshot{Errs: make(map[string]error)}
	results := make([][]string, len(targets))

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(fetchConcurrency)

	for i, t := range targets {
		g.Go(func() error {
			lines, err := d.client.FetchLogs(ctx, t.Namespace, t.Pod, t.Container, d.tailLines)
			if err != nil {
				slog.Warn("digger fetch failed", "target", t.Key(), "error", err)
				mu.Lock()
				snap.Errs[t.Key()] = err
				mu.Unlock()
				return nil
			}
			results[i] = lines
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := time.Now()
	for i, t := range targets {
		for _, text := range results[i] {
			line := queue.LogLine{Source: t, Timestamp: now, Text: text}
			snap.Lines = append(snap.Lines, line)
			d.buf.Enqueue(line)
		}
	}

	slog.Info("digger fetch complete", "targets", len(targets), "lines", len(snap.Lines), "failures", len(snap.Errs))
	return snap, nil
}
