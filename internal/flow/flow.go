package flow

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/devpopsdotin/logdeck/internal/queue"
)

// DefaultBatchSize bounds how many lines one tick may hand to the sink.
const DefaultBatchSize = 256

// Sink receives each tick's surviving lines in drained order.
type Sink func(lines []queue.LogLine)

// Controller decouples log arrival rate from display rate. It drains the
// shared buffer on a fixed ticker and applies the current filter keyword
// before emitting, so producer bursts can only ever fill the bounded
// buffer, never flood the display. The ticker never wakes on enqueue.
type Controller struct {
	buf       *queue.Buffer
	interval  time.Duration
	batchSize int
	sink      Sink

	mu      sync.RWMutex
	keyword string
}

// NewController creates a controller draining buf every interval into sink.
func NewController(buf *queue.Buffer, interval time.Duration, sink Sink) *Controller {
	return &Controller{
		buf:       buf,
		interval:  interval,
		batchSize: DefaultBatchSize,
		sink:      sink,
	}
}

// SetFilter replaces the filter keyword. Safe to call while Run is active;
// the next tick picks it up.
func (c *Controller) SetFilter(keyword string) {
	c.mu.Lock()
	c.keyword = keyword
	c.mu.Unlock()
}

// Filter returns the active filter keyword.
func (c *Controller) Filter() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.keyword
}

// Run drains the buffer until the context is cancelled.
func (c *Controller) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.tick()
		}
	}
}

func (c *Controller) tick() {
	batch := c.buf.DrainBatch(c.batchSize)
	if len(batch) == 0 {
		return
	}
	if out := Apply(batch, c.Filter()); len(out) > 0 {
		c.sink(out)
	}
}

// Apply returns the lines whose text contains keyword, preserving order.
// Matching is case-sensitive and literal; an empty keyword passes all
// lines unchanged. Pure: applying it twice yields the same subset.
func Apply(lines []queue.LogLine, keyword string) []queue.LogLine {
	if keyword == "" {
		return lines
	}
	out := make([]queue.LogLine, 0, len(lines))
	for _, line := range lines {
		if strings.Contains(line.Text, keyword) {
			out = append(out, line)
		}
	}
	return out
}
