package queue

import (
	"sync"
	"time"

	"github.com/devpopsdotin/logdeck/internal/target"
)

// LogLine is one log line tagged with its source target. Never mutated
// after creation.
type LogLine struct {
	Source    target.Target
	Timestamp time.Time
	Text      string
}

// Buffer is the shared bounded queue between all stream workers and the
// single flow controller. Enqueue from a full buffer evicts the oldest
// entry, so a burst of log traffic costs completeness, never memory.
// Eviction is atomic with enqueue: the buffer is never observed over
// capacity. Safe for many concurrent producers and one consumer.
type Buffer struct {
	mu      sync.Mutex
	items   []LogLine
	start   int
	size    int
	dropped uint64
}

// NewBuffer creates a buffer with the given capacity.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = 1
	}
	return &Buffer{items: make([]LogLine, capacity)}
}

// Enqueue appends a line, evicting the oldest entry when full.
// It never blocks beyond the internal lock.
func (b *Buffer) Enqueue(line LogLine) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := (b.start + b.size) % len(b.items)
	b.items[idx] = line
	if b.size < len(b.items) {
		b.size++
		return
	}
	b.start = (b.start + 1) % len(b.items)
	b.dropped++
}

// DrainBatch removes and returns up to maxN entries in arrival order.
// maxN <= 0 drains everything currently queued.
func (b *Buffer) DrainBatch(maxN int) []LogLine {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.size
	if maxN > 0 && maxN < n {
		n = maxN
	}
	if n == 0 {
		return nil
	}

	out := make([]LogLine, n)
	for i := 0; i < n; i++ {
		idx := (b.start + i) % len(b.items)
		out[i] = b.items[idx]
		b.items[idx] = LogLine{}
	}
	b.start = (b.start + n) % len(b.items)
	b.size -= n
	return out
}

// Len returns the number of queued entries.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

// Cap returns the configured capacity.
func (b *Buffer) Cap() int {
	return len(b.items)
}

// Dropped returns the total number of entries evicted by overflow.
func (b *Buffer) Dropped() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}
