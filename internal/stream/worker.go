package stream

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/devpopsdotin/logdeck/internal/parser"
	"github.com/devpopsdotin/logdeck/internal/queue"
	"github.com/devpopsdotin/logdeck/internal/target"
)

const (
	scannerInitial = 64 * 1024
	scannerMax     = 1024 * 1024

	lineChanSize = 64
)

// worker is one target's stream acquirer handle.
type worker struct {
	target target.Target
	cancel context.CancelFunc
	done   chan struct{}
}

// run owns one log stream end to end: open, read line by line with the
// per-read timeout, enqueue, and report the terminal state. A read timeout
// only bounds the wait for the next line; the stream stays open.
func (s *Supervisor) run(ctx context.Context, w *worker, since time.Time) {
	defer close(w.done)
	t := w.target

	var sinceTime *metav1.Time
	if !since.IsZero() {
		st := metav1.NewTime(since)
		sinceTime = &st
	}

	stream, err := s.client.StreamLogs(ctx, t.Namespace, t.Pod, t.Container, sinceTime)
	if err != nil {
		if ctx.Err() != nil {
			s.transition(t, StateAwaitingReconnect, true)
			return
		}
		slog.Error("open log stream failed", "target", t.Key(), "error", err)
		s.transition(t, StateErrored, true)
		return
	}
	defer stream.Close()
	s.transition(t, StateStreaming, false)

	lines := make(chan string, lineChanSize)
	scanErr := make(chan error, 1)
	go scanLines(ctx, stream, lines, scanErr)

	for {
		select {
		case <-ctx.Done():
			s.transition(t, StateAwaitingReconnect, true)
			return

		case line, ok := <-lines:
			if !ok {
				err := <-scanErr
				switch {
				case ctx.Err() != nil || isContextErr(err):
					s.transition(t, StateAwaitingReconnect, true)
				case err != nil:
					slog.Warn("log stream failed", "target", t.Key(), "error", err)
					s.transition(t, StateErrored, true)
				default:
					slog.Info("log stream ended", "target", t.Key())
					s.transition(t, StateAwaitingReconnect, true)
				}
				return
			}
			s.buf.Enqueue(queue.LogLine{
				Source:    t,
				Timestamp: time.Now(),
				Text:      parser.Sanitize(line),
			})

		case <-time.After(s.readTimeout):
			// No data within the read timeout; not a failure.
		}
	}
}

// scanLines reads the stream into the lines channel until EOF, error or
// cancellation, then reports the scan error and closes the channel.
func scanLines(ctx context.Context, stream io.Reader, lines chan<- string, scanErr chan<- error) {
	defer close(lines)

	scanner := bufio.NewScanner(stream)
	scanner.Buffer(make([]byte, 0, scannerInitial), scannerMax)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			scanErr <- ctx.Err()
			return
		}
	}
	err := scanner.Err()
	if errors.Is(err, io.EOF) {
		err = nil
	}
	scanErr <- err
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
