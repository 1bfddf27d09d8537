package stream

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/devpopsdotin/logdeck/internal/k8s"
	"github.com/devpopsdotin/logdeck/internal/queue"
	"github.com/devpopsdotin/logdeck/internal/target"
)

// Supervisor owns one stream worker per target and the per-target
// connection state machine. Workers run in parallel and never block one
// another; all of them feed the shared queue.Buffer.
//
// A failed target stays failed until Reconnect is called: reconnection is
// a user decision, never an automatic retry.
type Supervisor struct {
	client      k8s.Client
	resolver    *target.Resolver
	buf         *queue.Buffer
	readTimeout time.Duration

	mu           sync.Mutex
	ctx          context.Context
	workers      map[string]*worker
	states       map[string]ConnState
	targets      map[string]target.Target
	stoppedAt    map[string]time.Time
	reconnecting bool
}

// NewSupervisor creates a supervisor. readTimeout bounds each wait for the
// next log line; a timeout with no data is not a failure.
func NewSupervisor(client k8s.Client, resolver *target.Resolver, buf *queue.Buffer, readTimeout time.Duration) *Supervisor {
	return &Supervisor{
		client:      client,
		resolver:    resolver,
		buf:         buf,
		readTimeout: readTimeout,
		workers:     make(map[string]*worker),
		states:      make(map[string]ConnState),
		targets:     make(map[string]target.Target),
		stoppedAt:   make(map[string]time.Time),
	}
}

// Start resolves the initial target set and launches one worker per target.
// Resolution failure is the only top-level error; zero targets is valid.
func (s *Supervisor) Start(ctx context.Context) error {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()

	targets, err := s.resolver.Resolve(ctx)
	if err != nil {
		return err
	}
	slog.Info("starting stream workers", "targets", len(targets))
	for _, t := range targets {
		s.startWorker(t, StateStreaming)
	}
	return nil
}

// Reconnect re-resolves the target set and restarts workers for every
// target that is not currently streaming. Idempotent: a reconnect already
// in flight makes this a no-op, and targets mid-Reconnecting are skipped.
func (s *Supervisor) Reconnect(ctx context.Context) error {
	s.mu.Lock()
	if s.reconnecting {
		s.mu.Unlock()
		slog.Debug("reconnect already in progress")
		return nil
	}
	s.reconnecting = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.reconnecting = false
		s.mu.Unlock()
	}()

	targets, err := s.resolver.Resolve(ctx)
	if err != nil {
		slog.Error("reconnect resolution failed", "error", err)
		return err
	}

	// Forget dead targets that no longer exist in the cluster.
	current := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		current[t.Key()] = struct{}{}
	}
	s.mu.Lock()
	for key, state := range s.states {
		if _, ok := current[key]; !ok && !state.Active() {
			delete(s.states, key)
			delete(s.targets, key)
			delete(s.stoppedAt, key)
		}
	}
	s.mu.Unlock()

	restarted := 0
	for _, t := range targets {
		if s.State(t.Key()).Active() {
			continue
		}
		s.startWorker(t, StateReconnecting)
		restarted++
	}
	slog.Info("reconnect triggered", "targets", len(targets), "restarted", restarted)
	return nil
}

// Stop cancels every worker. States are left untouched so a final status
// can still be rendered.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	workers := make([]*worker, 0, len(s.workers))
	for _, w := range s.workers {
		workers = append(workers, w)
	}
	s.mu.Unlock()

	for _, w := range workers {
		w.cancel()
	}
}

// State returns the connection state for a target key.
func (s *Supervisor) State(key string) ConnState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[key]
}

// Statuses returns every known target's state, sorted by key.
func (s *Supervisor) Statuses() []TargetStatus {
	s.mu.Lock()
	out := make([]TargetStatus, 0, len(s.states))
	for key, state := range s.states {
		out = append(out, TargetStatus{Key: key, State: state})
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Targets returns the currently known targets, sorted by key.
func (s *Supervisor) Targets() []target.Target {
	s.mu.Lock()
	out := make([]target.Target, 0, len(s.targets))
	for _, t := range s.targets {
		out = append(out, t)
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// startWorker registers and launches a worker for t unless one is already
// active for the same key.
func (s *Supervisor) startWorker(t target.Target, initial ConnState) {
	s.mu.Lock()
	key := t.Key()
	if s.states[key].Active() {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(s.ctx)
	w := &worker{target: t, cancel: cancel, done: make(chan struct{})}
	s.workers[key] = w
	s.states[key] = initial
	s.targets[key] = t
	since := s.stoppedAt[key]
	s.mu.Unlock()

	slog.Debug("starting worker", "target", key, "state", initial)
	go s.run(ctx, w, since)
}

// transition records a state change for a worker's target and releases the
// worker handle when the worker is finished.
func (s *Supervisor) transition(t target.Target, state ConnState, final bool) {
	key := t.Key()
	s.mu.Lock()
	s.states[key] = state
	if final {
		delete(s.workers, key)
		s.stoppedAt[key] = time.Now()
	}
	s.mu.Unlock()
	slog.Debug("connection state changed", "target", key, "state", state)
}
