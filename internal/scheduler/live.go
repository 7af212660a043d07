package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/javiermolinar/neuromind/internal/task"
	"github.com/javiermolinar/neuromind/internal/timetable"
)

// Snapshot is a read-only copy of the inputs to a scheduling run.
type Snapshot struct {
	Tasks   []*task.Task
	Entries []*timetable.Entry
}

// Source loads the current inputs.
type Source interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}

// Watcher delivers a signal whenever the underlying data changes.
// The returned function cancels the subscription.
type Watcher interface {
	Subscribe() (<-chan struct{}, func())
}

// Result is one recomputation delivered by Live.
type Result struct {
	Snapshot Snapshot
	Plan     *Plan
	Err      error
	At       time.Time
}

// Live recomputes the plan on a background goroutine whenever its inputs
// change and keeps only the newest result for the consumer.
type Live struct {
	scheduler *Scheduler
	source    Source
	watcher   Watcher
	logger    *slog.Logger
	now       func() time.Time

	refresh chan struct{}
	out     *Latest[Result]
}

// LiveOption configures optional Live behavior.
type LiveOption func(*Live)

// WithLogger sets the logger used for recomputation events.
func WithLogger(logger *slog.Logger) LiveOption {
	return func(l *Live) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithNow overrides the clock used to pick the day to plan.
func WithNow(now func() time.Time) LiveOption {
	return func(l *Live) {
		if now != nil {
			l.now = now
		}
	}
}

// NewLive creates a Live recomputer. watcher may be nil, in which case only
// the initial run and explicit Refresh calls trigger a recomputation.
func NewLive(s *Scheduler, source Source, watcher Watcher, opts ...LiveOption) *Live {
	l := &Live{
		scheduler: s,
		source:    source,
		watcher:   watcher,
		logger:    slog.New(slog.DiscardHandler),
		now:       time.Now,
		refresh:   make(chan struct{}, 1),
		out:       NewLatest[Result](),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Results returns the channel carrying the newest recomputation.
func (l *Live) Results() <-chan Result {
	return l.out.C()
}

// Refresh requests a recomputation. Requests made while one is pending are merged.
func (l *Live) Refresh() {
	select {
	case l.refresh <- struct{}{}:
	default:
	}
}

// Run computes an initial plan and then recomputes on every change signal
// until ctx is cancelled. It returns ctx.Err().
func (l *Live) Run(ctx context.Context) error {
	var changes <-chan struct{}
	if l.watcher != nil {
		ch, cancel := l.watcher.Subscribe()
		defer cancel()
		changes = ch
	}

	l.Refresh()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			l.logger.Debug("store changed")
			l.recompute(ctx)
		case <-l.refresh:
			l.recompute(ctx)
		}
	}
}

func (l *Live) recompute(ctx context.Context) {
	now := l.now()
	snap, err := l.source.Snapshot(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		l.logger.Error("loading snapshot", "error", err)
		l.out.Publish(Result{Err: fmt.Errorf("loading snapshot: %w", err), At: now})
		return
	}

	plan := l.scheduler.Plan(snap.Tasks, snap.Entries, now)
	l.logger.Debug("plan recomputed",
		"date", now.Format("2006-01-02"),
		"tasks", len(snap.Tasks),
		"entries", len(snap.Entries),
		"placed", len(plan.Schedule),
		"unplaced", len(plan.Unplaced),
	)
	l.out.Publish(Result{Snapshot: snap, Plan: plan, At: now})
}
