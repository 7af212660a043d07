package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/javiermolinar/neuromind/internal/scheduler"
)

// DefaultInterval is the time between checks.
const DefaultInterval = 15 * time.Minute

// Notifier delivers a reminder to the user.
type Notifier interface {
	Notify(ctx context.Context, r Reminder) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, r Reminder) error

// Notify calls f.
func (f NotifierFunc) Notify(ctx context.Context, r Reminder) error {
	return f(ctx, r)
}

// Watcher periodically checks the store and notifies about upcoming items.
// Each reminder is delivered at most once.
type Watcher struct {
	source    scheduler.Source
	notifier  Notifier
	interval  time.Duration
	lookahead time.Duration
	logger    *slog.Logger
	now       func() time.Time

	seen map[string]time.Time
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithInterval sets the time between checks.
func WithInterval(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

// WithLookahead sets how far ahead each check looks.
func WithLookahead(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.lookahead = d
		}
	}
}

// WithLogger sets the watcher's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithNow overrides the watcher's clock.
func WithNow(now func() time.Time) Option {
	return func(w *Watcher) {
		if now != nil {
			w.now = now
		}
	}
}

// NewWatcher creates a Watcher reading from source.
func NewWatcher(source scheduler.Source, notifier Notifier, opts ...Option) *Watcher {
	w := &Watcher{
		source:    source,
		notifier:  notifier,
		interval:  DefaultInterval,
		lookahead: DefaultLookahead,
		logger:    slog.New(slog.DiscardHandler),
		now:       time.Now,
		seen:      make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run checks immediately and then on every interval until ctx is cancelled.
// Failed checks are logged and retried on the next tick. It returns ctx.Err().
func (w *Watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if _, err := w.Tick(ctx); err != nil && ctx.Err() == nil {
			w.logger.Error("reminder check failed", "error", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Tick runs a single check and returns how many reminders were delivered.
func (w *Watcher) Tick(ctx context.Context) (int, error) {
	now := w.now()
	snap, err := w.source.Snapshot(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading snapshot: %w", err)
	}

	w.forget(now)

	sent := 0
	for _, r := range Check(now, snap.Tasks, snap.Entries, w.lookahead) {
		key := r.Key()
		if _, ok := w.seen[key]; ok {
			continue
		}
		if err := w.notifier.Notify(ctx, r); err != nil {
			return sent, fmt.Errorf("delivering reminder %s: %w", key, err)
		}
		w.seen[key] = r.At
		sent++
		w.logger.Debug("reminder sent", "kind", r.Kind, "id", r.ID, "minutes_left", r.MinutesLeft)
	}
	return sent, nil
}

// forget drops reminders whose time has passed so the set does not grow.
func (w *Watcher) forget(now time.Time) {
	for key, at := range w.seen {
		if at.Before(now) {
			delete(w.seen, key)
		}
	}
}
