package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/javiermolinar/neuromind/internal/task"
	"github.com/javiermolinar/neuromind/internal/timetable"
)

type fakeSource struct {
	mu   sync.Mutex
	snap Snapshot
	err  error
}

func (f *fakeSource) Snapshot(context.Context) (Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snap, f.err
}

func (f *fakeSource) set(snap Snapshot, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snap = snap
	f.err = err
}

type fakeWatcher struct {
	ch        chan struct{}
	cancelled chan struct{}
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{ch: make(chan struct{}, 1), cancelled: make(chan struct{})}
}

func (w *fakeWatcher) Subscribe() (<-chan struct{}, func()) {
	return w.ch, func() { close(w.cancelled) }
}

func (w *fakeWatcher) notify() {
	select {
	case w.ch <- struct{}{}:
	default:
	}
}

func receive(t *testing.T, l *Live) Result {
	t.Helper()
	select {
	case r := <-l.Results():
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for result")
		return Result{}
	}
}

func startLive(t *testing.T, source Source, watcher Watcher) (*Live, context.CancelFunc, chan error) {
	t.Helper()
	l := NewLive(workday(), source, watcher, WithNow(func() time.Time { return monday }))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()
	return l, cancel, done
}

func TestLive_InitialAndChange(t *testing.T) {
	source := &fakeSource{snap: Snapshot{Tasks: []*task.Task{newTask(1, task.PriorityHigh)}}}
	watcher := newFakeWatcher()
	l, cancel, done := startLive(t, source, watcher)
	defer cancel()

	first := receive(t, l)
	if first.Err != nil {
		t.Fatalf("unexpected error: %v", first.Err)
	}
	if got := len(first.Plan.Schedule); got != 1 {
		t.Fatalf("initial plan placed %d tasks, want 1", got)
	}
	if first.Plan.Schedule[0].Slot != slot("09:00", "10:00") {
		t.Errorf("initial slot = %s, want 09:00-10:00", first.Plan.Schedule[0].Slot)
	}

	source.set(Snapshot{
		Tasks:   []*task.Task{newTask(1, task.PriorityHigh), newTask(2, task.PriorityLow)},
		Entries: []*timetable.Entry{entry(time.Monday, "09:00", "12:00")},
	}, nil)
	watcher.notify()

	second := receive(t, l)
	if got := len(second.Plan.Schedule); got != 2 {
		t.Fatalf("recomputed plan placed %d tasks, want 2", got)
	}
	if second.Plan.Schedule[0].Slot != slot("12:00", "13:00") {
		t.Errorf("recomputed slot = %s, want 12:00-13:00", second.Plan.Schedule[0].Slot)
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop")
	}
	select {
	case <-watcher.cancelled:
	case <-time.After(2 * time.Second):
		t.Error("subscription was not cancelled")
	}
}

func TestLive_SourceError(t *testing.T) {
	source := &fakeSource{err: errors.New("disk gone")}
	l, cancel, _ := startLive(t, source, nil)
	defer cancel()

	r := receive(t, l)
	if r.Err == nil {
		t.Fatal("expected error result")
	}
	if r.Plan != nil {
		t.Errorf("expected no plan, got %+v", r.Plan)
	}

	source.set(Snapshot{}, nil)
	l.Refresh()
	r = receive(t, l)
	if r.Err != nil {
		t.Fatalf("unexpected error after recovery: %v", r.Err)
	}
	if !r.Plan.Empty() {
		t.Errorf("expected empty plan, got %v", r.Plan.Schedule)
	}
}

func TestLive_RefreshWithoutRunDoesNotBlock(t *testing.T) {
	l := NewLive(workday(), &fakeSource{}, nil)
	for i := 0; i < 10; i++ {
		l.Refresh()
	}
}
