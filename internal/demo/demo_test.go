package demo

import (
	"context"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/neuromind/internal/db"
)

func newStore(t *testing.T) *db.SQLite {
	t.Helper()
	store, err := db.New(filepath.Join(t.TempDir(), "demo.db"))
	if err != nil {
		t.Fatalf("db.New failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestTimetable_Valid(t *testing.T) {
	entries := Timetable()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	for _, e := range entries {
		if !e.Start.Before(e.End) {
			t.Errorf("%s: start %s not before end %s", e.Title, e.Start, e.End)
		}
		if e.Venue == "" {
			t.Errorf("%s: missing venue", e.Title)
		}
	}
}

func TestRandomTask_Bounds(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.Local)
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 100; i++ {
		tsk := RandomTask(rng, now)
		if tsk.DurationMinutes < 30 || tsk.DurationMinutes >= 120 {
			t.Errorf("duration %d out of range", tsk.DurationMinutes)
		}
		if !tsk.Priority.Valid() || !tsk.Difficulty.Valid() {
			t.Errorf("invalid enums: %q %q", tsk.Priority, tsk.Difficulty)
		}
		if tsk.Due == nil || tsk.Due.Before(now) || tsk.Due.After(now.AddDate(0, 0, 7)) {
			t.Errorf("due %v outside the coming week", tsk.Due)
		}
		if len(strings.Fields(tsk.Title)) != 2 {
			t.Errorf("unexpected title %q", tsk.Title)
		}
	}
}

func TestRandomTask_Deterministic(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.Local)
	a := RandomTask(rand.New(rand.NewPCG(9, 9)), now)
	b := RandomTask(rand.New(rand.NewPCG(9, 9)), now)
	if a.Title != b.Title || a.DurationMinutes != b.DurationMinutes || !a.Due.Equal(*b.Due) {
		t.Errorf("same seed produced different tasks: %+v vs %+v", a, b)
	}
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	now := time.Now()
	rng := rand.New(rand.NewPCG(3, 4))

	res, err := Seed(ctx, store, rng, now, 2)
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if res.Entries != 3 || len(res.Tasks) != 2 {
		t.Errorf("got %d entries and %d tasks, want 3 and 2", res.Entries, len(res.Tasks))
	}

	// A second run leaves the timetable alone.
	res, err = Seed(ctx, store, rng, now, 1)
	if err != nil {
		t.Fatalf("second Seed failed: %v", err)
	}
	if res.Entries != 0 {
		t.Errorf("second run inserted %d entries, want 0", res.Entries)
	}

	entries, err := store.ListEntries(ctx)
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("got %d entries, want 3", len(entries))
	}
	tasks, err := store.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 3 {
		t.Errorf("got %d tasks, want 3", len(tasks))
	}
	for _, tsk := range tasks {
		if tsk.ID == 0 {
			t.Errorf("task %q has no ID", tsk.Title)
		}
	}
}
