package db

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/javiermolinar/neuromind/internal/clock"
	"github.com/javiermolinar/neuromind/internal/feedback"
	"github.com/javiermolinar/neuromind/internal/task"
	"github.com/javiermolinar/neuromind/internal/timetable"
)

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	repo, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create test repo: %v", err)
	}

	t.Cleanup(func() {
		_ = repo.Close()
	})

	return repo
}

func mustTask(t *testing.T, title, priority, due string) *task.Task {
	t.Helper()
	tsk, err := task.New(title, priority, "medium", due, 0)
	if err != nil {
		t.Fatalf("task.New(%q) failed: %v", title, err)
	}
	return tsk
}

func TestNew_MigratesToLatest(t *testing.T) {
	repo := newTestRepo(t)

	version, err := repo.SchemaVersion(context.Background())
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if version != len(migrations) {
		t.Errorf("schema version = %d, want %d", version, len(migrations))
	}
}

func TestOpen_CreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "data", "neuromind.db")

	repo, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer func() { _ = repo.Close() }()

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestNew_ReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	repo, err := New(dbPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := repo.CreateTask(ctx, mustTask(t, "Persist me", "high", "")); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	_ = repo.Close()

	repo, err = New(dbPath)
	if err != nil {
		t.Fatalf("reopening failed: %v", err)
	}
	defer func() { _ = repo.Close() }()

	tasks, err := repo.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "Persist me" {
		t.Errorf("got %v, want the persisted task", tasks)
	}
}

func TestCreateAndGetTask(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	original := mustTask(t, "Write report", "high", "2025-01-10 14:30")
	original.Description = "Quarterly numbers"
	original.DurationMinutes = 90
	original.CreatedAt = time.Now().Truncate(time.Second)

	if err := repo.CreateTask(ctx, original); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if original.ID == 0 {
		t.Fatal("expected ID to be set after insert")
	}

	got, err := repo.GetTask(ctx, original.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}

	if got.Title != original.Title {
		t.Errorf("title = %q, want %q", got.Title, original.Title)
	}
	if got.Description != original.Description {
		t.Errorf("description = %q, want %q", got.Description, original.Description)
	}
	if got.Priority != task.PriorityHigh {
		t.Errorf("priority = %q, want high", got.Priority)
	}
	if got.Difficulty != task.DifficultyMedium {
		t.Errorf("difficulty = %q, want medium", got.Difficulty)
	}
	if got.DurationMinutes != 90 {
		t.Errorf("duration = %d, want 90", got.DurationMinutes)
	}
	if got.Due == nil || !got.Due.Equal(*original.Due) {
		t.Errorf("due = %v, want %v", got.Due, original.Due)
	}
	if !got.CreatedAt.Equal(original.CreatedAt) {
		t.Errorf("created at = %v, want %v", got.CreatedAt, original.CreatedAt)
	}
	if got.Completed || got.CompletedAt != nil {
		t.Error("new task should be pending")
	}
}

func TestGetTask_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetTask(context.Background(), 999)
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestListTasks_Ordering(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tasks := []*task.Task{
		mustTask(t, "undated", "low", ""),
		mustTask(t, "later", "low", "2025-03-01 09:00"),
		mustTask(t, "done", "high", "2025-01-01 09:00"),
		mustTask(t, "sooner", "low", "2025-02-01 09:00"),
	}
	for _, tsk := range tasks {
		if err := repo.CreateTask(ctx, tsk); err != nil {
			t.Fatalf("CreateTask failed: %v", err)
		}
	}
	if err := repo.SetCompleted(ctx, tasks[2].ID, true); err != nil {
		t.Fatalf("SetCompleted failed: %v", err)
	}

	got, err := repo.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}

	want := []string{"sooner", "later", "undated", "done"}
	if len(got) != len(want) {
		t.Fatalf("got %d tasks, want %d", len(got), len(want))
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("position %d = %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestListTasks_Empty(t *testing.T) {
	repo := newTestRepo(t)

	tasks, err := repo.ListTasks(context.Background())
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected no tasks, got %d", len(tasks))
	}
}

func TestUpdateTask(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tsk := mustTask(t, "Draft", "low", "")
	if err := repo.CreateTask(ctx, tsk); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	due, _ := task.ParseDue("2025-05-05")
	tsk.Title = "Final"
	tsk.Priority = task.PriorityHigh
	tsk.Difficulty = task.DifficultyHard
	tsk.Due = due
	tsk.DurationMinutes = 45
	if err := repo.UpdateTask(ctx, tsk); err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}

	got, err := repo.GetTask(ctx, tsk.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got.Title != "Final" || got.Priority != task.PriorityHigh || got.Difficulty != task.DifficultyHard {
		t.Errorf("fields not updated: %+v", got)
	}
	if got.DurationMinutes != 45 {
		t.Errorf("duration = %d, want 45", got.DurationMinutes)
	}
	if got.Due == nil || !got.Due.Equal(*due) {
		t.Errorf("due = %v, want %v", got.Due, due)
	}
}

func TestUpdateTask_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	tsk := mustTask(t, "Ghost", "low", "")
	tsk.ID = 42
	if err := repo.UpdateTask(context.Background(), tsk); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestSetCompleted(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tsk := mustTask(t, "Ship it", "high", "")
	if err := repo.CreateTask(ctx, tsk); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	if err := repo.SetCompleted(ctx, tsk.ID, true); err != nil {
		t.Fatalf("SetCompleted(true) failed: %v", err)
	}
	got, _ := repo.GetTask(ctx, tsk.ID)
	if !got.Completed || got.CompletedAt == nil {
		t.Fatalf("expected completed task with timestamp, got %+v", got)
	}

	if err := repo.SetCompleted(ctx, tsk.ID, false); err != nil {
		t.Fatalf("SetCompleted(false) failed: %v", err)
	}
	got, _ = repo.GetTask(ctx, tsk.ID)
	if got.Completed || got.CompletedAt != nil {
		t.Errorf("expected pending task without timestamp, got %+v", got)
	}

	if err := repo.SetCompleted(ctx, 999, true); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestDeleteTask(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tsk := mustTask(t, "Throwaway", "low", "")
	if err := repo.CreateTask(ctx, tsk); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if err := repo.DeleteTask(ctx, tsk.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	if _, err := repo.GetTask(ctx, tsk.ID); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound after delete, got %v", err)
	}
	if err := repo.DeleteTask(ctx, tsk.ID); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound on second delete, got %v", err)
	}
}

func TestTimetableEntries(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	inputs := []struct {
		title, day, start, end, venue string
	}{
		{"Database Systems", "wednesday", "10:00", "12:00", "Room 404"},
		{"Gym", "tue", "17:00", "18:30", ""},
		{"Mobile App Dev", "monday", "09:00", "11:00", "Lab 3"},
		{"Standup", "monday", "08:30", "08:45", ""},
	}
	for _, in := range inputs {
		e, err := timetable.New(in.title, in.day, in.start, in.end, in.venue, "")
		if err != nil {
			t.Fatalf("timetable.New(%q) failed: %v", in.title, err)
		}
		if err := repo.CreateEntry(ctx, e); err != nil {
			t.Fatalf("CreateEntry failed: %v", err)
		}
		if e.ID == 0 {
			t.Error("expected ID to be set after insert")
		}
	}

	entries, err := repo.ListEntries(ctx)
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}

	want := []string{"Standup", "Mobile App Dev", "Gym", "Database Systems"}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, title := range want {
		if entries[i].Title != title {
			t.Errorf("position %d = %q, want %q", i, entries[i].Title, title)
		}
	}

	gym := entries[2]
	if gym.Weekday != time.Tuesday {
		t.Errorf("gym weekday = %v, want Tuesday", gym.Weekday)
	}
	if gym.Start != clock.New(17, 0) || gym.End != clock.New(18, 30) {
		t.Errorf("gym time = %s-%s, want 17:00-18:30", gym.Start, gym.End)
	}
	if entries[1].Venue != "Lab 3" {
		t.Errorf("venue = %q, want Lab 3", entries[1].Venue)
	}

	if err := repo.DeleteEntry(ctx, gym.ID); err != nil {
		t.Fatalf("DeleteEntry failed: %v", err)
	}
	if err := repo.DeleteEntry(ctx, gym.ID); !errors.Is(err, timetable.ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
	entries, _ = repo.ListEntries(ctx)
	if len(entries) != 3 {
		t.Errorf("got %d entries after delete, want 3", len(entries))
	}
}

func TestFeedbackLogs(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2025, 1, 6, 20, 0, 0, 0, time.Local)
	for i, mood := range []string{"tired", "great", "neutral"} {
		l, err := feedback.New(mood, i+2, 1, "day "+mood)
		if err != nil {
			t.Fatalf("feedback.New failed: %v", err)
		}
		l.Date = base.AddDate(0, 0, i)
		if err := repo.CreateLog(ctx, l); err != nil {
			t.Fatalf("CreateLog failed: %v", err)
		}
	}

	logs, err := repo.ListLogs(ctx)
	if err != nil {
		t.Fatalf("ListLogs failed: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("got %d logs, want 3", len(logs))
	}
	if logs[0].Mood != feedback.MoodNeutral || logs[2].Mood != feedback.MoodTired {
		t.Errorf("logs not newest first: %s, %s, %s", logs[0].Mood, logs[1].Mood, logs[2].Mood)
	}
	if logs[1].Energy != 3 || logs[1].Comment != "day great" {
		t.Errorf("log fields = %+v", logs[1])
	}
	if !logs[0].Date.Equal(base.AddDate(0, 0, 2)) {
		t.Errorf("date = %v, want %v", logs[0].Date, base.AddDate(0, 0, 2))
	}
}

func TestSnapshotAndReset(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.CreateTask(ctx, mustTask(t, "Read", "medium", "")); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	e, _ := timetable.New("Lecture", "friday", "09:00", "10:00", "", "")
	if err := repo.CreateEntry(ctx, e); err != nil {
		t.Fatalf("CreateEntry failed: %v", err)
	}
	l, _ := feedback.New("good", 4, 0, "")
	if err := repo.CreateLog(ctx, l); err != nil {
		t.Fatalf("CreateLog failed: %v", err)
	}

	snap, err := repo.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if len(snap.Tasks) != 1 || len(snap.Entries) != 1 {
		t.Fatalf("snapshot = %d tasks, %d entries, want 1 and 1", len(snap.Tasks), len(snap.Entries))
	}

	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	snap, err = repo.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if len(snap.Tasks) != 0 || len(snap.Entries) != 0 {
		t.Errorf("snapshot after reset = %d tasks, %d entries, want none", len(snap.Tasks), len(snap.Entries))
	}

	logs, _ := repo.ListLogs(ctx)
	if len(logs) != 1 {
		t.Errorf("reset removed feedback logs: got %d, want 1", len(logs))
	}
}

func TestSubscribe(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ch, cancel := repo.Subscribe()

	// Several writes coalesce into one pending signal.
	for i := 0; i < 3; i++ {
		if err := repo.CreateTask(ctx, mustTask(t, "Ping", "low", "")); err != nil {
			t.Fatalf("CreateTask failed: %v", err)
		}
	}
	select {
	case <-ch:
	default:
		t.Fatal("expected a change signal")
	}
	select {
	case <-ch:
		t.Fatal("expected signals to coalesce")
	default:
	}

	// Failed writes do not signal.
	_ = repo.DeleteTask(ctx, 999)
	select {
	case <-ch:
		t.Fatal("unexpected signal after failed write")
	default:
	}

	cancel()
	cancel()
	if err := repo.DeleteAllTasks(ctx); err != nil {
		t.Fatalf("DeleteAllTasks failed: %v", err)
	}
	select {
	case <-ch:
		t.Fatal("unexpected signal after cancel")
	default:
	}
}
