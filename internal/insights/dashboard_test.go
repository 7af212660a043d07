package insights

import (
	"testing"
	"time"

	"github.com/javiermolinar/neuromind/internal/clock"
	"github.com/javiermolinar/neuromind/internal/scheduler"
	"github.com/javiermolinar/neuromind/internal/task"
	"github.com/javiermolinar/neuromind/internal/timetable"
)

func TestGreeting(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "Good Evening"},
		{4, "Good Evening"},
		{5, "Good Morning"},
		{11, "Good Morning"},
		{12, "Good Afternoon"},
		{17, "Good Afternoon"},
		{18, "Good Evening"},
		{23, "Good Evening"},
	}
	for _, tt := range tests {
		at := time.Date(2025, 1, 13, tt.hour, 59, 0, 0, time.Local)
		if got := Greeting(at); got != tt.want {
			t.Errorf("Greeting(%02d:59) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func withDue(title string, priority task.Priority, due *time.Time) *task.Task {
	return &task.Task{Title: title, Priority: priority, Due: due}
}

func TestPriorityTasks(t *testing.T) {
	past := now.Add(-2 * time.Hour)
	soon := now.Add(2 * time.Hour)
	later := now.AddDate(0, 0, 3)

	done := withDue("done", task.PriorityHigh, &soon)
	done.Completed = true

	tasks := []*task.Task{
		withDue("high undated", task.PriorityHigh, nil),
		withDue("low later", task.PriorityLow, &later), // neither overdue nor high
		withDue("high later", task.PriorityHigh, &later),
		withDue("low overdue", task.PriorityLow, &past),
		done,
		withDue("high soon", task.PriorityHigh, &soon),
	}

	got := PriorityTasks(tasks, now, 3)
	want := []string{"low overdue", "high soon", "high later"}
	if len(got) != len(want) {
		t.Fatalf("got %d tasks, want %d", len(got), len(want))
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("position %d = %q, want %q", i, got[i].Title, title)
		}
	}

	all := PriorityTasks(tasks, now, 10)
	if all[len(all)-1].Title != "high undated" {
		t.Errorf("undated task should be last, got %q", all[len(all)-1].Title)
	}
}

func TestBuildDashboard(t *testing.T) {
	entries := []*timetable.Entry{
		{Title: "Lab", Weekday: time.Monday, Start: clock.New(14, 0), End: clock.New(15, 0)},
		{Title: "Lecture", Weekday: time.Monday, Start: clock.New(8, 0), End: clock.New(9, 0)},
		{Title: "Seminar", Weekday: time.Monday, Start: clock.New(16, 0), End: clock.New(17, 0)},
		{Title: "Gym", Weekday: time.Tuesday, Start: clock.New(7, 0), End: clock.New(8, 0)},
	}
	doneTask := &task.Task{Title: "done", Completed: true}
	tasks := []*task.Task{{Title: "a", Priority: task.PriorityHigh}, {Title: "b"}, doneTask}

	snap := scheduler.Snapshot{Tasks: tasks, Entries: entries}
	plan := scheduler.New(scheduler.DefaultOptions()).Plan(tasks, entries, now)
	d := BuildDashboard(now, snap, plan)

	if d.Greeting != "Good Morning" {
		t.Errorf("greeting = %q", d.Greeting)
	}
	if d.Pending != 2 || d.Completed != 1 {
		t.Errorf("pending/completed = %d/%d, want 2/1", d.Pending, d.Completed)
	}
	if len(d.Upcoming) != 2 || d.Upcoming[0].Title != "Lecture" || d.Upcoming[1].Title != "Lab" {
		t.Errorf("upcoming = %v", d.Upcoming)
	}
	if len(d.Priority) != 1 || d.Priority[0].Title != "a" {
		t.Errorf("priority = %v", d.Priority)
	}
	if d.Plan != plan {
		t.Error("dashboard should carry the plan")
	}
}
