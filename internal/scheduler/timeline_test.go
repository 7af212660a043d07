package scheduler

import (
	"testing"
	"time"

	"github.com/javiermolinar/neuromind/internal/task"
	"github.com/javiermolinar/neuromind/internal/timetable"
)

func TestTimeline_MergesByStart(t *testing.T) {
	opts := DefaultOptions()
	opts.BreakMinutes = 0
	s := New(opts)
	standup := entry(time.Monday, "09:00", "10:00")
	standup.Title = "Standup"
	standup.Venue = "Room 1"
	lunch := entry(time.Monday, "11:00", "12:00")
	lunch.Title = "Lunch"

	tasks := []*task.Task{newTask(1, task.PriorityHigh), newTask(2, task.PriorityLow)}
	plan := s.Plan(tasks, []*timetable.Entry{lunch, standup}, monday)

	items := plan.Timeline()
	want := []string{"Standup", "task 1", "Lunch", "task 2"}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d", len(items), len(want))
	}
	for i, title := range want {
		if items[i].Title() != title {
			t.Errorf("item %d = %q, want %q", i, items[i].Title(), title)
		}
	}
	if !items[0].IsCommitment() || items[1].IsCommitment() {
		t.Error("commitment flags are wrong")
	}
	if items[3].Slot != slot("12:00", "13:00") {
		t.Errorf("task 2 slot = %s, want 12:00-13:00", items[3].Slot)
	}
}

func TestTimeline_Nil(t *testing.T) {
	var p *Plan
	if p.Timeline() != nil {
		t.Error("nil plan should have no timeline")
	}
	if p.Text() != "" {
		t.Error("nil plan should render empty text")
	}
}

func TestText(t *testing.T) {
	s := workday()
	gym := entry(time.Monday, "09:00", "16:30")
	gym.Title = "Gym"
	gym.Venue = "Campus Gym"

	tasks := []*task.Task{newTask(1, task.PriorityHigh)}
	got := s.Plan(tasks, []*timetable.Entry{gym}, monday).Text()
	want := "Plan for Mon Jan 6 (09:00-17:00)\n" +
		"09:00-16:30  Gym @ Campus Gym\n" +
		"Unplaced: task 1\n"
	if got != want {
		t.Errorf("Text() =\n%s\nwant\n%s", got, want)
	}
}

func TestText_Empty(t *testing.T) {
	got := workday().Plan(nil, nil, monday).Text()
	want := "Plan for Mon Jan 6 (09:00-17:00)\nNothing scheduled\n"
	if got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}
