package insights

import (
	"sort"
	"time"

	"github.com/javiermolinar/neuromind/internal/scheduler"
	"github.com/javiermolinar/neuromind/internal/task"
	"github.com/javiermolinar/neuromind/internal/timetable"
)

// Dashboard limits.
const (
	maxPriorityTasks = 3
	maxUpcoming      = 2
)

// Dashboard is the home screen for one moment in time.
type Dashboard struct {
	Now       time.Time
	Greeting  string
	Pending   int
	Completed int
	Priority  []*task.Task       // overdue or high priority, soonest due first
	Upcoming  []*timetable.Entry // today's first commitments
	Plan      *scheduler.Plan
}

// Greeting returns a salutation for the hour of now.
func Greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h >= 5 && h <= 11:
		return "Good Morning"
	case h >= 12 && h <= 17:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}

// PriorityTasks returns up to limit pending tasks that are overdue or high
// priority, ordered by due date with undated tasks last.
func PriorityTasks(tasks []*task.Task, now time.Time, limit int) []*task.Task {
	var result []*task.Task
	for _, t := range task.Pending(tasks) {
		if t.IsOverdue(now) || t.IsHighPriority() {
			result = append(result, t)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i].Due, result[j].Due
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})

	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

// BuildDashboard assembles the dashboard from a snapshot and the plan computed for it.
func BuildDashboard(now time.Time, snap scheduler.Snapshot, plan *scheduler.Plan) *Dashboard {
	pending := len(task.Pending(snap.Tasks))

	upcoming := timetable.ForDay(snap.Entries, now.Weekday())
	if len(upcoming) > maxUpcoming {
		upcoming = upcoming[:maxUpcoming]
	}

	return &Dashboard{
		Now:       now,
		Greeting:  Greeting(now),
		Pending:   pending,
		Completed: len(snap.Tasks) - pending,
		Priority:  PriorityTasks(snap.Tasks, now, maxPriorityTasks),
		Upcoming:  upcoming,
		Plan:      plan,
	}
}
