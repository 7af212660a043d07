// Package scheduler computes a suggested daily plan by fitting pending tasks
// into the free time left around the day's fixed commitments.
package scheduler

import (
	"time"

	"github.com/javiermolinar/neuromind/internal/clock"
	"github.com/javiermolinar/neuromind/internal/task"
	"github.com/javiermolinar/neuromind/internal/timetable"
)

// DurationPolicy selects how many minutes a task occupies when placed.
type DurationPolicy string

const (
	// DurationFixed places every task as a block of Options.TaskMinutes,
	// ignoring the task's own estimate.
	DurationFixed DurationPolicy = "fixed"
	// DurationEstimate places every task using its DurationMinutes estimate.
	DurationEstimate DurationPolicy = "estimate"
)

// Defaults for the active day.
const (
	DefaultBreakMinutes = 15
	DefaultTaskMinutes  = 60
)

// Options configures a Scheduler.
type Options struct {
	DayStart     clock.Clock
	DayEnd       clock.Clock
	BreakMinutes int
	TaskMinutes  int
	Policy       DurationPolicy
}

// DefaultOptions returns a 09:00-17:00 day with 60 minute blocks and 15 minute breaks.
func DefaultOptions() Options {
	return Options{
		DayStart:     clock.New(9, 0),
		DayEnd:       clock.New(17, 0),
		BreakMinutes: DefaultBreakMinutes,
		TaskMinutes:  DefaultTaskMinutes,
		Policy:       DurationFixed,
	}
}

// Scheduler computes daily plans. It holds only configuration and is safe for
// concurrent use.
type Scheduler struct {
	window       Slot
	breakMinutes int
	taskMinutes  int
	policy       DurationPolicy
}

// New creates a new Scheduler with the given options.
func New(opts Options) *Scheduler {
	if opts.TaskMinutes <= 0 {
		opts.TaskMinutes = DefaultTaskMinutes
	}
	if opts.BreakMinutes < 0 {
		opts.BreakMinutes = 0
	}
	if opts.Policy != DurationEstimate {
		opts.Policy = DurationFixed
	}
	return &Scheduler{
		window:       Slot{Start: opts.DayStart, End: opts.DayEnd},
		breakMinutes: opts.BreakMinutes,
		taskMinutes:  opts.TaskMinutes,
		policy:       opts.Policy,
	}
}

// Window returns the active day window.
func (s *Scheduler) Window() Slot {
	return s.window
}

// BreakMinutes returns the break inserted after each placed task.
func (s *Scheduler) BreakMinutes() int {
	return s.breakMinutes
}

// Policy returns the configured duration policy.
func (s *Scheduler) Policy() DurationPolicy {
	return s.policy
}

// TaskMinutes returns the minutes a task occupies under the configured policy.
func (s *Scheduler) TaskMinutes(t *task.Task) int {
	if s.policy == DurationEstimate {
		return t.Duration()
	}
	return s.taskMinutes
}

// Plan is the full result of scheduling one day.
type Plan struct {
	Date     time.Time
	Window   Slot
	Busy     []*timetable.Entry // the day's commitments, sorted by start
	Free     []Slot             // open intervals within Window
	Schedule Schedule           // placed tasks, sorted by slot start
	Unplaced []*task.Task       // pending tasks that did not fit, in priority order
}

// Empty reports whether nothing could be planned.
func (p *Plan) Empty() bool {
	return p == nil || len(p.Schedule) == 0
}

// FreeMinutes returns the total free time in the window.
func (p *Plan) FreeMinutes() int {
	return TotalMinutes(p.Free)
}

// Compute returns the suggested schedule for date.
// Completed tasks are ignored and commitments are matched on date's weekday.
func (s *Scheduler) Compute(tasks []*task.Task, entries []*timetable.Entry, date time.Time) Schedule {
	return s.Plan(tasks, entries, date).Schedule
}

// Plan computes the schedule for date along with the intermediate free time
// and the tasks that could not be placed. Inputs are never modified.
func (s *Scheduler) Plan(tasks []*task.Task, entries []*timetable.Entry, date time.Time) *Plan {
	busy := timetable.ForDay(entries, date.Weekday())
	free := FreeTime(s.window, busy)
	q := priorityQueue(tasks, s.TaskMinutes)
	schedule, unplaced := place(free, q, s.breakMinutes)

	return &Plan{
		Date:     date,
		Window:   s.window,
		Busy:     busy,
		Free:     free,
		Schedule: schedule,
		Unplaced: unplaced,
	}
}
