// Package notify finds tasks and commitments that are about to start and
// delivers reminders for them.
package notify

import (
	"fmt"
	"sort"
	"time"

	"github.com/javiermolinar/neuromind/internal/task"
	"github.com/javiermolinar/neuromind/internal/timetable"
)

// DefaultLookahead is how far ahead Check looks.
const DefaultLookahead = 45 * time.Minute

// Kind identifies what a reminder is about.
type Kind string

const (
	KindTaskDue    Kind = "task_due"
	KindCommitment Kind = "commitment"
)

// Reminder is a single upcoming item.
type Reminder struct {
	Kind        Kind
	ID          int64
	Title       string
	Venue       string
	At          time.Time
	MinutesLeft int
}

// Key identifies a reminder for deduplication. A task whose due date moves
// produces a new key.
func (r Reminder) Key() string {
	return fmt.Sprintf("%s:%d:%d", r.Kind, r.ID, r.At.Unix())
}

// Headline returns a short title for the reminder.
func (r Reminder) Headline() string {
	if r.Kind == KindCommitment {
		return "Upcoming: " + r.Title
	}
	return "Task Due: " + r.Title
}

// Message returns the reminder body.
func (r Reminder) Message() string {
	at := r.At.Format("15:04")
	if r.Kind == KindCommitment {
		venue := r.Venue
		if venue == "" {
			venue = "Unknown Venue"
		}
		return fmt.Sprintf("Starts at %s (in ~%d mins) @ %s", at, r.MinutesLeft, venue)
	}
	return fmt.Sprintf("Due at %s (in ~%d mins)", at, r.MinutesLeft)
}

// Check returns reminders for pending tasks due in (now, now+lookahead] and
// for today's commitments starting in (now, now+lookahead), ordered by time.
func Check(now time.Time, tasks []*task.Task, entries []*timetable.Entry, lookahead time.Duration) []Reminder {
	if lookahead <= 0 {
		lookahead = DefaultLookahead
	}
	horizon := now.Add(lookahead)

	var reminders []Reminder
	for _, t := range task.Pending(tasks) {
		if t.Due == nil || !t.Due.After(now) || t.Due.After(horizon) {
			continue
		}
		reminders = append(reminders, Reminder{
			Kind:        KindTaskDue,
			ID:          t.ID,
			Title:       t.Title,
			At:          *t.Due,
			MinutesLeft: minutesBetween(now, *t.Due),
		})
	}

	for _, e := range timetable.ForDay(entries, now.Weekday()) {
		start := e.Start.On(now)
		if !start.After(now) || !start.Before(horizon) {
			continue
		}
		reminders = append(reminders, Reminder{
			Kind:        KindCommitment,
			ID:          e.ID,
			Title:       e.Title,
			Venue:       e.Venue,
			At:          start,
			MinutesLeft: minutesBetween(now, start),
		})
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].At.Before(reminders[j].At)
	})
	return reminders
}

func minutesBetween(from, to time.Time) int {
	return int(to.Sub(from) / time.Minute)
}
