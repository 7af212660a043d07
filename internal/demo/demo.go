// Package demo generates sample timetable entries and tasks.
package demo

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/javiermolinar/neuromind/internal/clock"
	"github.com/javiermolinar/neuromind/internal/task"
	"github.com/javiermolinar/neuromind/internal/timetable"
)

var (
	subjects = []string{"Math", "Physics", "History", "Coding", "Biology", "Art", "Economics"}
	kinds    = []string{"Assignment", "Exam", "Reading", "Project", "Essay"}

	priorities   = []task.Priority{task.PriorityHigh, task.PriorityMedium, task.PriorityLow}
	difficulties = []task.Difficulty{task.DifficultyHard, task.DifficultyMedium, task.DifficultyEasy}
)

// Store is the storage needed to seed demo data.
type Store interface {
	task.Repository
	timetable.Repository
}

// Timetable returns the base weekly timetable.
func Timetable() []*timetable.Entry {
	return []*timetable.Entry{
		{
			Title:   "Mobile App Dev",
			Weekday: time.Monday,
			Start:   clock.New(9, 0),
			End:     clock.New(11, 0),
			Venue:   "Lab 3",
			Details: "Jetpack Compose",
		},
		{
			Title:   "Gym",
			Weekday: time.Tuesday,
			Start:   clock.New(17, 0),
			End:     clock.New(18, 30),
			Venue:   "Campus Gym",
			Details: "Cardio",
		},
		{
			Title:   "Database Systems",
			Weekday: time.Wednesday,
			Start:   clock.New(10, 0),
			End:     clock.New(12, 0),
			Venue:   "Room 404",
			Details: "SQL",
		},
	}
}

// RandomTask returns a study task due within the next week, with a random
// priority, difficulty and a 30 to 119 minute estimate.
func RandomTask(rng *rand.Rand, now time.Time) *task.Task {
	subject := subjects[rng.IntN(len(subjects))]
	kind := kinds[rng.IntN(len(kinds))]
	due := now.AddDate(0, 0, rng.IntN(8))

	return &task.Task{
		Title:           subject + " " + kind,
		Description:     fmt.Sprintf("Prepare for the upcoming %s session. Review chapter %d.", subject, 1+rng.IntN(9)),
		Due:             &due,
		Priority:        priorities[rng.IntN(len(priorities))],
		Difficulty:      difficulties[rng.IntN(len(difficulties))],
		DurationMinutes: 30 + rng.IntN(90),
		CreatedAt:       now,
	}
}

// Result reports what Seed inserted.
type Result struct {
	Entries int
	Tasks   []*task.Task
}

// Seed inserts the base timetable when the store has no entries yet, then
// adds count random tasks.
func Seed(ctx context.Context, store Store, rng *rand.Rand, now time.Time, count int) (Result, error) {
	var res Result

	existing, err := store.ListEntries(ctx)
	if err != nil {
		return res, fmt.Errorf("listing timetable: %w", err)
	}
	if len(existing) == 0 {
		for _, e := range Timetable() {
			if err := store.CreateEntry(ctx, e); err != nil {
				return res, fmt.Errorf("creating entry %q: %w", e.Title, err)
			}
			res.Entries++
		}
	}

	for range count {
		t := RandomTask(rng, now)
		if err := store.CreateTask(ctx, t); err != nil {
			return res, fmt.Errorf("creating task %q: %w", t.Title, err)
		}
		res.Tasks = append(res.Tasks, t)
	}
	return res, nil
}
