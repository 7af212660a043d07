// Package task defines the core task types for neuromind.
package task

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultDurationMinutes is the estimate used when a task has none.
const DefaultDurationMinutes = 60

// Validation errors.
var (
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrInvalidPriority   = errors.New("priority must be 'high', 'medium' or 'low'")
	ErrInvalidDifficulty = errors.New("difficulty must be 'hard', 'medium' or 'easy'")
	ErrInvalidDue        = errors.New("due must be YYYY-MM-DD or YYYY-MM-DD HH:MM")
	ErrInvalidDuration   = errors.New("duration must be a positive number of minutes")
)

// Domain errors.
var (
	ErrTaskNotFound = errors.New("task not found")
)

// Priority orders tasks for scheduling. High is placed first.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the scheduling rank of the priority. Lower ranks are scheduled first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Valid returns true if the priority is a known value.
func (p Priority) Valid() bool {
	return p.Rank() < 3
}

// Difficulty describes how demanding a task is. It does not affect placement.
type Difficulty string

const (
	DifficultyHard   Difficulty = "hard"
	DifficultyMedium Difficulty = "medium"
	DifficultyEasy   Difficulty = "easy"
)

// Valid returns true if the difficulty is a known value.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyHard, DifficultyMedium, DifficultyEasy:
		return true
	default:
		return false
	}
}

// Task is a unit of pending work.
type Task struct {
	ID              int64
	Title           string
	Description     string
	Due             *time.Time // nil means no deadline
	Priority        Priority
	Difficulty      Difficulty
	Completed       bool
	DurationMinutes int
	CreatedAt       time.Time
	CompletedAt     *time.Time
}

// New creates a new Task with validation.
// priority and difficulty are case-insensitive; empty values default to medium.
// due can be empty, YYYY-MM-DD (end of that day) or YYYY-MM-DD HH:MM, in local time.
// A zero duration defaults to DefaultDurationMinutes.
func New(title, priority, difficulty, due string, durationMinutes int) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	p, err := ParsePriority(priority)
	if err != nil {
		return nil, err
	}

	d, err := ParseDifficulty(difficulty)
	if err != nil {
		return nil, err
	}

	dueAt, err := ParseDue(due)
	if err != nil {
		return nil, err
	}

	if durationMinutes < 0 {
		return nil, ErrInvalidDuration
	}
	if durationMinutes == 0 {
		durationMinutes = DefaultDurationMinutes
	}

	return &Task{
		Title:           title,
		Due:             dueAt,
		Priority:        p,
		Difficulty:      d,
		DurationMinutes: durationMinutes,
		CreatedAt:       time.Now(),
	}, nil
}

// ParsePriority parses a priority name. Empty input returns medium.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "h":
		return PriorityHigh, nil
	case "", "medium", "m":
		return PriorityMedium, nil
	case "low", "l":
		return PriorityLow, nil
	default:
		return "", ErrInvalidPriority
	}
}

// ParseDifficulty parses a difficulty name. Empty input returns medium.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hard":
		return DifficultyHard, nil
	case "", "medium":
		return DifficultyMedium, nil
	case "easy":
		return DifficultyEasy, nil
	default:
		return "", ErrInvalidDifficulty
	}
}

// ParseDue parses a due string. Empty input means no deadline.
func ParseDue(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local); err == nil {
		return &t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		endOfDay := t.Add(24*time.Hour - time.Minute)
		return &endOfDay, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidDue, s)
}

// Duration returns the task's estimate in minutes, falling back to the default.
func (t *Task) Duration() int {
	if t.DurationMinutes <= 0 {
		return DefaultDurationMinutes
	}
	return t.DurationMinutes
}

// IsOverdue returns true if the task is not completed and its due time has passed.
func (t *Task) IsOverdue(now time.Time) bool {
	return !t.Completed && t.Due != nil && t.Due.Before(now)
}

// IsHighPriority returns true if the task has high priority.
func (t *Task) IsHighPriority() bool {
	return t.Priority == PriorityHigh
}

// Pending returns the tasks that are not completed, preserving order.
func Pending(tasks []*Task) []*Task {
	result := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		if t != nil && !t.Completed {
			result = append(result, t)
		}
	}
	return result
}
