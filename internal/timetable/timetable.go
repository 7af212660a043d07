// Package timetable defines weekly recurring commitments such as classes or gym sessions.
package timetable

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/javiermolinar/neuromind/internal/clock"
)

// Validation errors.
var (
	ErrEmptyTitle     = errors.New("title cannot be empty")
	ErrInvalidWeekday = errors.New("invalid day of week")
	ErrEndBeforeStart = errors.New("end time must be after start time")
)

// ErrEntryNotFound is returned when an entry does not exist.
var ErrEntryNotFound = errors.New("timetable entry not found")

// Entry is a fixed commitment that recurs every week on the same day.
type Entry struct {
	ID      int64
	Title   string
	Weekday time.Weekday
	Start   clock.Clock
	End     clock.Clock
	Venue   string
	Details string
}

// New creates a new Entry with validation.
// weekday is a day name such as "monday" or "mon"; start and end are HH:MM.
func New(title, weekday, start, end, venue, details string) (*Entry, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	day, err := ParseWeekday(weekday)
	if err != nil {
		return nil, err
	}

	s, err := clock.Parse(start)
	if err != nil {
		return nil, fmt.Errorf("start time: %w", err)
	}
	e, err := clock.Parse(end)
	if err != nil {
		return nil, fmt.Errorf("end time: %w", err)
	}
	if !s.Before(e) {
		return nil, ErrEndBeforeStart
	}

	return &Entry{
		Title:   title,
		Weekday: day,
		Start:   s,
		End:     e,
		Venue:   strings.TrimSpace(venue),
		Details: strings.TrimSpace(details),
	}, nil
}

// Minutes returns the length of the entry, or 0 if it is malformed.
func (e *Entry) Minutes() int {
	if !e.Start.Before(e.End) {
		return 0
	}
	return e.End.Sub(e.Start)
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday parses a full or three-letter weekday name, case-insensitive.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if day, ok := weekdays[s]; ok {
		return day, nil
	}
	if len(s) == 3 {
		for name, day := range weekdays {
			if strings.HasPrefix(name, s) {
				return day, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
}

// ForDay returns the entries recurring on the given weekday, sorted by start time.
// The input slice is not modified.
func ForDay(entries []*Entry, day time.Weekday) []*Entry {
	result := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		if e != nil && e.Weekday == day {
			result = append(result, e)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Start < result[j].Start
	})
	return result
}

// Repository defines the storage interface for timetable entries.
type Repository interface {
	// CreateEntry adds a new entry and sets its ID.
	CreateEntry(ctx context.Context, entry *Entry) error

	// ListEntries returns all entries ordered by weekday and start time.
	ListEntries(ctx context.Context) ([]*Entry, error)

	// DeleteEntry removes an entry. Returns ErrEntryNotFound if it does not exist.
	DeleteEntry(ctx context.Context, id int64) error

	// DeleteAllEntries removes every entry.
	DeleteAllEntries(ctx context.Context) error
}
