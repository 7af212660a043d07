// Package dateutil provides date parsing helpers for the command line.
package dateutil

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidDateFormat is returned for input ParseDay does not understand.
var ErrInvalidDateFormat = errors.New("date must be YYYY-MM-DD, today, tomorrow, yesterday or a weekday name")

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDay resolves a day relative to relativeTo and returns its midnight in
// relativeTo's location. Accepted input, case-insensitive:
//   - "" or "today", "tomorrow", "yesterday"
//   - a weekday name: the next occurrence, today included
//   - "next-<weekday>": the next occurrence after today
//   - "next-week": the same weekday one week ahead
//   - an absolute date: "2025-01-15"
func ParseDay(s string, relativeTo time.Time) (time.Time, error) {
	today := TruncateToDay(relativeTo)
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "next-week":
		return today.AddDate(0, 0, 7), nil
	}

	if name, ok := strings.CutPrefix(input, "next-"); ok {
		if day, ok := weekdays[name]; ok {
			return upcoming(today, day, false), nil
		}
		return time.Time{}, ErrInvalidDateFormat
	}

	if day, ok := weekdays[input]; ok {
		return upcoming(today, day, true), nil
	}

	result, err := time.ParseInLocation("2006-01-02", input, today.Location())
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return result, nil
}

// upcoming returns the next date falling on target.
func upcoming(today time.Time, target time.Weekday, includeToday bool) time.Time {
	days := (int(target) - int(today.Weekday()) + 7) % 7
	if days == 0 && !includeToday {
		days = 7
	}
	return today.AddDate(0, 0, days)
}
