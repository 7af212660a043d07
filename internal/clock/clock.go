// Package clock provides a time-of-day type measured in minutes since midnight.
package clock

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidClock is returned when a string is not a valid HH:MM time of day.
var ErrInvalidClock = errors.New("time must be in HH:MM format")

// Clock is a time of day in minutes since midnight.
// Valid values range from Midnight (00:00) to EndOfDay (24:00).
type Clock int

const (
	Midnight Clock = 0
	EndOfDay Clock = 24 * 60
)

// New returns the clock for the given hour and minute.
func New(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

// Parse parses "HH:MM" into a Clock. "24:00" is accepted as the end of day.
func Parse(s string) (Clock, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
		}
	}
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	mins := int(s[3]-'0')*10 + int(s[4]-'0')
	if mins > 59 || hours > 24 || (hours == 24 && mins != 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return New(hours, mins), nil
}

// MustParse is like Parse but panics on invalid input. Intended for tests and constants.
func MustParse(s string) Clock {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromTime returns the time of day of t, truncated to the minute.
func FromTime(t time.Time) Clock {
	return New(t.Hour(), t.Minute())
}

// On returns the instant at c on the calendar day of date, in date's location.
func (c Clock) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour(), c.Minute(), 0, 0, date.Location())
}

// Add returns c shifted by the given number of minutes. The result is not clamped.
func (c Clock) Add(minutes int) Clock {
	return c + Clock(minutes)
}

// Sub returns the number of minutes from other to c.
func (c Clock) Sub(other Clock) int {
	return int(c - other)
}

// Before reports whether c is strictly before other.
func (c Clock) Before(other Clock) bool {
	return c < other
}

// After reports whether c is strictly after other.
func (c Clock) After(other Clock) bool {
	return c > other
}

// Valid reports whether c lies within a single day.
func (c Clock) Valid() bool {
	return c >= Midnight && c <= EndOfDay
}

// Hour returns the hour component.
func (c Clock) Hour() int {
	return int(c) / 60
}

// Minute returns the minute component.
func (c Clock) Minute() int {
	return int(c) % 60
}

// String formats c as "HH:MM". Values outside the day are clamped.
func (c Clock) String() string {
	m := int(c)
	if m < 0 {
		m = 0
	}
	if m > int(EndOfDay) {
		m = int(EndOfDay)
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// MarshalText implements encoding.TextMarshaler.
func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Clock) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
