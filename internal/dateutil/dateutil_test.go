package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestTruncateToDay(t *testing.T) {
	in := time.Date(2025, 1, 15, 14, 30, 45, 123, time.UTC)
	want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	if got := TruncateToDay(in); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseDay(t *testing.T) {
	// Friday, January 10, 2025
	friday := time.Date(2025, 1, 10, 14, 30, 0, 0, time.UTC)
	day := func(d int) time.Time { return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"empty", "", day(10)},
		{"today", "today", day(10)},
		{"tomorrow", "Tomorrow", day(11)},
		{"yesterday", "yesterday", day(9)},
		{"same weekday is today", "friday", day(10)},
		{"later this week", "saturday", day(11)},
		{"wraps to next week", "monday", day(13)},
		{"next same weekday", "next-friday", day(17)},
		{"next other weekday", "next-monday", day(13)},
		{"next week", "next-week", day(17)},
		{"absolute", "2025-01-15", day(15)},
		{"absolute past", "2025-01-02", day(2)},
		{"whitespace", "  monday  ", day(13)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDay(tt.input, friday)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDay_Errors(t *testing.T) {
	friday := time.Date(2025, 1, 10, 14, 30, 0, 0, time.UTC)

	for _, input := range []string{"someday", "next-month", "01-15-2025", "2025-13-01", "next-"} {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseDay(input, friday); !errors.Is(err, ErrInvalidDateFormat) {
				t.Errorf("got error %v, want %v", err, ErrInvalidDateFormat)
			}
		})
	}
}
