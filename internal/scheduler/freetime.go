package scheduler

import (
	"sort"

	"github.com/javiermolinar/neuromind/internal/timetable"
)

// FreeTime returns the open intervals of window not covered by any entry,
// ordered by start time. The caller restricts entries to the target day.
//
// Entries are clipped to the window; entries outside it and malformed entries
// (end not after start) block nothing. Overlapping and back-to-back entries
// merge because the cursor only moves forward. The input is not modified.
func FreeTime(window Slot, entries []*timetable.Entry) []Slot {
	if window.Empty() {
		return nil
	}

	busy := make([]Slot, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		clipped := Slot{Start: e.Start, End: e.End}.Clip(window)
		if clipped.Empty() {
			continue
		}
		busy = append(busy, clipped)
	}
	sort.Slice(busy, func(i, j int) bool {
		return busy[i].Less(busy[j])
	})

	var free []Slot
	cursor := window.Start
	for _, b := range busy {
		if b.Start.After(cursor) {
			free = append(free, Slot{Start: cursor, End: b.Start})
		}
		cursor = max(cursor, b.End)
	}
	if cursor.Before(window.End) {
		free = append(free, Slot{Start: cursor, End: window.End})
	}
	return free
}

// TotalMinutes sums the length of the given slots.
func TotalMinutes(slots []Slot) int {
	total := 0
	for _, s := range slots {
		total += s.Minutes()
	}
	return total
}
