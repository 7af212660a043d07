package scheduler

import (
	"fmt"

	"github.com/javiermolinar/neuromind/internal/clock"
)

// Slot is a half-open time-of-day interval [Start, End).
type Slot struct {
	Start clock.Clock
	End   clock.Clock
}

// NewSlot returns the slot [start, end).
func NewSlot(start, end clock.Clock) Slot {
	return Slot{Start: start, End: end}
}

// Minutes returns the length of the slot, or 0 if it is empty or inverted.
func (s Slot) Minutes() int {
	if !s.Start.Before(s.End) {
		return 0
	}
	return s.End.Sub(s.Start)
}

// Empty reports whether the slot has no positive duration.
func (s Slot) Empty() bool {
	return s.Minutes() == 0
}

// Overlaps reports whether two slots share any time.
// Back-to-back slots do not overlap: start1 < end2 AND end1 > start2.
func (s Slot) Overlaps(other Slot) bool {
	if s.Empty() || other.Empty() {
		return false
	}
	return s.Start < other.End && s.End > other.Start
}

// Contains reports whether other lies entirely within s.
func (s Slot) Contains(other Slot) bool {
	return other.Start >= s.Start && other.End <= s.End
}

// Clip returns the part of s that lies within bounds. The result may be empty.
func (s Slot) Clip(bounds Slot) Slot {
	return Slot{
		Start: max(s.Start, bounds.Start),
		End:   min(s.End, bounds.End),
	}
}

// Less orders slots by start, then by end.
func (s Slot) Less(other Slot) bool {
	if s.Start != other.Start {
		return s.Start < other.Start
	}
	return s.End < other.End
}

// String formats the slot as "HH:MM-HH:MM".
func (s Slot) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}
