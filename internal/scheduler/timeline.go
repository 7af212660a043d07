package scheduler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/javiermolinar/neuromind/internal/task"
	"github.com/javiermolinar/neuromind/internal/timetable"
)

// Item is one row of a day's timeline. Exactly one of Entry and Task is set.
type Item struct {
	Slot  Slot
	Entry *timetable.Entry
	Task  *task.Task
}

// IsCommitment reports whether the item is a timetable entry.
func (it Item) IsCommitment() bool {
	return it.Entry != nil
}

// Title returns the entry or task title.
func (it Item) Title() string {
	if it.Entry != nil {
		return it.Entry.Title
	}
	if it.Task != nil {
		return it.Task.Title
	}
	return ""
}

// Timeline merges the day's commitments and placed tasks ordered by start.
// Commitments sort before tasks that start at the same time.
func (p *Plan) Timeline() []Item {
	if p == nil {
		return nil
	}
	items := make([]Item, 0, len(p.Busy)+len(p.Schedule))
	for _, e := range p.Busy {
		items = append(items, Item{Slot: NewSlot(e.Start, e.End), Entry: e})
	}
	for _, a := range p.Schedule {
		items = append(items, Item{Slot: a.Slot, Task: a.Task})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Slot.Start < items[j].Slot.Start
	})
	return items
}

// Text renders the plan as plain text suitable for copying.
func (p *Plan) Text() string {
	if p == nil {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Plan for %s (%s)\n", p.Date.Format("Mon Jan 2"), p.Window)

	items := p.Timeline()
	if len(items) == 0 {
		sb.WriteString("Nothing scheduled\n")
	}
	for _, it := range items {
		switch {
		case it.IsCommitment():
			fmt.Fprintf(&sb, "%s  %s", it.Slot, it.Entry.Title)
			if it.Entry.Venue != "" {
				fmt.Fprintf(&sb, " @ %s", it.Entry.Venue)
			}
		default:
			fmt.Fprintf(&sb, "%s  %s (%s)", it.Slot, it.Task.Title, it.Task.Priority)
		}
		sb.WriteByte('\n')
	}

	if len(p.Unplaced) > 0 {
		titles := make([]string, len(p.Unplaced))
		for i, t := range p.Unplaced {
			titles[i] = t.Title
		}
		fmt.Fprintf(&sb, "Unplaced: %s\n", strings.Join(titles, ", "))
	}
	return sb.String()
}
