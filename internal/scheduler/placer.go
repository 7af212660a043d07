package scheduler

import (
	"sort"

	"github.com/javiermolinar/neuromind/internal/task"
)

// Assignment pairs a proposed slot with the task placed in it.
type Assignment struct {
	Slot Slot
	Task *task.Task
}

// Schedule is the ordered list of assignments for one day, sorted by slot start.
type Schedule []Assignment

// Lookup returns the slot assigned to the task with the given ID.
func (s Schedule) Lookup(taskID int64) (Slot, bool) {
	for _, a := range s {
		if a.Task != nil && a.Task.ID == taskID {
			return a.Slot, true
		}
	}
	return Slot{}, false
}

// Tasks returns the placed tasks in slot order.
func (s Schedule) Tasks() []*task.Task {
	tasks := make([]*task.Task, len(s))
	for i, a := range s {
		tasks[i] = a.Task
	}
	return tasks
}

// Minutes returns the total planned minutes, excluding breaks.
func (s Schedule) Minutes() int {
	total := 0
	for _, a := range s {
		total += a.Slot.Minutes()
	}
	return total
}

// queued is a pending task with the minutes it will occupy.
type queued struct {
	task    *task.Task
	minutes int
}

// priorityQueue filters out completed tasks and orders the rest by priority.
// Equal priorities keep their input order.
func priorityQueue(tasks []*task.Task, minutes func(*task.Task) int) []queued {
	pending := task.Pending(tasks)
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Priority.Rank() < pending[j].Priority.Rank()
	})

	q := make([]queued, len(pending))
	for i, t := range pending {
		q[i] = queued{task: t, minutes: max(minutes(t), 1)}
	}
	return q
}

// place fills free intervals in order with tasks from the front of the queue.
//
// Within an interval the head task is placed while it fits the remaining
// capacity, and breakMinutes is consumed after every placement. A head that
// does not fit moves placement to the next interval. A head that cannot fit
// any remaining interval is dropped so it does not block the tasks behind it.
// Tasks left when the intervals run out are returned as unplaced.
func place(free []Slot, q []queued, breakMinutes int) (Schedule, []*task.Task) {
	var (
		schedule Schedule
		unplaced []*task.Task
	)

	// largest[i] is the longest free interval in free[i:].
	largest := make([]int, len(free)+1)
	for i := len(free) - 1; i >= 0; i-- {
		largest[i] = max(largest[i+1], free[i].Minutes())
	}

	for i, interval := range free {
		cursor := interval.Start
		for len(q) > 0 {
			head := q[0]
			if head.minutes <= interval.End.Sub(cursor) {
				slot := Slot{Start: cursor, End: cursor.Add(head.minutes)}
				schedule = append(schedule, Assignment{Slot: slot, Task: head.task})
				cursor = slot.End.Add(breakMinutes)
				q = q[1:]
				continue
			}
			if head.minutes > largest[i+1] {
				unplaced = append(unplaced, head.task)
				q = q[1:]
				continue
			}
			break
		}
		if len(q) == 0 {
			break
		}
	}

	for _, item := range q {
		unplaced = append(unplaced, item.task)
	}
	return schedule, unplaced
}
