// Package insights summarises recent progress and wellbeing.
package insights

import (
	"math"
	"time"

	"github.com/javiermolinar/neuromind/internal/dateutil"
	"github.com/javiermolinar/neuromind/internal/feedback"
	"github.com/javiermolinar/neuromind/internal/task"
)

// Defaults for the summary windows.
const (
	CompletionDays = 7
	WellnessLogs   = 14
)

// NoData is the mood label used when there are no check-ins.
const NoData = "No Data"

// DayCount is the number of tasks completed on one calendar day.
type DayCount struct {
	Day       time.Time
	Completed int
}

// Completion counts completed tasks for each of the days days ending today,
// oldest first. A task counts on the day it was completed, or on the day it
// was created when no completion time was recorded.
func Completion(tasks []*task.Task, today time.Time, days int) []DayCount {
	if days <= 0 {
		return nil
	}

	end := dateutil.TruncateToDay(today)
	start := end.AddDate(0, 0, -(days - 1))

	counts := make([]DayCount, days)
	for i := range counts {
		counts[i].Day = start.AddDate(0, 0, i)
	}

	for _, t := range tasks {
		if t == nil || !t.Completed {
			continue
		}
		when := t.CreatedAt
		if t.CompletedAt != nil {
			when = *t.CompletedAt
		}
		day := dateutil.TruncateToDay(when.In(end.Location()))
		for i := range counts {
			if counts[i].Day.Equal(day) {
				counts[i].Completed++
				break
			}
		}
	}
	return counts
}

// Wellness aggregates recent feedback logs.
type Wellness struct {
	Logs          int
	Score         float64 // 0..1
	AverageEnergy float64
	AverageMood   feedback.Mood
}

// HasData reports whether any logs contributed.
func (w Wellness) HasData() bool {
	return w.Logs > 0
}

// MoodLabel returns the average mood, or NoData.
func (w Wellness) MoodLabel() string {
	if !w.HasData() {
		return NoData
	}
	return w.AverageMood.Label()
}

// ComputeWellness scores the newest limit logs. logs must be ordered newest
// first. The score is the sum of mood score plus energy over the best
// possible sum, clamped to [0, 1].
func ComputeWellness(logs []*feedback.Log, limit int) Wellness {
	if limit > 0 && len(logs) > limit {
		logs = logs[:limit]
	}

	var n, total, energy, mood int
	for _, l := range logs {
		if l == nil {
			continue
		}
		n++
		total += l.Mood.Score() + l.Energy
		energy += l.Energy
		mood += l.Mood.Score()
	}
	if n == 0 {
		return Wellness{}
	}

	score := float64(total) / float64(n*feedback.MaxScore)
	return Wellness{
		Logs:          n,
		Score:         math.Min(math.Max(score, 0), 1),
		AverageEnergy: float64(energy) / float64(n),
		AverageMood:   nearestMood(float64(mood) / float64(n)),
	}
}

// nearestMood returns the mood whose score is closest to avg. Ties go to the
// better mood.
func nearestMood(avg float64) feedback.Mood {
	best := feedback.MoodNeutral
	bestDist := math.Inf(1)
	for _, m := range feedback.Moods() {
		if d := math.Abs(float64(m.Score()) - avg); d < bestDist {
			best, bestDist = m, d
		}
	}
	return best
}

// Summary is the insights view.
type Summary struct {
	Days      []DayCount
	Completed int // completed within Days
	Pending   int
	Wellness  Wellness
	Insight   string
}

// Summarize builds the insights view from the full task and log lists.
func Summarize(now time.Time, tasks []*task.Task, logs []*feedback.Log) *Summary {
	days := Completion(tasks, now, CompletionDays)
	completed := 0
	for _, d := range days {
		completed += d.Completed
	}
	return &Summary{
		Days:      days,
		Completed: completed,
		Pending:   len(task.Pending(tasks)),
		Wellness:  ComputeWellness(logs, WellnessLogs),
	}
}
