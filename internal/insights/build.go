package insights

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/javiermolinar/neuromind/internal/feedback"
	"github.com/javiermolinar/neuromind/internal/llm"
	"github.com/javiermolinar/neuromind/internal/scheduler"
	"github.com/javiermolinar/neuromind/internal/task"
)

// Advisor writes coaching text for a review.
type Advisor interface {
	Advise(ctx context.Context, r llm.Review) (string, error)
}

// BuildOptions configures the store-backed summary builder.
type BuildOptions struct {
	Now       time.Time
	Scheduler *scheduler.Scheduler
	Advisor   Advisor // nil skips the written insight
}

// Build loads tasks, commitments and feedback and summarises them.
func Build(ctx context.Context, source scheduler.Source, logs feedback.Repository, opts BuildOptions) (*Summary, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	snap, err := source.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching tasks: %w", err)
	}
	entries, err := logs.ListLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching feedback: %w", err)
	}

	summary := Summarize(now, snap.Tasks, entries)
	if opts.Advisor == nil {
		return summary, nil
	}
	if opts.Scheduler == nil {
		return nil, errors.New("scheduler is required for insight")
	}

	plan := opts.Scheduler.Plan(snap.Tasks, snap.Entries, now)
	insight, err := opts.Advisor.Advise(ctx, Review(now, summary, snap.Tasks, plan))
	if err != nil {
		return nil, fmt.Errorf("generating insight: %w", err)
	}
	summary.Insight = insight
	return summary, nil
}

// Review converts a summary and today's plan into coaching input.
func Review(now time.Time, s *Summary, tasks []*task.Task, plan *scheduler.Plan) llm.Review {
	r := llm.Review{
		Pending:  s.Pending,
		Wellness: -1,
	}
	for _, d := range s.Days {
		r.Days = append(r.Days, llm.DayCount{Day: d.Day, Completed: d.Completed})
	}
	for _, t := range task.Pending(tasks) {
		if t.IsOverdue(now) {
			r.Overdue = append(r.Overdue, t.Title)
		}
	}
	if plan != nil {
		for _, a := range plan.Schedule {
			r.PlannedToday = append(r.PlannedToday, a.Slot.String()+" "+a.Task.Title)
		}
		r.PlannedMins = plan.Schedule.Minutes()
		for _, t := range plan.Unplaced {
			r.Unplaced = append(r.Unplaced, t.Title)
		}
	}
	if s.Wellness.HasData() {
		r.Wellness = s.Wellness.Score
		r.AverageMood = s.Wellness.MoodLabel()
		r.AverageEnergy = s.Wellness.AverageEnergy
	}
	return r
}
