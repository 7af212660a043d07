package ui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/neuromind/internal/insights"
	"github.com/javiermolinar/neuromind/internal/llm"
)

func (a *App) insightsCmd() *cobra.Command {
	var noInsight bool

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Show your week: completed tasks, wellness and coaching",
		Long: `Show tasks completed on each of the last seven days, a wellness score
from your latest check-ins and, when an LLM provider is configured, a
short coaching note.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := a.ensureStore(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			opts := insights.BuildOptions{
				Now:       a.now(),
				Scheduler: a.scheduler(),
			}
			if !noInsight {
				advisor, err := a.advisor(ctx)
				if err != nil {
					fmt.Fprintln(out, formatMuted("Coaching unavailable: "+err.Error()))
				} else {
					opts.Advisor = advisor
				}
			}

			summary, err := insights.Build(ctx, a.store, a.store, opts)
			if err != nil && opts.Advisor != nil {
				a.logger.Warn("insight failed", "error", err)
				fmt.Fprintln(out, formatMuted("Coaching unavailable: "+err.Error()))
				opts.Advisor = nil
				summary, err = insights.Build(ctx, a.store, a.store, opts)
			}
			if err != nil {
				return err
			}

			PrintSummary(out, summary, termWidth())
			return nil
		},
	}

	cmd.Flags().BoolVar(&noInsight, "no-insight", false, "Skip the LLM coaching note")
	return cmd
}

// advisor returns the configured coach, or nil when no provider is set.
func (a *App) advisor(ctx context.Context) (insights.Advisor, error) {
	client, err := llm.NewClient(ctx, a.config.LLM.Provider, a.config.LLM.Model, a.config.LLM.BaseURL)
	if errors.Is(err, llm.ErrDisabled) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return llm.NewCoach(client), nil
}

// PrintSummary prints the weekly completion chart, wellness and insight.
func PrintSummary(w io.Writer, s *insights.Summary, width int) {
	fmt.Fprintln(w, formatHeader("Completed this week"))

	most := 0
	for _, d := range s.Days {
		most = max(most, d.Completed)
	}
	for _, d := range s.Days {
		fmt.Fprintf(w, "  %s  %s %d\n", d.Day.Format("Mon 02"), formatStats(Bar(d.Completed, most, 20)), d.Completed)
	}
	fmt.Fprintf(w, "  Total: %s completed, %d pending\n",
		formatStats(fmt.Sprintf("%d", s.Completed)), s.Pending)

	fmt.Fprintln(w)
	fmt.Fprintln(w, formatHeader("Wellness"))
	fmt.Fprintf(w, "  %s\n", WellnessBar(s.Wellness, 20))
	if s.Wellness.HasData() {
		fmt.Fprintf(w, "  Mood: %s  Energy: %.1f/5  (%d check-ins)\n",
			s.Wellness.MoodLabel(), s.Wellness.AverageEnergy, s.Wellness.Logs)
	} else {
		fmt.Fprintf(w, "  Mood: %s\n", insights.NoData)
	}

	if s.Insight != "" {
		fmt.Fprintln(w)
		PrintInsightWrapped(w, s.Insight, min(width, 80))
	}
}
