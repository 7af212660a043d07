package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/neuromind/internal/dateutil"
)

func (a *App) planCmd() *cobra.Command {
	var (
		date     string
		showFree bool
		copyPlan bool
		noColor  bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Suggest a plan for a day",
		Long: `Fit pending tasks into the free time left around the day's commitments.

Tasks are placed highest priority first, each into the earliest free
interval with room for it, followed by a short break. Tasks that fit
nowhere are listed at the end.`,
		Example: `  neuromind plan
  neuromind plan --date tomorrow --free
  neuromind plan --date fri --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			now := a.now()
			day, err := dateutil.ParseDay(date, now)
			if err != nil {
				return err
			}

			if err := a.ensureStore(); err != nil {
				return err
			}
			snap, err := a.store.Snapshot(cmd.Context())
			if err != nil {
				return fmt.Errorf("loading plan inputs: %w", err)
			}

			plan := a.scheduler().Plan(snap.Tasks, snap.Entries, day)
			a.logger.Debug("plan computed",
				"date", day.Format("2006-01-02"),
				"placed", len(plan.Schedule),
				"unplaced", len(plan.Unplaced),
				"free_minutes", plan.FreeMinutes())

			out := cmd.OutOrStdout()
			PrintPlan(out, plan, PlanOpts{
				ShowFree: showFree,
				Width:    max(20, min(50, termWidth()-30)),
			})

			if copyPlan {
				if err := clipboard.WriteAll(plan.Text()); err != nil {
					return fmt.Errorf("copying plan: %w", err)
				}
				fmt.Fprintln(out, formatMuted("Plan copied to clipboard."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "today", "Day to plan (today, tomorrow, weekday, next-<weekday> or YYYY-MM-DD)")
	cmd.Flags().BoolVar(&showFree, "free", false, "Show the free intervals")
	cmd.Flags().BoolVar(&copyPlan, "copy", false, "Copy the plan to the clipboard")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}
