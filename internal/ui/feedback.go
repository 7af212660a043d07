package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/neuromind/internal/feedback"
	"github.com/javiermolinar/neuromind/internal/insights"
)

func (a *App) feedbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Record how you feel",
	}
	cmd.AddCommand(a.feedbackLogCmd())
	cmd.AddCommand(a.feedbackListCmd())
	return cmd
}

func moodNames() string {
	names := make([]string, 0, len(feedback.Moods()))
	for _, m := range feedback.Moods() {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}

func (a *App) feedbackLogCmd() *cobra.Command {
	var (
		energy  int
		stress  int
		comment string
	)

	cmd := &cobra.Command{
		Use:   "log <mood>",
		Short: "Log today's mood and energy",
		Long: fmt.Sprintf(`Log a mood check-in. Mood is one of: %s.
Energy goes from %d to %d and stress from 0 to %d.`,
			moodNames(), feedback.MinEnergy, feedback.MaxEnergy, feedback.MaxStress),
		Example: `  neuromind feedback log good --energy 4
  neuromind feedback log tired --energy 2 --stress 3 --comment "late night"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := feedback.New(args[0], energy, stress, comment)
			if err != nil {
				return err
			}
			l.Date = a.now()

			if err := a.ensureStore(); err != nil {
				return err
			}
			if err := a.store.CreateLog(cmd.Context(), l); err != nil {
				return fmt.Errorf("saving feedback: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (energy %d/%d, stress %d/%d)\n",
				l.Mood.Label(), l.Energy, feedback.MaxEnergy, l.Stress, feedback.MaxStress)
			return nil
		},
	}

	cmd.Flags().IntVarP(&energy, "energy", "e", 3, "Energy level")
	cmd.Flags().IntVarP(&stress, "stress", "s", 0, "Stress level")
	cmd.Flags().StringVarP(&comment, "comment", "c", "", "Free text note")

	return cmd
}

func (a *App) feedbackListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show recent check-ins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			logs, err := a.store.ListLogs(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing feedback: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(logs) == 0 {
				fmt.Fprintln(out, "No feedback logged yet.")
				return nil
			}
			if limit > 0 && len(logs) > limit {
				logs = logs[:limit]
			}

			for _, l := range logs {
				fmt.Fprintf(out, "  %s  %-8s  energy %d  stress %d",
					formatMuted(l.Date.Format("Mon Jan 2 15:04")), l.Mood.Label(), l.Energy, l.Stress)
				if l.Comment != "" {
					fmt.Fprintf(out, "  %s", formatMuted(l.Comment))
				}
				fmt.Fprintln(out)
			}

			w := insights.ComputeWellness(logs, insights.WellnessLogs)
			fmt.Fprintf(out, "\nWellness: %s  mood %s\n", WellnessBar(w, 20), w.MoodLabel())
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", insights.WellnessLogs, "Number of check-ins to show")
	return cmd
}
