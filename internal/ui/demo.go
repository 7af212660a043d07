package ui

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/neuromind/internal/demo"
)

func (a *App) demoCmd() *cobra.Command {
	var (
		count int
		seed  uint64
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Add sample data",
		Long: `Add a base weekly timetable (only when the timetable is empty) and some
random study tasks due within the next week.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}

			if !cmd.Flags().Changed("seed") {
				seed = rand.Uint64()
			}
			rng := rand.New(rand.NewPCG(seed, seed))

			res, err := demo.Seed(cmd.Context(), a.store, rng, a.now(), count)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.Entries > 0 {
				fmt.Fprintf(out, "Added %d timetable entries.\n", res.Entries)
			}
			for _, t := range res.Tasks {
				fmt.Fprintf(out, "Created task #%d: %s [%s, %s]\n",
					t.ID, t.Title, t.Priority, FormatDuration(t.Duration()))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "tasks", "n", 1, "Number of random tasks to add")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed for repeatable data")
	return cmd
}

func (a *App) resetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all tasks and timetable entries",
		Long:  `Delete every task and timetable entry. Feedback check-ins are kept.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if !yes && !promptYesNo(cmd.InOrStdin(), out, "Delete all tasks and timetable entries?") {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
			if err := a.ensureStore(); err != nil {
				return err
			}
			if err := a.store.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(out, "All tasks and timetable entries deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}
