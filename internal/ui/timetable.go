package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/neuromind/internal/timetable"
)

func (a *App) timetableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "timetable",
		Aliases: []string{"tt"},
		Short:   "Manage weekly commitments",
		Long: `Manage the weekly timetable. Entries repeat every week on their weekday
and the planner never schedules tasks over them.`,
	}
	cmd.AddCommand(a.timetableAddCmd())
	cmd.AddCommand(a.timetableListCmd())
	cmd.AddCommand(a.timetableRemoveCmd())
	return cmd
}

func (a *App) timetableAddCmd() *cobra.Command {
	var (
		day     string
		start   string
		end     string
		venue   string
		details string
	)

	cmd := &cobra.Command{
		Use:     "add <title>",
		Short:   "Add a weekly commitment",
		Example: `  neuromind timetable add "Database Systems" --day wed --start 10:00 --end 12:00 --venue "Room 404"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := timetable.New(args[0], day, start, end, venue, details)
			if err != nil {
				return err
			}
			if err := a.ensureStore(); err != nil {
				return err
			}
			if err := a.store.CreateEntry(cmd.Context(), e); err != nil {
				return fmt.Errorf("creating entry: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created entry #%d: %s on %s %s-%s\n",
				e.ID, e.Title, e.Weekday, e.Start, e.End)
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Weekday (monday..sunday or mon..sun)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVar(&venue, "venue", "", "Where it happens")
	cmd.Flags().StringVar(&details, "details", "", "Notes")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func (a *App) timetableListCmd() *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List weekly commitments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			entries, err := a.store.ListEntries(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing timetable: %w", err)
			}
			if day != "" {
				wd, err := timetable.ParseWeekday(day)
				if err != nil {
					return err
				}
				entries = timetable.ForDay(entries, wd)
			}

			PrintTimetable(cmd.OutOrStdout(), entries)
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Only show one weekday")
	return cmd
}

func (a *App) timetableRemoveCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a weekly commitment",
		Args: func(cmd *cobra.Command, args []string) error {
			if all {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if all {
				if err := a.store.DeleteAllEntries(ctx); err != nil {
					return err
				}
				fmt.Fprintln(out, "Deleted all timetable entries.")
				return nil
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.store.DeleteEntry(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(out, "Deleted entry #%d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Delete every entry")
	return cmd
}

// PrintTimetable prints entries grouped by weekday. entries must be ordered
// by weekday and start time.
func PrintTimetable(w io.Writer, entries []*timetable.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No timetable entries.")
		return
	}

	current := time.Weekday(-1)
	for _, e := range entries {
		if e.Weekday != current {
			if current != -1 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "=== %s ===\n", e.Weekday)
			current = e.Weekday
		}
		fmt.Fprintf(w, "  %4s  %s-%s  %s", fmt.Sprintf("#%d", e.ID), e.Start, e.End, formatCommitment(e.Title))
		if e.Venue != "" {
			fmt.Fprintf(w, "  %s", formatMuted("@ "+e.Venue))
		}
		if e.Details != "" {
			fmt.Fprintf(w, "  %s", formatMuted(e.Details))
		}
		fmt.Fprintln(w)
	}
}
