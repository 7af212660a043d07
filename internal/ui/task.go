package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/neuromind/internal/task"
)

func (a *App) taskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(a.taskAddCmd())
	cmd.AddCommand(a.taskListCmd())
	cmd.AddCommand(a.taskDoneCmd(true))
	cmd.AddCommand(a.taskDoneCmd(false))
	cmd.AddCommand(a.taskEditCmd())
	cmd.AddCommand(a.taskRemoveCmd())
	return cmd
}

func (a *App) taskAddCmd() *cobra.Command {
	var (
		priority    string
		difficulty  string
		due         string
		duration    int
		description string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new task",
		Long: `Add a new task.

Priority is high, medium or low and decides placement order.
Difficulty is hard, medium or easy and is informational.
Due accepts YYYY-MM-DD (end of that day) or "YYYY-MM-DD HH:MM".`,
		Example: `  neuromind task add "Physics essay" --priority high --due 2025-01-10
  neuromind task add "Read chapter 4" --duration 45 --difficulty easy`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := task.New(args[0], priority, difficulty, due, duration)
			if err != nil {
				return err
			}
			t.Description = strings.TrimSpace(description)

			if err := a.ensureStore(); err != nil {
				return err
			}
			if err := a.store.CreateTask(cmd.Context(), t); err != nil {
				return fmt.Errorf("creating task: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d: %s [%s, %s]\n",
				t.ID, t.Title, t.Priority, FormatDuration(t.Duration()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority (high, medium, low)")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "medium", "Difficulty (hard, medium, easy)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD or \"YYYY-MM-DD HH:MM\")")
	cmd.Flags().IntVar(&duration, "duration", task.DefaultDurationMinutes, "Estimated duration in minutes")
	cmd.Flags().StringVar(&description, "desc", "", "Longer description")

	return cmd
}

func (a *App) taskListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List pending tasks, soonest due first. Tasks without a due date come last.
Use --all to include completed tasks.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			tasks, err := a.store.ListTasks(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing tasks: %w", err)
			}
			if !all {
				tasks = task.Pending(tasks)
			}

			out := cmd.OutOrStdout()
			if len(tasks) == 0 {
				fmt.Fprintln(out, "No tasks found.")
				return nil
			}

			now := a.now()
			width := max(20, min(50, termWidth()-50))
			for _, t := range tasks {
				PrintTaskRow(out, t, now, width)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed tasks")
	return cmd
}

func (a *App) taskDoneCmd(completed bool) *cobra.Command {
	use, short, verb := "done <id>", "Mark a task as completed", "Completed"
	if !completed {
		use, short, verb = "undo <id>", "Mark a completed task as pending again", "Reopened"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.ensureStore(); err != nil {
				return err
			}

			ctx := cmd.Context()
			t, err := a.store.GetTask(ctx, id)
			if err != nil {
				return err
			}
			if err := a.store.SetCompleted(ctx, id, completed); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s task #%d: %s\n", verb, t.ID, t.Title)
			return nil
		},
	}
}

func (a *App) taskEditCmd() *cobra.Command {
	var (
		title       string
		priority    string
		difficulty  string
		due         string
		duration    int
		description string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Long: `Edit the fields of a task. Only the flags you pass are changed.
Pass --due none to remove a due date.`,
		Example: `  neuromind task edit 3 --priority low
  neuromind task edit 3 --due "2025-01-12 18:00" --duration 90`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.ensureStore(); err != nil {
				return err
			}

			ctx := cmd.Context()
			t, err := a.store.GetTask(ctx, id)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("title") {
				title = strings.TrimSpace(title)
				if title == "" {
					return task.ErrEmptyTitle
				}
				t.Title = title
			}
			if flags.Changed("priority") {
				if t.Priority, err = task.ParsePriority(priority); err != nil {
					return err
				}
			}
			if flags.Changed("difficulty") {
				if t.Difficulty, err = task.ParseDifficulty(difficulty); err != nil {
					return err
				}
			}
			if flags.Changed("due") {
				if strings.EqualFold(strings.TrimSpace(due), "none") {
					t.Due = nil
				} else if t.Due, err = task.ParseDue(due); err != nil {
					return err
				}
			}
			if flags.Changed("duration") {
				if duration <= 0 {
					return task.ErrInvalidDuration
				}
				t.DurationMinutes = duration
			}
			if flags.Changed("desc") {
				t.Description = strings.TrimSpace(description)
			}

			if err := a.store.UpdateTask(ctx, t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%d: %s\n", t.ID, t.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority (high, medium, low)")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "Difficulty (hard, medium, easy)")
	cmd.Flags().StringVar(&due, "due", "", "Due date, or none")
	cmd.Flags().IntVar(&duration, "duration", 0, "Estimated duration in minutes")
	cmd.Flags().StringVar(&description, "desc", "", "Longer description")

	return cmd
}

func (a *App) taskRemoveCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
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
				if err := a.store.DeleteAllTasks(ctx); err != nil {
					return fmt.Errorf("deleting tasks: %w", err)
				}
				fmt.Fprintln(out, "Deleted all tasks.")
				return nil
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.store.DeleteTask(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(out, "Deleted task #%d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Delete every task")
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(s, "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID: %s", s)
	}
	return id, nil
}
