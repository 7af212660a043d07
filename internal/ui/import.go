package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/neuromind/internal/db"
	"github.com/javiermolinar/neuromind/internal/feedback"
	"github.com/javiermolinar/neuromind/internal/task"
	"github.com/javiermolinar/neuromind/internal/timetable"
)

func (a *App) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <database_path>",
		Short: "Import data from another database",
		Long: `Import all tasks, timetable entries and feedback check-ins from another
neuromind database into the current one. Records get new IDs.

Example:
  neuromind import /path/to/other.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}

			sourcePath, err := resolvePath(args[0])
			if err != nil {
				return err
			}
			destPath, err := resolvePath(a.config.Storage.DBPath)
			if err != nil {
				return err
			}

			if sourcePath == destPath {
				return fmt.Errorf("source database matches current database")
			}

			info, err := os.Stat(sourcePath)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("source database does not exist: %s", sourcePath)
				}
				return fmt.Errorf("checking source database: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("source database path is a directory: %s", sourcePath)
			}

			counts, err := importAll(cmd.Context(), a.store, sourcePath)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tasks, %d timetable entries and %d check-ins from %s\n",
				counts.Tasks, counts.Entries, counts.Logs, sourcePath)
			return nil
		},
	}

	return cmd
}

// importCounts reports how many records were copied.
type importCounts struct {
	Tasks   int
	Entries int
	Logs    int
}

type importTarget interface {
	task.Repository
	timetable.Repository
	feedback.Repository
}

func importAll(ctx context.Context, dest importTarget, sourcePath string) (importCounts, error) {
	var counts importCounts

	source, err := db.New(sourcePath)
	if err != nil {
		return counts, fmt.Errorf("opening source database: %w", err)
	}
	defer func() { _ = source.Close() }()

	tasks, err := source.ListTasks(ctx)
	if err != nil {
		return counts, fmt.Errorf("listing source tasks: %w", err)
	}
	for _, t := range tasks {
		copied := *t
		copied.ID = 0
		if err := dest.CreateTask(ctx, &copied); err != nil {
			return counts, fmt.Errorf("importing task %q: %w", t.Title, err)
		}
		counts.Tasks++
	}

	entries, err := source.ListEntries(ctx)
	if err != nil {
		return counts, fmt.Errorf("listing source timetable: %w", err)
	}
	for _, e := range entries {
		copied := *e
		copied.ID = 0
		if err := dest.CreateEntry(ctx, &copied); err != nil {
			return counts, fmt.Errorf("importing entry %q: %w", e.Title, err)
		}
		counts.Entries++
	}

	logs, err := source.ListLogs(ctx)
	if err != nil {
		return counts, fmt.Errorf("listing source feedback: %w", err)
	}
	// Oldest first so the destination keeps the original order.
	for i := len(logs) - 1; i >= 0; i-- {
		copied := *logs[i]
		copied.ID = 0
		if err := dest.CreateLog(ctx, &copied); err != nil {
			return counts, fmt.Errorf("importing check-in from %s: %w", logs[i].Date.Format("2006-01-02"), err)
		}
		counts.Logs++
	}

	return counts, nil
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
