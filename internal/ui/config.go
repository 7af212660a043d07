package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/neuromind/internal/config"
	"github.com/javiermolinar/neuromind/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  neuromind config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), config.DefaultConfigPath())
		},
	}
}

func runConfigInteractive(in io.Reader, out io.Writer, configPath string) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, fileErr := os.Stat(configPath)
	if os.IsNotExist(fileErr) {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	printConfig(out, cfg)

	reader := bufio.NewReader(in)
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Schedule.DayStart = promptValue(reader, out, "Day start", cfg.Schedule.DayStart)
	cfg.Schedule.DayEnd = promptValue(reader, out, "Day end", cfg.Schedule.DayEnd)
	cfg.Schedule.BreakMinutes = promptInt(reader, out, "Break after each task (minutes)", cfg.Schedule.BreakMinutes)
	cfg.Schedule.TaskMinutes = promptInt(reader, out, "Block length for fixed policy (minutes)", cfg.Schedule.TaskMinutes)
	cfg.Schedule.DurationPolicy = promptValue(reader, out, "Duration policy (fixed, estimate)", cfg.Schedule.DurationPolicy)
	cfg.Notify.LookaheadMinutes = promptInt(reader, out, "Reminder lookahead (minutes)", cfg.Notify.LookaheadMinutes)
	cfg.Notify.IntervalMinutes = promptInt(reader, out, "Reminder check interval (minutes)", cfg.Notify.IntervalMinutes)
	cfg.LLM.Provider = promptValue(reader, out, "LLM provider (none, copilot, ollama, lmstudio)", cfg.LLM.Provider)
	cfg.LLM.Model = promptValue(reader, out, "LLM model", cfg.LLM.Model)
	cfg.LLM.BaseURL = promptValue(reader, out, "LLM base URL (Ollama/LM Studio)", cfg.LLM.BaseURL)
	cfg.Storage.DBPath = promptValue(reader, out, "Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[schedule]")
	fmt.Fprintf(out, "  day_start         = %s\n", cfg.Schedule.DayStart)
	fmt.Fprintf(out, "  day_end           = %s\n", cfg.Schedule.DayEnd)
	fmt.Fprintf(out, "  break_minutes     = %d\n", cfg.Schedule.BreakMinutes)
	fmt.Fprintf(out, "  task_minutes      = %d\n", cfg.Schedule.TaskMinutes)
	fmt.Fprintf(out, "  duration_policy   = %s\n", cfg.Schedule.DurationPolicy)
	fmt.Fprintln(out, "\n[notify]")
	fmt.Fprintf(out, "  lookahead_minutes = %d\n", cfg.Notify.LookaheadMinutes)
	fmt.Fprintf(out, "  interval_minutes  = %d\n", cfg.Notify.IntervalMinutes)
	fmt.Fprintln(out, "\n[llm]")
	fmt.Fprintf(out, "  provider          = %s\n", cfg.LLM.Provider)
	fmt.Fprintf(out, "  model             = %s\n", cfg.LLM.Model)
	fmt.Fprintf(out, "  base_url          = %s\n", cfg.LLM.BaseURL)
	fmt.Fprintln(out, "\n[storage]")
	fmt.Fprintf(out, "  db_path           = %s\n", cfg.Storage.DBPath)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme             = %s\n", cfg.UI.Theme)
}

// promptYesNo asks a question and reports whether the answer was yes.
func promptYesNo(in io.Reader, out io.Writer, question string) bool {
	reader := bufio.NewReader(in)
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Fprintf(out, "  Invalid number %q\n", value)
		// Stop re-prompting once input is exhausted.
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}
