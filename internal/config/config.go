// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/neuromind/internal/clock"
	"github.com/javiermolinar/neuromind/internal/scheduler"
)

// Config holds the application configuration.
type Config struct {
	Schedule ScheduleConfig `toml:"schedule"`
	Notify   NotifyConfig   `toml:"notify"`
	LLM      LLMConfig      `toml:"llm"`
	Storage  StorageConfig  `toml:"storage"`
	UI       UIConfig       `toml:"ui"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "system", "dark", "light"
}

// ScheduleConfig holds the active day used to build plans.
type ScheduleConfig struct {
	DayStart       string `toml:"day_start"`       // e.g., "09:00"
	DayEnd         string `toml:"day_end"`         // e.g., "17:00"
	BreakMinutes   int    `toml:"break_minutes"`   // gap after every planned task
	TaskMinutes    int    `toml:"task_minutes"`    // block length under the fixed policy
	DurationPolicy string `toml:"duration_policy"` // "fixed" or "estimate"
}

// NotifyConfig holds reminder settings.
type NotifyConfig struct {
	LookaheadMinutes int `toml:"lookahead_minutes"`
	IntervalMinutes  int `toml:"interval_minutes"`
}

// LLMConfig holds LLM provider settings.
type LLMConfig struct {
	Provider string `toml:"provider"` // "copilot", "ollama", "lmstudio", "none"
	Model    string `toml:"model"`    // e.g., "gpt-4o"
	BaseURL  string `toml:"base_url"` // e.g., "http://localhost:11434"
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Schedule: ScheduleConfig{
			DayStart:       "09:00",
			DayEnd:         "17:00",
			BreakMinutes:   scheduler.DefaultBreakMinutes,
			TaskMinutes:    scheduler.DefaultTaskMinutes,
			DurationPolicy: string(scheduler.DurationFixed),
		},
		Notify: NotifyConfig{
			LookaheadMinutes: 45,
			IntervalMinutes:  15,
		},
		LLM: LLMConfig{
			Provider: "none",
			Model:    "gpt-4o",
			BaseURL:  "http://localhost:11434",
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "system",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "neuromind.db"
	}
	return filepath.Join(home, ".local", "share", "neuromind", "neuromind.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "neuromind", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	strs := []struct {
		name string
		dst  *string
	}{
		{"NEUROMIND_DAY_START", &cfg.Schedule.DayStart},
		{"NEUROMIND_DAY_END", &cfg.Schedule.DayEnd},
		{"NEUROMIND_DURATION_POLICY", &cfg.Schedule.DurationPolicy},
		{"NEUROMIND_LLM_PROVIDER", &cfg.LLM.Provider},
		{"NEUROMIND_LLM_MODEL", &cfg.LLM.Model},
		{"NEUROMIND_LLM_BASE_URL", &cfg.LLM.BaseURL},
		{"NEUROMIND_DB_PATH", &cfg.Storage.DBPath},
		{"NEUROMIND_UI_THEME", &cfg.UI.Theme},
	}
	for _, s := range strs {
		if v := os.Getenv(s.name); v != "" {
			*s.dst = v
		}
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"NEUROMIND_BREAK_MINUTES", &cfg.Schedule.BreakMinutes},
		{"NEUROMIND_TASK_MINUTES", &cfg.Schedule.TaskMinutes},
		{"NEUROMIND_NOTIFY_LOOKAHEAD_MINUTES", &cfg.Notify.LookaheadMinutes},
		{"NEUROMIND_NOTIFY_INTERVAL_MINUTES", &cfg.Notify.IntervalMinutes},
	}
	for _, i := range ints {
		v := os.Getenv(i.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s must be an integer, got %q", i.name, v)
		}
		*i.dst = n
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	start, err := clock.Parse(c.Schedule.DayStart)
	if err != nil {
		return fmt.Errorf("day_start must be in HH:MM format, got %q", c.Schedule.DayStart)
	}
	end, err := clock.Parse(c.Schedule.DayEnd)
	if err != nil {
		return fmt.Errorf("day_end must be in HH:MM format, got %q", c.Schedule.DayEnd)
	}
	if !start.Before(end) {
		return errors.New("day_start must be before day_end")
	}

	if c.Schedule.BreakMinutes < 0 {
		return errors.New("break_minutes must not be negative")
	}
	if c.Schedule.TaskMinutes <= 0 {
		return errors.New("task_minutes must be positive")
	}
	switch scheduler.DurationPolicy(c.Schedule.DurationPolicy) {
	case scheduler.DurationFixed, scheduler.DurationEstimate:
	default:
		return fmt.Errorf("duration_policy must be %q or %q, got %q",
			scheduler.DurationFixed, scheduler.DurationEstimate, c.Schedule.DurationPolicy)
	}

	if c.Notify.LookaheadMinutes <= 0 {
		return errors.New("lookahead_minutes must be positive")
	}
	if c.Notify.IntervalMinutes <= 0 {
		return errors.New("interval_minutes must be positive")
	}

	switch c.UI.Theme {
	case "system", "dark", "light":
	default:
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}

	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// SchedulerOptions converts the schedule section into scheduler options.
// It assumes the config has been validated.
func (c *Config) SchedulerOptions() scheduler.Options {
	start, _ := clock.Parse(c.Schedule.DayStart)
	end, _ := clock.Parse(c.Schedule.DayEnd)
	return scheduler.Options{
		DayStart:     start,
		DayEnd:       end,
		BreakMinutes: c.Schedule.BreakMinutes,
		TaskMinutes:  c.Schedule.TaskMinutes,
		Policy:       scheduler.DurationPolicy(c.Schedule.DurationPolicy),
	}
}

// Lookahead returns the reminder window.
func (c *Config) Lookahead() time.Duration {
	return time.Duration(c.Notify.LookaheadMinutes) * time.Minute
}

// Interval returns the time between reminder checks.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.Notify.IntervalMinutes) * time.Minute
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
