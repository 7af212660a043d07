// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// System picks dark or light from the terminal background.
const System = "system"

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Selection, panels
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Secondary text
	Accent      string `toml:"accent"`       // Title, borders
	High        string `toml:"high"`         // High priority tasks
	Medium      string `toml:"medium"`       // Medium priority tasks
	Low         string `toml:"low"`          // Low priority tasks
	Commitment  string `toml:"commitment"`   // Timetable entries
	Warning     string `toml:"warning"`      // Overdue and unplaced work
}

// Load loads a theme by name from embedded files.
// "system" and unknown names resolve against the terminal background.
func Load(name string) (*Theme, error) {
	name = Resolve(name, termenv.HasDarkBackground)

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	return &t, nil
}

// Resolve maps a configured theme name to an embedded one.
func Resolve(name string, hasDarkBackground func() bool) string {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "dark", "light":
		return name
	}
	if hasDarkBackground != nil && !hasDarkBackground() {
		return "light"
	}
	return "dark"
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{System, "dark", "light"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
