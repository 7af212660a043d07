package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/javiermolinar/neuromind/internal/dateutil"
	"github.com/javiermolinar/neuromind/internal/insights"
	"github.com/javiermolinar/neuromind/internal/scheduler"
	"github.com/javiermolinar/neuromind/internal/task"
	"github.com/javiermolinar/neuromind/internal/timetable"
)

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}

// FormatDue describes a due time relative to now.
func FormatDue(due *time.Time, now time.Time) string {
	if due == nil {
		return "no due date"
	}
	today := dateutil.TruncateToDay(now)
	day := dateutil.TruncateToDay(*due)
	switch {
	case day.Equal(today):
		return "today " + due.Format("15:04")
	case day.Equal(today.AddDate(0, 0, 1)):
		return "tomorrow " + due.Format("15:04")
	case day.Year() == today.Year():
		return due.Format("Mon Jan 2 15:04")
	default:
		return due.Format("2006-01-02 15:04")
	}
}

// Bar renders value out of total as a fixed width bar.
func Bar(value, total, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if total > 0 {
		filled = min(width, max(0, value*width/total))
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// WellnessBar renders a wellness score between 0 and 1.
func WellnessBar(w insights.Wellness, width int) string {
	if !w.HasData() {
		return "[" + strings.Repeat("░", width) + "] (" + insights.NoData + ")"
	}
	pct := int(w.Score*100 + 0.5)
	return fmt.Sprintf("[%s] %s", formatStats(Bar(pct, 100, width)), formatStats(fmt.Sprintf("(%d%%)", pct)))
}

// truncate shortens s to width runes, marking the cut with "...".
func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 3 || len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

func statusSymbol(t *task.Task, now time.Time) string {
	switch {
	case t.Completed:
		return formatStats("✓")
	case t.IsOverdue(now):
		return formatWarning("!")
	default:
		return "○"
	}
}

// PrintTaskRow prints a single task row with consistent formatting.
func PrintTaskRow(w io.Writer, t *task.Task, now time.Time, titleWidth int) {
	due := FormatDue(t.Due, now)
	if t.IsOverdue(now) {
		due = formatWarning(due)
	} else {
		due = formatMuted(due)
	}
	fmt.Fprintf(w, "  %s %4s  %-6s  %-6s  %-*s  %s\n",
		statusSymbol(t, now),
		fmt.Sprintf("#%d", t.ID),
		formatPriority(t.Priority),
		formatMuted(FormatDuration(t.Duration())),
		titleWidth, truncate(t.Title, titleWidth),
		due,
	)
}

// PlanOpts configures plan printing.
type PlanOpts struct {
	ShowFree bool
	Width    int // title column width
}

// PrintPlan prints the day's commitments and placed tasks in time order,
// followed by the tasks that did not fit.
func PrintPlan(w io.Writer, p *scheduler.Plan, opts PlanOpts) {
	width := opts.Width
	if width <= 0 {
		width = 40
	}

	fmt.Fprintln(w, formatHeader(fmt.Sprintf("%s  (%s)", p.Date.Format("Monday, Jan 2"), p.Window)))

	items := p.Timeline()
	if len(items) == 0 {
		fmt.Fprintln(w, formatMuted("  Nothing scheduled."))
	}
	for _, it := range items {
		if it.IsCommitment() {
			printCommitment(w, it.Entry, width)
			continue
		}
		fmt.Fprintf(w, "  %s  ■ %-*s  %s\n",
			it.Slot, width, truncate(it.Task.Title, width), formatPriority(it.Task.Priority))
	}

	if opts.ShowFree {
		fmt.Fprintln(w)
		fmt.Fprintln(w, formatHeader("Free time"))
		for _, s := range p.Free {
			fmt.Fprintf(w, "  %s  %s\n", s, formatMuted(FormatDuration(s.Minutes())))
		}
		fmt.Fprintf(w, "  Total: %s\n", formatStats(FormatDuration(p.FreeMinutes())))
	}

	if len(p.Unplaced) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, formatWarning(fmt.Sprintf("Did not fit (%d)", len(p.Unplaced))))
		for _, t := range p.Unplaced {
			fmt.Fprintf(w, "  #%d %s %s\n", t.ID, t.Title, formatMuted("("+string(t.Priority)+")"))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Planned: %s | Free: %s | Tasks: %d placed, %d unplaced\n",
		formatStats(FormatDuration(p.Schedule.Minutes())),
		FormatDuration(p.FreeMinutes()),
		len(p.Schedule), len(p.Unplaced))
}

func printCommitment(w io.Writer, e *timetable.Entry, width int) {
	venue := ""
	if e.Venue != "" {
		venue = formatMuted("@ " + e.Venue)
	}
	fmt.Fprintf(w, "  %s-%s  %s %-*s  %s\n",
		e.Start, e.End, formatCommitment("▒"), width, truncate(e.Title, width), venue)
}

// PrintInsightWrapped formats and prints insight text preserving structure.
func PrintInsightWrapped(w io.Writer, text string, width int) {
	// Strip markdown code blocks
	text = stripMarkdownCodeBlocks(text)

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			fmt.Fprintln(w)
			continue
		}

		prefix, content, contentWidth, isHeader := parseInsightLine(trimmed, width)
		if isHeader {
			fmt.Fprintln(w)
			fmt.Fprintln(w, formatHeader("  "+content))
			continue
		}

		for _, l := range wrapText(content, prefix, contentWidth) {
			fmt.Fprintln(w, formatInsight(l))
		}
	}
}

// parseInsightLine parses a line and returns formatting info.
// Returns: prefix, content, contentWidth, isHeader
func parseInsightLine(trimmed string, width int) (prefix, content string, contentWidth int, isHeader bool) {
	prefix = "  "
	content = trimmed
	contentWidth = width - 2

	switch {
	case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
		prefix = "    • "
		content = strings.TrimPrefix(strings.TrimPrefix(trimmed, "- "), "* ")
		contentWidth = width - 6

	case strings.HasPrefix(trimmed, "#"):
		content = strings.TrimLeft(trimmed, "# ")
		isHeader = true

	// "LABEL: text" lines from the coach keep the label on the first line.
	case isLabelLine(trimmed):
		idx := strings.Index(trimmed, ":")
		prefix = "  " + trimmed[:idx+1] + " "
		content = strings.TrimSpace(trimmed[idx+1:])
		contentWidth = width - len(prefix)
	}

	return prefix, content, contentWidth, isHeader
}

// isLabelLine reports whether s starts with an upper case label and a colon
// followed by text.
func isLabelLine(s string) bool {
	idx := strings.Index(s, ":")
	if idx <= 0 || idx > 20 || strings.TrimSpace(s[idx+1:]) == "" {
		return false
	}
	label := s[:idx]
	return strings.ToUpper(label) == label && strings.ToLower(label) != label
}

// wrapText wraps text to width. The first line carries prefix and the rest
// are indented to match it.
func wrapText(text, prefix string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width < 10 {
		width = 10
	}

	var lines []string
	continuation := strings.Repeat(" ", len([]rune(prefix)))
	current := prefix
	line := ""
	for _, word := range words {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, current+line)
			current = continuation
			line = word
		}
	}
	return append(lines, current+line)
}

// stripMarkdownCodeBlocks removes ```...``` fences from text.
func stripMarkdownCodeBlocks(text string) string {
	lines := strings.Split(text, "\n")
	var result []string
	inCodeBlock := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inCodeBlock = !inCodeBlock
			continue
		}
		if !inCodeBlock {
			result = append(result, line)
		}
	}

	return strings.Join(result, "\n")
}
