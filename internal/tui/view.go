package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/neuromind/internal/scheduler"
	"github.com/javiermolinar/neuromind/internal/task"
)

const defaultWidth = 80

// View renders the dashboard.
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	var sections []string
	sections = append(sections, m.renderHeader(width))

	switch {
	case m.dash == nil && m.err == nil:
		sections = append(sections, m.styles.Muted.Render(m.spinner.View()+" Planning your day..."))
	case m.dash != nil:
		sections = append(sections,
			m.renderStats(width),
			m.renderPriority(width),
			m.renderUpcoming(width),
			m.renderPlan(width),
		)
	}

	sections = append(sections, "", m.renderFooter(width))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader(width int) string {
	title := m.styles.Title.Render("neuromind")
	right := ""
	if m.dash != nil {
		right = m.styles.Greeting.Render(m.dash.Greeting) + m.styles.Muted.Render(" · "+m.dash.Now.Format("Mon Jan 2 15:04"))
	}
	if m.loading && m.dash != nil {
		right = m.spinner.View() + " " + right
	}

	gap := width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		return fit(title+" "+right, width)
	}
	return title + strings.Repeat(" ", gap) + right
}

func (m Model) renderStats(width int) string {
	d := m.dash
	stat := func(label, value string) string {
		return m.styles.Stat.Render(label+" ") + m.styles.StatVal.Render(value)
	}

	parts := []string{
		stat("Pending", fmt.Sprint(d.Pending)),
		stat("Completed", fmt.Sprint(d.Completed)),
	}
	if d.Plan != nil {
		parts = append(parts,
			stat("Planned", formatMinutes(d.Plan.Schedule.Minutes())),
			stat("Free", formatMinutes(d.Plan.FreeMinutes())),
		)
	}
	return "\n" + fit(strings.Join(parts, "   "), width)
}

func (m Model) renderPriority(width int) string {
	lines := []string{m.styles.Section.Render("PRIORITY")}
	if len(m.dash.Priority) == 0 {
		lines = append(lines, m.styles.Muted.Render("  Nothing urgent."))
	}
	for _, t := range m.dash.Priority {
		marker := " "
		due := ""
		switch {
		case t.IsOverdue(m.dash.Now):
			marker = m.styles.Warning.Render("!")
			due = m.styles.Warning.Render("overdue")
		case t.Due != nil:
			due = m.styles.Muted.Render("due " + t.Due.Format("Mon 15:04"))
		}
		line := fmt.Sprintf("  %s %s  %s  %s", marker, m.styles.Text.Render(t.Title), m.priorityLabel(t), due)
		lines = append(lines, fit(line, width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderUpcoming(width int) string {
	lines := []string{m.styles.Section.Render("UP NEXT")}
	if len(m.dash.Upcoming) == 0 {
		lines = append(lines, m.styles.Muted.Render("  No commitments today."))
	}
	for _, e := range m.dash.Upcoming {
		venue := ""
		if e.Venue != "" {
			venue = m.styles.Muted.Render(" @ " + e.Venue)
		}
		lines = append(lines, fit(fmt.Sprintf("  %s-%s  %s%s", e.Start, e.End, e.Title, venue), width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderPlan(width int) string {
	p := m.dash.Plan
	if p == nil {
		return ""
	}

	lines := []string{m.styles.Section.Render(fmt.Sprintf("TODAY'S PLAN (%s)", p.Window))}
	items := p.Timeline()
	if len(items) == 0 {
		lines = append(lines, m.styles.Muted.Render("  Nothing scheduled."))
	}

	selected := m.selected()
	for _, it := range items {
		lines = append(lines, m.renderItem(it, selected, width))
	}

	if len(p.Unplaced) > 0 {
		titles := make([]string, len(p.Unplaced))
		for i, t := range p.Unplaced {
			titles[i] = t.Title
		}
		lines = append(lines, "", fit(m.styles.Warning.Render(
			fmt.Sprintf("  Did not fit (%d): %s", len(p.Unplaced), strings.Join(titles, ", "))), width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderItem(it scheduler.Item, selected *task.Task, width int) string {
	if it.IsCommitment() {
		text := fmt.Sprintf("  %s  ▒ %s", it.Slot, it.Entry.Title)
		if it.Entry.Venue != "" {
			text += " @ " + it.Entry.Venue
		}
		return m.styles.Commitment.Render(fit(text, width))
	}

	cursor := " "
	if it.Task == selected {
		cursor = ">"
	}
	text := fmt.Sprintf("%s %s  ■ %s", cursor, it.Slot, it.Task.Title)
	if it.Task == selected {
		return m.styles.Selected.Render(fit(text+"  "+string(it.Task.Priority), width))
	}
	return fit(text, width-8) + "  " + m.priorityLabel(it.Task)
}

func (m Model) renderFooter(width int) string {
	var lines []string
	if m.mode == ModePrompt {
		lines = append(lines, m.styles.Prompt.Render(m.input.View()))
	}
	switch {
	case m.err != nil:
		lines = append(lines, m.styles.Error.Render(fit(m.err.Error(), width-2)))
	case m.status != "":
		lines = append(lines, m.styles.Status.Render(m.status))
	}
	lines = append(lines, m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

func (m Model) priorityLabel(t *task.Task) string {
	return m.styles.Priority(t.Priority).Render(string(t.Priority))
}

// fit truncates s, which may contain escape sequences, to width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

func formatMinutes(minutes int) string {
	h, mins := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", mins)
	case mins == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%dm", h, mins)
	}
}
