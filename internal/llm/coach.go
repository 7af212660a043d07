package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

const coachSystemPrompt = `You are a calm, practical study and productivity coach. Reply with a single JSON object and nothing else. Be brief and kind.`

const coachPromptTemplate = `Review this person's last week and reply with this JSON object:

{
  "focus": "2-4 word theme",
  "went_well": "one sentence on what went well",
  "risk": "one sentence on the biggest risk (workload, energy or overdue items)",
  "tomorrow": ["first concrete action", "second concrete action"]
}

Week data:
%s

Rules:
- Keep each sentence under 70 characters
- Refer to real task names and numbers from the data
- If energy or mood is low, suggest lighter scheduling`

// DayCount is the number of tasks completed on one day.
type DayCount struct {
	Day       time.Time
	Completed int
}

// Review is the data the coach comments on.
type Review struct {
	Days          []DayCount
	Pending       int
	Overdue       []string
	PlannedToday  []string
	PlannedMins   int
	Unplaced      []string
	Wellness      float64 // 0..1, negative when there is no feedback
	AverageMood   string
	AverageEnergy float64
}

// Coach produces short written advice from a weekly review.
type Coach struct {
	client Client
}

// NewCoach creates a new Coach with the given LLM client.
func NewCoach(client Client) *Coach {
	return &Coach{client: client}
}

// Advice is the structured reply requested from the model.
type Advice struct {
	Focus    string   `json:"focus"`
	WentWell string   `json:"went_well"`
	Risk     string   `json:"risk"`
	Tomorrow []string `json:"tomorrow"`
}

// String renders the advice as labelled plain text. Empty parts are omitted.
func (a Advice) String() string {
	var sb strings.Builder
	if a.Focus != "" {
		fmt.Fprintf(&sb, "FOCUS: %s\n\n", strings.TrimSpace(a.Focus))
	}
	if a.WentWell != "" {
		fmt.Fprintf(&sb, "✔  %s\n", strings.TrimSpace(a.WentWell))
	}
	if a.Risk != "" {
		fmt.Fprintf(&sb, "⚠  %s\n", strings.TrimSpace(a.Risk))
	}
	if len(a.Tomorrow) > 0 {
		sb.WriteString("\nTOMORROW:\n")
		for _, action := range a.Tomorrow {
			fmt.Fprintf(&sb, "➜  %s\n", strings.TrimSpace(action))
		}
	}
	return strings.TrimSpace(sb.String())
}

// Advise asks the model for coaching and returns it as plain text.
func (c *Coach) Advise(ctx context.Context, r Review) (string, error) {
	if c == nil || c.client == nil {
		return "", errors.New("coach has no LLM client")
	}

	var advice Advice
	err := c.client.ChatJSON(ctx, []Message{
		{Role: RoleSystem, Content: coachSystemPrompt},
		{Role: RoleUser, Content: fmt.Sprintf(coachPromptTemplate, formatReview(r))},
	}, &advice)
	if err != nil {
		return "", fmt.Errorf("requesting advice: %w", err)
	}
	if advice.Focus == "" && advice.WentWell == "" && advice.Risk == "" && len(advice.Tomorrow) == 0 {
		return "", errors.New("requesting advice: empty reply")
	}
	return advice.String(), nil
}

// formatReview renders the review as compact plain text for the prompt.
func formatReview(r Review) string {
	var sb strings.Builder

	sb.WriteString("Completed per day:\n")
	for _, d := range r.Days {
		fmt.Fprintf(&sb, "  %s  %d\n", d.Day.Format("Mon Jan 2"), d.Completed)
	}

	fmt.Fprintf(&sb, "Pending tasks: %d\n", r.Pending)
	writeList(&sb, "Overdue", r.Overdue)
	writeList(&sb, "Planned today ("+formatDuration(r.PlannedMins)+")", r.PlannedToday)
	writeList(&sb, "Did not fit today", r.Unplaced)

	if r.Wellness < 0 {
		sb.WriteString("Wellness: no check-ins\n")
	} else {
		fmt.Fprintf(&sb, "Wellness: %.0f%%, mood %s, energy %.1f/5\n",
			r.Wellness*100, r.AverageMood, r.AverageEnergy)
	}
	return sb.String()
}

func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "%s:\n", label)
	for _, item := range items {
		fmt.Fprintf(sb, "  - %s\n", item)
	}
}

// formatDuration formats minutes as a human-readable duration.
func formatDuration(minutes int) string {
	if minutes <= 0 {
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
