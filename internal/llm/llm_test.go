package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "raw json object",
			input:    `{"advice": []}`,
			expected: `{"advice": []}`,
		},
		{
			name:     "json with leading text",
			input:    `Here is the response: {"advice": [{"text": "rest"}]} hope it helps`,
			expected: `{"advice": [{"text": "rest"}]}`,
		},
		{
			name:     "json in code block",
			input:    "```json\n{\"advice\": []}\n```",
			expected: `{"advice": []}`,
		},
		{
			name:     "json in plain code block",
			input:    "```\n{\"advice\": []}\n```",
			expected: `{"advice": []}`,
		},
		{
			name:     "json array",
			input:    `[{"id": 1}, {"id": 2}]`,
			expected: `[{"id": 1}, {"id": 2}]`,
		},
		{
			name:     "no json",
			input:    `nothing here`,
			expected: `nothing here`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractJSON(tt.input)
			if got != tt.expected {
				t.Errorf("extractJSON() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var out struct {
		Focus string `json:"focus"`
	}
	if err := decodeJSON("```json\n{\"focus\": \"sleep\"}\n```", &out); err != nil {
		t.Fatalf("decodeJSON failed: %v", err)
	}
	if out.Focus != "sleep" {
		t.Errorf("focus = %q, want sleep", out.Focus)
	}
	if err := decodeJSON("not json", &out); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

type fakeClient struct {
	reply    string
	err      error
	messages []Message
}

func (f *fakeClient) Chat(_ context.Context, messages []Message) (string, error) {
	f.messages = messages
	return f.reply, f.err
}

func (f *fakeClient) ChatJSON(ctx context.Context, messages []Message, result any) error {
	reply, err := f.Chat(ctx, messages)
	if err != nil {
		return err
	}
	return decodeJSON(reply, result)
}

func TestCoach_Advise(t *testing.T) {
	client := &fakeClient{reply: "```json\n" +
		`{"focus": "steady pace", "went_well": "Two tasks done on Monday.", "risk": "Lab report is overdue.",` +
		` "tomorrow": ["Finish the lab report", "Revise SQL"]}` + "\n```"}
	coach := NewCoach(client)

	review := Review{
		Days: []DayCount{
			{Day: time.Date(2025, 1, 6, 0, 0, 0, 0, time.Local), Completed: 2},
			{Day: time.Date(2025, 1, 7, 0, 0, 0, 0, time.Local), Completed: 0},
		},
		Pending:       4,
		Overdue:       []string{"Lab report"},
		PlannedToday:  []string{"Revise SQL"},
		PlannedMins:   75,
		Wellness:      0.6,
		AverageMood:   "Good",
		AverageEnergy: 3.5,
	}

	got, err := coach.Advise(context.Background(), review)
	if err != nil {
		t.Fatalf("Advise failed: %v", err)
	}
	want := "FOCUS: steady pace\n\n" +
		"✔  Two tasks done on Monday.\n" +
		"⚠  Lab report is overdue.\n\n" +
		"TOMORROW:\n" +
		"➜  Finish the lab report\n" +
		"➜  Revise SQL"
	if got != want {
		t.Errorf("advice = %q, want %q", got, want)
	}

	if len(client.messages) != 2 || client.messages[0].Role != RoleSystem {
		t.Fatalf("unexpected messages: %+v", client.messages)
	}
	prompt := client.messages[1].Content
	for _, want := range []string{"Mon Jan 6  2", "Pending tasks: 4", "Lab report", "Planned today (1h15m)", "Wellness: 60%, mood Good, energy 3.5/5"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if strings.Contains(prompt, "Did not fit today") {
		t.Error("prompt should omit empty lists")
	}
}

func TestCoach_Errors(t *testing.T) {
	if _, err := NewCoach(nil).Advise(context.Background(), Review{}); err == nil {
		t.Error("expected error without client")
	}

	coach := NewCoach(&fakeClient{err: errors.New("offline")})
	if _, err := coach.Advise(context.Background(), Review{Wellness: -1}); err == nil {
		t.Error("expected client error")
	}

	coach = NewCoach(&fakeClient{reply: "{}"})
	if _, err := coach.Advise(context.Background(), Review{Wellness: -1}); err == nil {
		t.Error("expected error for an empty reply")
	}

	coach = NewCoach(&fakeClient{reply: "Sorry, I can't help with that."})
	if _, err := coach.Advise(context.Background(), Review{Wellness: -1}); err == nil {
		t.Error("expected error for a non-JSON reply")
	}
}

func TestFormatReview_NoFeedback(t *testing.T) {
	got := formatReview(Review{Wellness: -1})
	if !strings.Contains(got, "Wellness: no check-ins") {
		t.Errorf("got %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{135, "2h15m"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.minutes); got != tt.want {
			t.Errorf("formatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
