package feedback

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	l, err := New(" Good ", 4, 1, " long day ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Mood != MoodGood {
		t.Errorf("mood = %q, want good", l.Mood)
	}
	if l.Comment != "long day" {
		t.Errorf("comment = %q, want trimmed", l.Comment)
	}
	if l.Date.IsZero() {
		t.Error("expected Date to be set")
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mood    string
		energy  int
		stress  int
		wantErr error
	}{
		{name: "unknown mood", mood: "ecstatic", energy: 3, wantErr: ErrInvalidMood},
		{name: "energy too low", mood: "good", energy: 0, wantErr: ErrInvalidEnergy},
		{name: "energy too high", mood: "good", energy: 6, wantErr: ErrInvalidEnergy},
		{name: "negative stress", mood: "good", energy: 3, stress: -1, wantErr: ErrInvalidStress},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.mood, tt.energy, tt.stress, "")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMoodScore(t *testing.T) {
	prev := 11
	for _, m := range Moods() {
		if m.Score() >= prev {
			t.Errorf("%s score %d not below previous %d", m, m.Score(), prev)
		}
		prev = m.Score()
	}
	if MoodGreat.Score()+MaxEnergy != MaxScore {
		t.Errorf("best mood plus max energy should equal MaxScore")
	}
	if MoodTired.Label() != "Tired" {
		t.Errorf("Label() = %q, want Tired", MoodTired.Label())
	}
}
