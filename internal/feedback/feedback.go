// Package feedback defines daily mood and energy check-ins.
package feedback

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Energy and stress bounds.
const (
	MinEnergy = 1
	MaxEnergy = 5
	MaxStress = 5
)

// MaxScore is the highest combined mood score plus energy a single log can reach.
const MaxScore = 10 + MaxEnergy

// Validation errors.
var (
	ErrInvalidMood   = errors.New("mood must be one of great, good, neutral, tired, stressed")
	ErrInvalidEnergy = errors.New("energy must be between 1 and 5")
	ErrInvalidStress = errors.New("stress must be between 0 and 5")
)

// Mood is how the user felt.
type Mood string

const (
	MoodGreat    Mood = "great"
	MoodGood     Mood = "good"
	MoodNeutral  Mood = "neutral"
	MoodTired    Mood = "tired"
	MoodStressed Mood = "stressed"
)

// Moods lists every mood from best to worst.
func Moods() []Mood {
	return []Mood{MoodGreat, MoodGood, MoodNeutral, MoodTired, MoodStressed}
}

// Score returns the wellness weight of the mood, or 0 for unknown values.
func (m Mood) Score() int {
	switch m {
	case MoodGreat:
		return 10
	case MoodGood:
		return 8
	case MoodNeutral:
		return 6
	case MoodTired:
		return 4
	case MoodStressed:
		return 2
	default:
		return 0
	}
}

// Valid returns true if the mood is a known value.
func (m Mood) Valid() bool {
	return m.Score() > 0
}

// Label returns the capitalized mood name.
func (m Mood) Label() string {
	if m == "" {
		return ""
	}
	s := string(m)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Log is a single check-in.
type Log struct {
	ID      int64
	Date    time.Time
	Mood    Mood
	Energy  int
	Stress  int
	Comment string
}

// New creates a new Log with validation, dated now.
func New(mood string, energy, stress int, comment string) (*Log, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(mood)))
	if !m.Valid() {
		return nil, ErrInvalidMood
	}
	if energy < MinEnergy || energy > MaxEnergy {
		return nil, ErrInvalidEnergy
	}
	if stress < 0 || stress > MaxStress {
		return nil, ErrInvalidStress
	}
	return &Log{
		Date:    time.Now(),
		Mood:    m,
		Energy:  energy,
		Stress:  stress,
		Comment: strings.TrimSpace(comment),
	}, nil
}

// Repository defines the storage interface for feedback logs.
type Repository interface {
	// CreateLog adds a new log and sets its ID.
	CreateLog(ctx context.Context, log *Log) error

	// ListLogs returns all logs, newest first.
	ListLogs(ctx context.Context) ([]*Log, error)
}
