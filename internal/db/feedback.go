package db

import (
	"context"
	"fmt"
	"time"

	"github.com/javiermolinar/neuromind/internal/feedback"
)

// CreateLog stores a feedback log.
func (s *SQLite) CreateLog(ctx context.Context, l *feedback.Log) error {
	if l.Date.IsZero() {
		l.Date = time.Now()
	}

	query := `
		INSERT INTO feedback_logs (logged_at, mood, energy, stress, comment)
		VALUES (?, ?, ?, ?, ?)
	`
	result, err := s.db.ExecContext(ctx, query, formatTime(l.Date), l.Mood, l.Energy, l.Stress, l.Comment)
	if err != nil {
		return fmt.Errorf("inserting feedback log: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	l.ID = id

	s.notify()
	return nil
}

// ListLogs returns all feedback logs, newest first.
func (s *SQLite) ListLogs(ctx context.Context) ([]*feedback.Log, error) {
	query := `
		SELECT id, logged_at, mood, energy, stress, comment
		FROM feedback_logs
		ORDER BY logged_at DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying feedback logs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var logs []*feedback.Log
	for rows.Next() {
		var (
			l        feedback.Log
			loggedAt string
		)
		if err := rows.Scan(&l.ID, &loggedAt, &l.Mood, &l.Energy, &l.Stress, &l.Comment); err != nil {
			return nil, fmt.Errorf("scanning feedback log: %w", err)
		}
		if l.Date, err = parseTime(loggedAt); err != nil {
			return nil, fmt.Errorf("parsing log date: %w", err)
		}
		logs = append(logs, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating feedback logs: %w", err)
	}
	return logs, nil
}
