package db

import (
	"context"
	"fmt"
	"time"

	"github.com/javiermolinar/neuromind/internal/clock"
	"github.com/javiermolinar/neuromind/internal/timetable"
)

// CreateEntry adds a new timetable entry.
func (s *SQLite) CreateEntry(ctx context.Context, e *timetable.Entry) error {
	query := `
		INSERT INTO timetable_entries (title, weekday, start_time, end_time, venue, details)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		e.Title,
		int(e.Weekday),
		e.Start.String(),
		e.End.String(),
		e.Venue,
		e.Details,
	)
	if err != nil {
		return fmt.Errorf("inserting timetable entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	e.ID = id

	s.notify()
	return nil
}

// ListEntries returns all entries ordered by weekday and start time.
func (s *SQLite) ListEntries(ctx context.Context) ([]*timetable.Entry, error) {
	query := `
		SELECT id, title, weekday, start_time, end_time, venue, details
		FROM timetable_entries
		ORDER BY weekday, start_time, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying timetable entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []*timetable.Entry
	for rows.Next() {
		var (
			e          timetable.Entry
			weekday    int
			start, end string
		)
		if err := rows.Scan(&e.ID, &e.Title, &weekday, &start, &end, &e.Venue, &e.Details); err != nil {
			return nil, fmt.Errorf("scanning timetable entry: %w", err)
		}

		e.Weekday = time.Weekday(weekday)
		if e.Start, err = clock.Parse(start); err != nil {
			return nil, fmt.Errorf("parsing start of entry %d: %w", e.ID, err)
		}
		if e.End, err = clock.Parse(end); err != nil {
			return nil, fmt.Errorf("parsing end of entry %d: %w", e.ID, err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating timetable entries: %w", err)
	}
	return entries, nil
}

// DeleteEntry removes a timetable entry.
func (s *SQLite) DeleteEntry(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM timetable_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting timetable entry: %w", err)
	}
	if err := requireRow(result, timetable.ErrEntryNotFound, id); err != nil {
		return err
	}

	s.notify()
	return nil
}

// DeleteAllEntries removes every timetable entry.
func (s *SQLite) DeleteAllEntries(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM timetable_entries`); err != nil {
		return fmt.Errorf("deleting timetable entries: %w", err)
	}
	s.notify()
	return nil
}
