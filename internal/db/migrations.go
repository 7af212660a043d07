package db

import (
	"context"
	"fmt"
)

// migrations are applied in order. The schema version is tracked in
// PRAGMA user_version, so entries must never be reordered or edited.
var migrations = []string{
	// 1: initial schema
	`
	CREATE TABLE IF NOT EXISTS tasks (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		title            TEXT NOT NULL,
		description      TEXT NOT NULL DEFAULT '',
		due_at           TEXT,
		priority         TEXT NOT NULL CHECK(priority IN ('high', 'medium', 'low')),
		difficulty       TEXT NOT NULL CHECK(difficulty IN ('hard', 'medium', 'easy')),
		completed        INTEGER NOT NULL DEFAULT 0,
		duration_minutes INTEGER NOT NULL DEFAULT 60,
		created_at       TEXT NOT NULL,
		completed_at     TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_completed_due ON tasks(completed, due_at);

	CREATE TABLE IF NOT EXISTS timetable_entries (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		title      TEXT NOT NULL,
		weekday    INTEGER NOT NULL CHECK(weekday BETWEEN 0 AND 6),
		start_time TEXT NOT NULL,
		end_time   TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_timetable_weekday ON timetable_entries(weekday, start_time);

	CREATE TABLE IF NOT EXISTS feedback_logs (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		logged_at  TEXT NOT NULL,
		mood       TEXT NOT NULL CHECK(mood IN ('great', 'good', 'neutral', 'tired', 'stressed')),
		energy     INTEGER NOT NULL CHECK(energy BETWEEN 1 AND 5),
		stress     INTEGER NOT NULL DEFAULT 0,
		comment    TEXT NOT NULL DEFAULT ''
	);
	`,
	// 2: commitment location and notes
	`
	ALTER TABLE timetable_entries ADD COLUMN venue TEXT NOT NULL DEFAULT '';
	ALTER TABLE timetable_entries ADD COLUMN details TEXT NOT NULL DEFAULT '';
	`,
}

// migrate brings the schema up to date.
func (s *SQLite) migrate(ctx context.Context) error {
	var version int
	if err := s.db.QueryRowContext(ctx, `PRAGMA user_version`).Scan(&version); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for i := version; i < len(migrations); i++ {
		if err := s.applyMigration(ctx, i+1, migrations[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLite) applyMigration(ctx context.Context, version int, query string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning migration %d: %w", version, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("applying migration %d: %w", version, err)
	}
	// PRAGMA does not accept bound parameters.
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", version)); err != nil {
		return fmt.Errorf("recording migration %d: %w", version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migration %d: %w", version, err)
	}
	return nil
}

// SchemaVersion returns the applied schema version.
func (s *SQLite) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	if err := s.db.QueryRowContext(ctx, `PRAGMA user_version`).Scan(&version); err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return version, nil
}
