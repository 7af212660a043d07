package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/javiermolinar/neuromind/internal/task"
)

const taskColumns = `id, title, description, due_at, priority, difficulty,
	completed, duration_minutes, created_at, completed_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*task.Task, error) {
	var (
		t           task.Task
		due         sql.NullString
		completed   int
		createdAt   string
		completedAt sql.NullString
	)

	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&due,
		&t.Priority,
		&t.Difficulty,
		&completed,
		&t.DurationMinutes,
		&createdAt,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Completed = completed != 0
	if t.Due, err = parseNullTime(due); err != nil {
		return nil, fmt.Errorf("parsing due date: %w", err)
	}
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}
	if t.CompletedAt, err = parseNullTime(completedAt); err != nil {
		return nil, fmt.Errorf("parsing completed at: %w", err)
	}
	return &t, nil
}

// CreateTask adds a new task to the repository.
func (s *SQLite) CreateTask(ctx context.Context, t *task.Task) error {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO tasks (
			title, description, due_at, priority, difficulty,
			completed, duration_minutes, created_at, completed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		t.Title,
		t.Description,
		formatNullTime(t.Due),
		t.Priority,
		t.Difficulty,
		boolToInt(t.Completed),
		t.Duration(),
		formatTime(t.CreatedAt),
		formatNullTime(t.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	t.ID = id

	s.notify()
	return nil
}

// GetTask retrieves a task by ID.
func (s *SQLite) GetTask(ctx context.Context, id int64) (*task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`

	t, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", task.ErrTaskNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying task: %w", err)
	}
	return t, nil
}

// ListTasks returns all tasks. Pending tasks come first, each group ordered by
// due date with undated tasks last.
func (s *SQLite) ListTasks(ctx context.Context) ([]*task.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		ORDER BY completed ASC, due_at IS NULL, due_at ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []*task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask replaces the editable fields of a task.
func (s *SQLite) UpdateTask(ctx context.Context, t *task.Task) error {
	query := `
		UPDATE tasks
		SET title = ?, description = ?, due_at = ?, priority = ?, difficulty = ?, duration_minutes = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		t.Title,
		t.Description,
		formatNullTime(t.Due),
		t.Priority,
		t.Difficulty,
		t.Duration(),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	if err := requireRow(result, task.ErrTaskNotFound, t.ID); err != nil {
		return err
	}

	s.notify()
	return nil
}

// SetCompleted marks a task as completed, recording the completion time, or
// as pending again.
func (s *SQLite) SetCompleted(ctx context.Context, id int64, completed bool) error {
	var completedAt sql.NullString
	if completed {
		completedAt = sql.NullString{String: formatTime(time.Now()), Valid: true}
	}

	query := `UPDATE tasks SET completed = ?, completed_at = ? WHERE id = ?`
	result, err := s.db.ExecContext(ctx, query, boolToInt(completed), completedAt, id)
	if err != nil {
		return fmt.Errorf("setting task completion: %w", err)
	}
	if err := requireRow(result, task.ErrTaskNotFound, id); err != nil {
		return err
	}

	s.notify()
	return nil
}

// DeleteTask removes a task.
func (s *SQLite) DeleteTask(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	if err := requireRow(result, task.ErrTaskNotFound, id); err != nil {
		return err
	}

	s.notify()
	return nil
}

// DeleteAllTasks removes every task.
func (s *SQLite) DeleteAllTasks(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("deleting tasks: %w", err)
	}
	s.notify()
	return nil
}

// requireRow returns notFound wrapped with id when result affected no rows.
func requireRow(result sql.Result, notFound error, id int64) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %d", notFound, id)
	}
	return nil
}
