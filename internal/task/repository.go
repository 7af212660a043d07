package task

import "context"

// Repository defines the storage interface for tasks.
type Repository interface {
	// CreateTask adds a new task to the repository and sets its ID.
	CreateTask(ctx context.Context, task *Task) error

	// GetTask retrieves a task by ID. Returns ErrTaskNotFound if it does not exist.
	GetTask(ctx context.Context, id int64) (*Task, error)

	// ListTasks returns all tasks, pending first, then by due date (tasks without one last).
	ListTasks(ctx context.Context) ([]*Task, error)

	// UpdateTask replaces the editable fields of an existing task.
	UpdateTask(ctx context.Context, task *Task) error

	// SetCompleted marks a task as completed or pending again.
	SetCompleted(ctx context.Context, id int64, completed bool) error

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, id int64) error

	// DeleteAllTasks removes every task.
	DeleteAllTasks(ctx context.Context) error
}
