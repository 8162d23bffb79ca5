package service

import (
	"context"
	"errors"
)

// ErrAuth marks failures caused by missing or rejected credentials.
var ErrAuth = errors.New("auth error")

// Service defines the task store operations used by commands.
// Each call performs its own load and, when it mutates, its own save.
type Service interface {
	// Load returns all tasks in stored order with serial numbers recomputed.
	// On a corrupt store it returns an empty slice together with the error.
	Load() ([]Task, error)

	// Add creates a todo task and returns it.
	Add(description string) (Task, error)

	// SetStatus sets the status of the referenced task.
	SetStatus(ref Reference, status Status) (Task, error)

	// UpdateDescription replaces the description of the task with the exact id.
	UpdateDescription(id, description string) (Task, error)

	// Delete removes the referenced task and returns it.
	Delete(ref Reference) (Task, error)
}

// Remote defines the backend the mirror pushes tasks to.
// All Google Tasks API calls go through this interface.
type Remote interface {
	// EnsureList returns the list with the given title (case-insensitive,
	// trimmed), creating it when missing.
	EnsureList(ctx context.Context, title string) (TaskList, error)

	// ListTasks returns every task in a list, including completed ones.
	ListTasks(ctx context.Context, listID string) ([]RemoteTask, error)

	// CreateTask creates a task in the list.
	CreateTask(ctx context.Context, listID string, task RemoteTask) error

	// UpdateTask patches title, notes and completion of an existing task.
	UpdateTask(ctx context.Context, listID string, task RemoteTask) error

	// DeleteTask deletes a task.
	DeleteTask(ctx context.Context, listID, taskID string) error
}
