package task

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines persistence operations for tasks.
type Repository interface {
	// Save persists a task (insert or update).
	Save(ctx context.Context, t *Task) error

	// FindByID retrieves a task by its ID. Returns nil when not found.
	FindByID(ctx context.Context, id uuid.UUID) (*Task, error)

	// FindByDate retrieves tasks whose scheduled start falls on the given
	// calendar day, ordered by scheduled start.
	FindByDate(ctx context.Context, date time.Time) ([]*Task, error)

	// List retrieves all tasks, newest first.
	List(ctx context.Context) ([]*Task, error)

	// Delete removes a task.
	Delete(ctx context.Context, id uuid.UUID) error
}
