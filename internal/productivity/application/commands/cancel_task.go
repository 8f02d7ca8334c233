package commands

import (
	"context"

	"github.com/felixgeelhaar/apexhour/internal/productivity/domain/task"
	"github.com/google/uuid"
)

// CancelTaskCommand contains the data needed to cancel a task.
type CancelTaskCommand struct {
	TaskID uuid.UUID
}

// CancelTaskHandler handles the CancelTaskCommand.
type CancelTaskHandler struct {
	taskRepo task.Repository
}

// NewCancelTaskHandler creates a new CancelTaskHandler.
func NewCancelTaskHandler(taskRepo task.Repository) *CancelTaskHandler {
	return &CancelTaskHandler{taskRepo: taskRepo}
}

// Handle executes the CancelTaskCommand.
func (h *CancelTaskHandler) Handle(ctx context.Context, cmd CancelTaskCommand) error {
	t, err := h.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrTaskNotFound
	}

	if err := t.Cancel(); err != nil {
		return err
	}

	return h.taskRepo.Save(ctx, t)
}
