package commands

import (
	"context"

	"github.com/felixgeelhaar/apexhour/internal/productivity/domain/task"
	"github.com/google/uuid"
)

// StartTaskCommand contains the data needed to start working on a task.
type StartTaskCommand struct {
	TaskID uuid.UUID
}

// StartTaskHandler handles the StartTaskCommand.
type StartTaskHandler struct {
	taskRepo task.Repository
}

// NewStartTaskHandler creates a new StartTaskHandler.
func NewStartTaskHandler(taskRepo task.Repository) *StartTaskHandler {
	return &StartTaskHandler{taskRepo: taskRepo}
}

// Handle executes the StartTaskCommand.
func (h *StartTaskHandler) Handle(ctx context.Context, cmd StartTaskCommand) error {
	t, err := h.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrTaskNotFound
	}

	if err := t.Start(); err != nil {
		return err
	}

	return h.taskRepo.Save(ctx, t)
}
