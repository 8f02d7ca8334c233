package commands

import (
	"context"
	"log/slog"

	"github.com/felixgeelhaar/apexhour/internal/productivity/domain/task"
	"github.com/google/uuid"
)

// UnscheduleTaskCommand contains the data needed to clear a task's interval.
type UnscheduleTaskCommand struct {
	TaskID uuid.UUID
}

// UnscheduleTaskHandler handles the UnscheduleTaskCommand.
type UnscheduleTaskHandler struct {
	taskRepo task.Repository
	logger   *slog.Logger
}

// NewUnscheduleTaskHandler creates a new UnscheduleTaskHandler.
func NewUnscheduleTaskHandler(taskRepo task.Repository, logger *slog.Logger) *UnscheduleTaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UnscheduleTaskHandler{taskRepo: taskRepo, logger: logger}
}

// Handle removes the task's scheduled interval and persists the change.
func (h *UnscheduleTaskHandler) Handle(ctx context.Context, cmd UnscheduleTaskCommand) error {
	t, err := h.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrTaskNotFound
	}

	if err := t.ClearSchedule(); err != nil {
		return err
	}
	if err := h.taskRepo.Save(ctx, t); err != nil {
		return err
	}

	h.logger.Info("task unscheduled", "task_id", cmd.TaskID)
	return nil
}
