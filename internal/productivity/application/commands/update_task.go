package commands

import (
	"context"
	"time"

	"github.com/felixgeelhaar/apexhour/internal/productivity/domain/task"
	"github.com/google/uuid"
)

// UpdateTaskCommand contains the data needed to update a task. Nil fields
// are left unchanged.
type UpdateTaskCommand struct {
	TaskID          uuid.UUID
	Title           *string
	Description     *string
	Category        *string
	Tags            *[]string
	DurationMinutes *int
}

// UpdateTaskHandler handles the UpdateTaskCommand.
type UpdateTaskHandler struct {
	taskRepo task.Repository
}

// NewUpdateTaskHandler creates a new UpdateTaskHandler.
func NewUpdateTaskHandler(taskRepo task.Repository) *UpdateTaskHandler {
	return &UpdateTaskHandler{taskRepo: taskRepo}
}

// Handle executes the UpdateTaskCommand.
func (h *UpdateTaskHandler) Handle(ctx context.Context, cmd UpdateTaskCommand) error {
	t, err := h.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrTaskNotFound
	}

	if cmd.Title != nil {
		if err := t.SetTitle(*cmd.Title); err != nil {
			return err
		}
	}

	if cmd.Description != nil {
		if err := t.SetDescription(*cmd.Description); err != nil {
			return err
		}
	}

	if cmd.Category != nil {
		category, err := task.ParseCategory(*cmd.Category)
		if err != nil {
			return err
		}
		if err := t.SetCategory(category); err != nil {
			return err
		}
	}

	if cmd.Tags != nil {
		if err := t.SetTags(*cmd.Tags); err != nil {
			return err
		}
	}

	if cmd.DurationMinutes != nil {
		if err := t.SetEstimatedDuration(time.Duration(*cmd.DurationMinutes) * time.Minute); err != nil {
			return err
		}
	}

	return h.taskRepo.Save(ctx, t)
}
