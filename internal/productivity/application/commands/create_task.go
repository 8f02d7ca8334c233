package commands

import (
	"context"
	"errors"
	"time"

	"github.com/felixgeelhaar/apexhour/internal/productivity/domain/task"
	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when the referenced task does not exist.
var ErrTaskNotFound = errors.New("task not found")

// CreateTaskCommand contains the data needed to create a task.
type CreateTaskCommand struct {
	Title           string
	Description     string
	Category        string
	Tags            []string
	DurationMinutes int
}

// CreateTaskResult contains the result of creating a task.
type CreateTaskResult struct {
	TaskID   uuid.UUID
	Category task.Category
}

// CreateTaskHandler handles the CreateTaskCommand.
type CreateTaskHandler struct {
	taskRepo task.Repository
}

// NewCreateTaskHandler creates a new CreateTaskHandler.
func NewCreateTaskHandler(taskRepo task.Repository) *CreateTaskHandler {
	return &CreateTaskHandler{taskRepo: taskRepo}
}

// Handle executes the CreateTaskCommand.
func (h *CreateTaskHandler) Handle(ctx context.Context, cmd CreateTaskCommand) (*CreateTaskResult, error) {
	category, err := task.ParseCategory(cmd.Category)
	if err != nil {
		return nil, err
	}

	t, err := task.NewTask(cmd.Title, category)
	if err != nil {
		return nil, err
	}

	if cmd.Description != "" {
		if err := t.SetDescription(cmd.Description); err != nil {
			return nil, err
		}
	}

	if len(cmd.Tags) > 0 {
		if err := t.SetTags(cmd.Tags); err != nil {
			return nil, err
		}
	}

	if cmd.DurationMinutes > 0 {
		if err := t.SetEstimatedDuration(time.Duration(cmd.DurationMinutes) * time.Minute); err != nil {
			return nil, err
		}
	}

	if err := h.taskRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	return &CreateTaskResult{TaskID: t.ID(), Category: t.Category()}, nil
}
