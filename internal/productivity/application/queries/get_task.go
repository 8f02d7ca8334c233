package queries

import (
	"context"
	"errors"
	"time"

	"github.com/felixgeelhaar/apexhour/internal/productivity/domain/task"
	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when the referenced task does not exist.
var ErrTaskNotFound = errors.New("task not found")

// TaskDTO is a data transfer object for tasks.
type TaskDTO struct {
	ID              uuid.UUID
	Title           string
	Description     string
	Category        string
	Status          string
	Tags            []string
	ScheduledStart  *time.Time
	ScheduledEnd    *time.Time
	DurationMinutes int
	CompletedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func toTaskDTO(t *task.Task) TaskDTO {
	return TaskDTO{
		ID:              t.ID(),
		Title:           t.Title(),
		Description:     t.Description(),
		Category:        string(t.Category()),
		Status:          t.Status().String(),
		Tags:            t.Tags(),
		ScheduledStart:  t.ScheduledStart(),
		ScheduledEnd:    t.ScheduledEnd(),
		DurationMinutes: int(t.EstimatedDuration().Minutes()),
		CompletedAt:     t.CompletedAt(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}
}

// GetTaskQuery contains the parameters for fetching one task.
type GetTaskQuery struct {
	TaskID uuid.UUID
}

// GetTaskHandler handles the GetTaskQuery.
type GetTaskHandler struct {
	taskRepo task.Repository
}

// NewGetTaskHandler creates a new GetTaskHandler.
func NewGetTaskHandler(taskRepo task.Repository) *GetTaskHandler {
	return &GetTaskHandler{taskRepo: taskRepo}
}

// Handle executes the GetTaskQuery.
func (h *GetTaskHandler) Handle(ctx context.Context, query GetTaskQuery) (*TaskDTO, error) {
	t, err := h.taskRepo.FindByID(ctx, query.TaskID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTaskNotFound
	}

	dto := toTaskDTO(t)
	return &dto, nil
}
