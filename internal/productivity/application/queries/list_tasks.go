package queries

import (
	"context"
	"time"

	"github.com/felixgeelhaar/apexhour/internal/productivity/domain/task"
)

// ListTasksQuery contains the parameters for listing tasks. A nil Date lists
// every task; otherwise only tasks scheduled on that calendar day are
// returned. Status and Category filter the result when non-empty.
type ListTasksQuery struct {
	Date     *time.Time
	Status   string
	Category string
}

// ListTasksHandler handles the ListTasksQuery.
type ListTasksHandler struct {
	taskRepo task.Repository
}

// NewListTasksHandler creates a new ListTasksHandler.
func NewListTasksHandler(taskRepo task.Repository) *ListTasksHandler {
	return &ListTasksHandler{taskRepo: taskRepo}
}

// Handle executes the ListTasksQuery.
func (h *ListTasksHandler) Handle(ctx context.Context, query ListTasksQuery) ([]TaskDTO, error) {
	var (
		tasks []*task.Task
		err   error
	)
	if query.Date != nil {
		tasks, err = h.taskRepo.FindByDate(ctx, *query.Date)
	} else {
		tasks, err = h.taskRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	var status *task.Status
	if query.Status != "" {
		s, err := task.ParseStatus(query.Status)
		if err != nil {
			return nil, err
		}
		status = &s
	}

	var category *task.Category
	if query.Category != "" {
		c, err := task.ParseCategory(query.Category)
		if err != nil {
			return nil, err
		}
		category = &c
	}

	dtos := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		if status != nil && t.Status() != *status {
			continue
		}
		if category != nil && t.Category() != *category {
			continue
		}
		dtos = append(dtos, toTaskDTO(t))
	}

	return dtos, nil
}
