package task

import (
	"time"

	sharedDomain "github.com/felixgeelhaar/apexhour/internal/shared/domain"
	"github.com/google/uuid"
)

const (
	AggregateType = "Task"

	EventTaskCreated   = "task.created"
	EventTaskScheduled = "task.scheduled"
	EventTaskCompleted = "task.completed"
	EventTaskCancelled = "task.cancelled"
)

// TaskCreated is emitted when a new task is created.
type TaskCreated struct {
	sharedDomain.BaseEvent
	Title    string `json:"title"`
	Category string `json:"category"`
}

// NewTaskCreated creates a TaskCreated event.
func NewTaskCreated(taskID uuid.UUID, title string, category Category) TaskCreated {
	return TaskCreated{
		BaseEvent: sharedDomain.NewBaseEvent(taskID, AggregateType, EventTaskCreated),
		Title:     title,
		Category:  string(category),
	}
}

// TaskScheduled is emitted when a task receives a concrete interval.
type TaskScheduled struct {
	sharedDomain.BaseEvent
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// NewTaskScheduled creates a TaskScheduled event.
func NewTaskScheduled(taskID uuid.UUID, start, end time.Time) TaskScheduled {
	return TaskScheduled{
		BaseEvent: sharedDomain.NewBaseEvent(taskID, AggregateType, EventTaskScheduled),
		StartTime: start,
		EndTime:   end,
	}
}

// TaskCompleted is emitted when a task is marked completed.
type TaskCompleted struct {
	sharedDomain.BaseEvent
}

// NewTaskCompleted creates a TaskCompleted event.
func NewTaskCompleted(taskID uuid.UUID) TaskCompleted {
	return TaskCompleted{
		BaseEvent: sharedDomain.NewBaseEvent(taskID, AggregateType, EventTaskCompleted),
	}
}

// TaskCancelled is emitted when a task is cancelled.
type TaskCancelled struct {
	sharedDomain.BaseEvent
}

// NewTaskCancelled creates a TaskCancelled event.
func NewTaskCancelled(taskID uuid.UUID) TaskCancelled {
	return TaskCancelled{
		BaseEvent: sharedDomain.NewBaseEvent(taskID, AggregateType, EventTaskCancelled),
	}
}
