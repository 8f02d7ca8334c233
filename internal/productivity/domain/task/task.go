package task

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/felixgeelhaar/apexhour/internal/shared/domain"
	"github.com/google/uuid"
)

var (
	ErrEmptyTitle          = errors.New("task title cannot be empty")
	ErrUnknownCategory     = errors.New("unknown task category")
	ErrInvalidInterval     = errors.New("scheduled end must not be before start")
	ErrTaskAlreadyComplete = errors.New("task is already completed")
	ErrTaskCancelled       = errors.New("task is cancelled")
)

// DefaultEstimatedDuration is used when a task has no explicit estimate yet.
const DefaultEstimatedDuration = 30 * time.Minute

// Category classifies a task by cognitive load. The set is closed: the
// apex-hour exemption and the slot optimality windows are keyed on it.
type Category string

const (
	CategoryDeepWork    Category = "deep_work"
	CategoryShallowWork Category = "shallow_work"
	CategoryWindDown    Category = "wind_down"
)

// ParseCategory converts user input into a Category.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deep_work", "deep-work", "deep":
		return CategoryDeepWork, nil
	case "shallow_work", "shallow-work", "shallow":
		return CategoryShallowWork, nil
	case "wind_down", "wind-down", "winddown":
		return CategoryWindDown, nil
	default:
		return "", ErrUnknownCategory
	}
}

func (c Category) String() string { return string(c) }

// ApexExempt reports whether tasks of this category may occupy the
// protected apex-hour window. Only wind-down work is allowed there.
func (c Category) ApexExempt() bool {
	return c == CategoryWindDown
}

// Status represents the task lifecycle state.
type Status int

const (
	StatusPending Status = iota
	StatusInProgress
	StatusCompleted
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusInProgress:
		return "in_progress"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ParseStatus converts a persisted or user-supplied string into a Status.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, nil
	case "in_progress", "in-progress":
		return StatusInProgress, nil
	case "completed", "done":
		return StatusCompleted, nil
	case "cancelled", "canceled":
		return StatusCancelled, nil
	default:
		return StatusPending, errors.New("unknown task status")
	}
}

// Task represents a unit of work to be done before the day ends.
type Task struct {
	domain.BaseAggregateRoot
	title             string
	description       string
	tags              []string
	category          Category
	status            Status
	scheduledStart    *time.Time
	scheduledEnd      *time.Time
	estimatedDuration time.Duration
	completedAt       *time.Time
}

// NewTask creates a new pending task with the given title and category.
func NewTask(title string, category Category) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	switch category {
	case CategoryDeepWork, CategoryShallowWork, CategoryWindDown:
	default:
		return nil, ErrUnknownCategory
	}

	t := &Task{
		BaseAggregateRoot: domain.NewBaseAggregateRoot(),
		title:             title,
		category:          category,
		status:            StatusPending,
		estimatedDuration: DefaultEstimatedDuration,
	}

	t.AddDomainEvent(NewTaskCreated(t.ID(), t.title, t.category))

	return t, nil
}

// Getters

func (t *Task) Title() string                    { return t.title }
func (t *Task) Description() string              { return t.description }
func (t *Task) Category() Category               { return t.category }
func (t *Task) Status() Status                   { return t.status }
func (t *Task) ScheduledStart() *time.Time       { return t.scheduledStart }
func (t *Task) ScheduledEnd() *time.Time         { return t.scheduledEnd }
func (t *Task) EstimatedDuration() time.Duration { return t.estimatedDuration }
func (t *Task) CompletedAt() *time.Time          { return t.completedAt }
func (t *Task) IsCompleted() bool                { return t.status == StatusCompleted }
func (t *Task) IsCancelled() bool                { return t.status == StatusCancelled }

// Tags returns a copy of the tag set, sorted for stable output.
func (t *Task) Tags() []string {
	tags := make([]string, len(t.tags))
	copy(tags, t.tags)
	return tags
}

// IsScheduled reports whether the task has a complete scheduled interval.
func (t *Task) IsScheduled() bool {
	return t.scheduledStart != nil && t.scheduledEnd != nil
}

// Interval returns the scheduled interval when both endpoints are set.
func (t *Task) Interval() (start, end time.Time, ok bool) {
	if !t.IsScheduled() {
		return time.Time{}, time.Time{}, false
	}
	return *t.scheduledStart, *t.scheduledEnd, true
}

func (t *Task) guardMutable() error {
	if t.IsCompleted() {
		return ErrTaskAlreadyComplete
	}
	if t.IsCancelled() {
		return ErrTaskCancelled
	}
	return nil
}

// SetTitle updates the task title.
func (t *Task) SetTitle(title string) error {
	if err := t.guardMutable(); err != nil {
		return err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	t.title = title
	t.Touch()
	return nil
}

// SetDescription updates the task description.
func (t *Task) SetDescription(description string) error {
	if err := t.guardMutable(); err != nil {
		return err
	}
	t.description = strings.TrimSpace(description)
	t.Touch()
	return nil
}

// SetCategory changes the cognitive-load category.
func (t *Task) SetCategory(category Category) error {
	if err := t.guardMutable(); err != nil {
		return err
	}
	switch category {
	case CategoryDeepWork, CategoryShallowWork, CategoryWindDown:
	default:
		return ErrUnknownCategory
	}
	t.category = category
	t.Touch()
	return nil
}

// SetEstimatedDuration updates the estimate used for unscheduled tasks.
func (t *Task) SetEstimatedDuration(d time.Duration) error {
	if err := t.guardMutable(); err != nil {
		return err
	}
	if d <= 0 {
		return errors.New("estimated duration must be positive")
	}
	t.estimatedDuration = d
	t.Touch()
	return nil
}

// SetTags replaces the tag set. Tags are trimmed, deduplicated and sorted;
// order carries no meaning.
func (t *Task) SetTags(tags []string) error {
	if err := t.guardMutable(); err != nil {
		return err
	}
	seen := make(map[string]bool, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		normalized = append(normalized, tag)
	}
	sort.Strings(normalized)
	t.tags = normalized
	t.Touch()
	return nil
}

// Schedule assigns the task a concrete interval.
func (t *Task) Schedule(start, end time.Time) error {
	if err := t.guardMutable(); err != nil {
		return err
	}
	if end.Before(start) {
		return ErrInvalidInterval
	}
	t.scheduledStart = &start
	t.scheduledEnd = &end
	t.Touch()
	t.AddDomainEvent(NewTaskScheduled(t.ID(), start, end))
	return nil
}

// ClearSchedule removes the scheduled interval.
func (t *Task) ClearSchedule() error {
	if err := t.guardMutable(); err != nil {
		return err
	}
	t.scheduledStart = nil
	t.scheduledEnd = nil
	t.Touch()
	return nil
}

// Start marks the task as in progress.
func (t *Task) Start() error {
	if err := t.guardMutable(); err != nil {
		return err
	}
	if t.status == StatusInProgress {
		return nil // Idempotent
	}
	t.status = StatusInProgress
	t.Touch()
	return nil
}

// Complete marks the task as completed and records the completion time.
func (t *Task) Complete() error {
	if err := t.guardMutable(); err != nil {
		return err
	}

	now := time.Now().UTC()
	t.status = StatusCompleted
	t.completedAt = &now
	t.Touch()

	t.AddDomainEvent(NewTaskCompleted(t.ID()))

	return nil
}

// Cancel marks the task as cancelled.
func (t *Task) Cancel() error {
	if t.IsCancelled() {
		return nil // Idempotent
	}
	if t.IsCompleted() {
		return ErrTaskAlreadyComplete
	}

	t.status = StatusCancelled
	t.Touch()

	t.AddDomainEvent(NewTaskCancelled(t.ID()))

	return nil
}

// Rehydrate recreates a task from persisted state.
func Rehydrate(
	id uuid.UUID,
	title, description string,
	tags []string,
	category Category,
	status Status,
	scheduledStart, scheduledEnd *time.Time,
	estimatedDuration time.Duration,
	completedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Task {
	return &Task{
		BaseAggregateRoot: domain.RehydrateBaseAggregateRoot(domain.RehydrateBaseEntity(id, createdAt, updatedAt)),
		title:             title,
		description:       description,
		tags:              tags,
		category:          category,
		status:            status,
		scheduledStart:    scheduledStart,
		scheduledEnd:      scheduledEnd,
		estimatedDuration: estimatedDuration,
		completedAt:       completedAt,
	}
}
