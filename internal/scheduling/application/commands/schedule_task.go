package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/apexhour/internal/productivity/domain/task"
	"github.com/felixgeelhaar/apexhour/internal/scheduling/application/services"
	"github.com/felixgeelhaar/apexhour/internal/scheduling/domain"
	"github.com/google/uuid"

	prefs "github.com/felixgeelhaar/apexhour/internal/preferences/domain"
)

var (
	// ErrTaskNotFound is returned when the referenced task does not exist.
	ErrTaskNotFound = errors.New("task not found")
)

// ScheduleTaskCommand contains the data needed to place a task on the calendar.
type ScheduleTaskCommand struct {
	TaskID uuid.UUID
	Start  time.Time
	End    time.Time
	// Force applies the interval even when conflicts were found.
	Force bool
}

// ScheduleTaskResult reports whether the interval was applied and carries the
// full validation outcome so callers can render conflicts and suggestions.
type ScheduleTaskResult struct {
	Scheduled  bool
	Validation *domain.ValidationResult
}

// ScheduleTaskHandler handles the ScheduleTaskCommand.
type ScheduleTaskHandler struct {
	taskRepo     task.Repository
	settingsRepo prefs.Repository
	engine       *services.RuleEngine
	logger       *slog.Logger
}

// NewScheduleTaskHandler creates a new ScheduleTaskHandler.
func NewScheduleTaskHandler(
	taskRepo task.Repository,
	settingsRepo prefs.Repository,
	engine *services.RuleEngine,
	logger *slog.Logger,
) *ScheduleTaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScheduleTaskHandler{
		taskRepo:     taskRepo,
		settingsRepo: settingsRepo,
		engine:       engine,
		logger:       logger,
	}
}

// Handle validates the proposed interval and, when it is free of conflicts
// (or Force is set), applies it to the task and persists the change.
// Warnings never block scheduling.
func (h *ScheduleTaskHandler) Handle(ctx context.Context, cmd ScheduleTaskCommand) (*ScheduleTaskResult, error) {
	t, err := h.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTaskNotFound
	}

	settings, err := h.settingsRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	sameDay, err := h.taskRepo.FindByDate(ctx, cmd.Start)
	if err != nil {
		return nil, err
	}

	validation, err := h.engine.Validate(t, cmd.Start, cmd.End, settings, sameDay)
	if err != nil {
		return nil, err
	}

	result := &ScheduleTaskResult{Validation: validation}
	if !validation.Valid && !cmd.Force {
		h.logger.Info("schedule rejected",
			"task_id", cmd.TaskID,
			"conflicts", len(validation.Conflicts),
		)
		return result, nil
	}

	if err := t.Schedule(cmd.Start, cmd.End); err != nil {
		return nil, err
	}
	if err := h.taskRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	result.Scheduled = true
	h.logger.Info("task scheduled",
		"task_id", cmd.TaskID,
		"start", cmd.Start,
		"end", cmd.End,
		"forced", cmd.Force && !validation.Valid,
		"warnings", len(validation.Warnings),
	)

	return result, nil
}
