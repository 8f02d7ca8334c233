package queries

import (
	"context"
	"errors"
	"time"

	"github.com/felixgeelhaar/apexhour/internal/productivity/domain/task"
	"github.com/felixgeelhaar/apexhour/internal/scheduling/application/services"
	"github.com/felixgeelhaar/apexhour/internal/scheduling/domain"
	"github.com/google/uuid"

	prefs "github.com/felixgeelhaar/apexhour/internal/preferences/domain"
)

// ErrTaskNotFound is returned when the referenced task does not exist.
var ErrTaskNotFound = errors.New("task not found")

// ValidateScheduleQuery contains a proposed interval to dry-run against the
// scheduling rules. Nothing is persisted.
type ValidateScheduleQuery struct {
	TaskID uuid.UUID
	Start  time.Time
	End    time.Time
}

// ValidateScheduleHandler handles the ValidateScheduleQuery.
type ValidateScheduleHandler struct {
	taskRepo     task.Repository
	settingsRepo prefs.Repository
	engine       *services.RuleEngine
}

// NewValidateScheduleHandler creates a new ValidateScheduleHandler.
func NewValidateScheduleHandler(
	taskRepo task.Repository,
	settingsRepo prefs.Repository,
	engine *services.RuleEngine,
) *ValidateScheduleHandler {
	return &ValidateScheduleHandler{
		taskRepo:     taskRepo,
		settingsRepo: settingsRepo,
		engine:       engine,
	}
}

// Handle executes the ValidateScheduleQuery.
func (h *ValidateScheduleHandler) Handle(ctx context.Context, query ValidateScheduleQuery) (*domain.ValidationResult, error) {
	t, err := h.taskRepo.FindByID(ctx, query.TaskID)
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

	sameDay, err := h.taskRepo.FindByDate(ctx, query.Start)
	if err != nil {
		return nil, err
	}

	return h.engine.Validate(t, query.Start, query.End, settings, sameDay)
}
