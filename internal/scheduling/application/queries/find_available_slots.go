package queries

import (
	"context"
	"time"

	"github.com/felixgeelhaar/apexhour/internal/productivity/domain/task"
	"github.com/felixgeelhaar/apexhour/internal/scheduling/application/services"

	prefs "github.com/felixgeelhaar/apexhour/internal/preferences/domain"
)

// TimeSlotDTO is a data transfer object for available time slots.
type TimeSlotDTO struct {
	Start       time.Time
	End         time.Time
	DurationMin int
	Optimal     bool
}

// FindAvailableSlotsQuery contains the parameters for finding available slots.
type FindAvailableSlotsQuery struct {
	Category       task.Category
	Duration       time.Duration
	Date           time.Time
	MaxSuggestions int
}

// FindAvailableSlotsHandler handles the FindAvailableSlotsQuery.
type FindAvailableSlotsHandler struct {
	taskRepo     task.Repository
	settingsRepo prefs.Repository
	slots        *services.SlotFinder
}

// NewFindAvailableSlotsHandler creates a new FindAvailableSlotsHandler.
func NewFindAvailableSlotsHandler(
	taskRepo task.Repository,
	settingsRepo prefs.Repository,
	slots *services.SlotFinder,
) *FindAvailableSlotsHandler {
	return &FindAvailableSlotsHandler{
		taskRepo:     taskRepo,
		settingsRepo: settingsRepo,
		slots:        slots,
	}
}

// Handle executes the FindAvailableSlotsQuery.
func (h *FindAvailableSlotsHandler) Handle(ctx context.Context, query FindAvailableSlotsQuery) ([]TimeSlotDTO, error) {
	settings, err := h.settingsRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	dayTasks, err := h.taskRepo.FindByDate(ctx, query.Date)
	if err != nil {
		return nil, err
	}

	found := h.slots.Find(query.Category, query.Duration, query.Date, settings, dayTasks, query.MaxSuggestions)

	dtos := make([]TimeSlotDTO, len(found))
	for i, slot := range found {
		dtos[i] = TimeSlotDTO{
			Start:       slot.Start,
			End:         slot.End,
			DurationMin: int(slot.Duration().Minutes()),
			Optimal:     slot.Optimal,
		}
	}

	return dtos, nil
}
