package queries

import (
	"context"
	"time"

	"github.com/felixgeelhaar/apexhour/internal/productivity/domain/task"
	"github.com/felixgeelhaar/apexhour/internal/scheduling/application/services"

	prefs "github.com/felixgeelhaar/apexhour/internal/preferences/domain"
)

// UpcomingRemindersQuery asks for the reminders planned for one day.
type UpcomingRemindersQuery struct {
	Date time.Time
}

// UpcomingRemindersHandler handles the UpcomingRemindersQuery.
type UpcomingRemindersHandler struct {
	taskRepo     task.Repository
	settingsRepo prefs.Repository
	planner      *services.ReminderPlanner
}

// NewUpcomingRemindersHandler creates a new UpcomingRemindersHandler.
func NewUpcomingRemindersHandler(
	taskRepo task.Repository,
	settingsRepo prefs.Repository,
	planner *services.ReminderPlanner,
) *UpcomingRemindersHandler {
	return &UpcomingRemindersHandler{
		taskRepo:     taskRepo,
		settingsRepo: settingsRepo,
		planner:      planner,
	}
}

// Handle executes the UpcomingRemindersQuery.
func (h *UpcomingRemindersHandler) Handle(ctx context.Context, query UpcomingRemindersQuery) ([]services.Reminder, error) {
	settings, err := h.settingsRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	dayTasks, err := h.taskRepo.FindByDate(ctx, query.Date)
	if err != nil {
		return nil, err
	}

	return h.planner.PlanDay(query.Date, settings, dayTasks), nil
}
