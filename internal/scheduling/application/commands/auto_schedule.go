package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/apexhour/internal/productivity/domain/task"
	"github.com/felixgeelhaar/apexhour/internal/scheduling/application/services"
	"github.com/felixgeelhaar/apexhour/internal/scheduling/domain"
	"github.com/google/uuid"

	prefs "github.com/felixgeelhaar/apexhour/internal/preferences/domain"
)

const (
	// fallbackScanDays is how many days past the preferred date are searched
	// for alternates when the preferred date is full.
	fallbackScanDays = 7

	// maxAlternateDates caps the alternates reported back.
	maxAlternateDates = 3
)

// AutoScheduleCommand contains the data needed to auto-schedule a task.
type AutoScheduleCommand struct {
	TaskID        uuid.UUID
	PreferredDate time.Time
}

// AutoScheduleResult contains the outcome of auto-scheduling.
type AutoScheduleResult struct {
	Scheduled      bool
	Start          time.Time
	End            time.Time
	Message        string
	AlternateDates []time.Time
}

// AutoScheduleHandler handles the AutoScheduleCommand.
type AutoScheduleHandler struct {
	taskRepo     task.Repository
	settingsRepo prefs.Repository
	slots        *services.SlotFinder
	logger       *slog.Logger
}

// NewAutoScheduleHandler creates a new AutoScheduleHandler.
func NewAutoScheduleHandler(
	taskRepo task.Repository,
	settingsRepo prefs.Repository,
	slots *services.SlotFinder,
	logger *slog.Logger,
) *AutoScheduleHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AutoScheduleHandler{
		taskRepo:     taskRepo,
		settingsRepo: settingsRepo,
		slots:        slots,
		logger:       logger,
	}
}

// Handle places the task into the best slot on the preferred date. When the
// preferred date has no eligible slot it scans the following week and
// reports up to three alternate dates without scheduling anything.
func (h *AutoScheduleHandler) Handle(ctx context.Context, cmd AutoScheduleCommand) (*AutoScheduleResult, error) {
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

	duration := t.EstimatedDuration()

	slot, err := h.bestSlot(ctx, t.Category(), duration, cmd.PreferredDate, settings)
	if err != nil {
		return nil, err
	}
	if slot != nil {
		if err := t.Schedule(slot.Start, slot.End); err != nil {
			return nil, err
		}
		if err := h.taskRepo.Save(ctx, t); err != nil {
			return nil, err
		}
		h.logger.Info("task auto-scheduled",
			"task_id", cmd.TaskID,
			"start", slot.Start,
			"optimal", slot.Optimal,
		)
		return &AutoScheduleResult{
			Scheduled: true,
			Start:     slot.Start,
			End:       slot.End,
			Message:   fmt.Sprintf("scheduled %q at %s", t.Title(), slot.Start.Format("2006-01-02 15:04")),
		}, nil
	}

	alternates, err := h.alternateDates(ctx, t.Category(), duration, cmd.PreferredDate, settings)
	if err != nil {
		return nil, err
	}

	h.logger.Info("auto-schedule found no slot",
		"task_id", cmd.TaskID,
		"preferred_date", cmd.PreferredDate.Format("2006-01-02"),
		"alternates", len(alternates),
	)

	msg := "no free slot on the preferred date"
	if len(alternates) == 0 {
		msg = "no free slot on the preferred date or the following week"
	}
	return &AutoScheduleResult{
		Scheduled:      false,
		Message:        msg,
		AlternateDates: alternates,
	}, nil
}

// bestSlot returns the top-ranked eligible slot for the date, or nil when the
// day has none.
func (h *AutoScheduleHandler) bestSlot(
	ctx context.Context,
	category task.Category,
	duration time.Duration,
	date time.Time,
	settings prefs.Settings,
) (*domain.TimeSlot, error) {
	dayTasks, err := h.taskRepo.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	found := h.slots.Find(category, duration, date, settings, dayTasks, 1)
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

// alternateDates scans the week after the preferred date for days with at
// least one eligible slot.
func (h *AutoScheduleHandler) alternateDates(
	ctx context.Context,
	category task.Category,
	duration time.Duration,
	preferred time.Time,
	settings prefs.Settings,
) ([]time.Time, error) {
	var alternates []time.Time
	for i := 1; i <= fallbackScanDays && len(alternates) < maxAlternateDates; i++ {
		day := preferred.AddDate(0, 0, i)
		slot, err := h.bestSlot(ctx, category, duration, day, settings)
		if err != nil {
			return nil, err
		}
		if slot != nil {
			alternates = append(alternates, day)
		}
	}
	return alternates, nil
}
