package services

import (
	"context"
	"sort"
	"time"

	prefs "github.com/felixgeelhaar/apexhour/internal/preferences/domain"
	"github.com/felixgeelhaar/apexhour/internal/productivity/domain/task"
	"github.com/google/uuid"
)

// ReminderKind distinguishes task reminders from the wind-down cue.
type ReminderKind string

const (
	ReminderKindTask     ReminderKind = "task"
	ReminderKindWindDown ReminderKind = "wind_down"
)

// Reminder is a planned local notification.
type Reminder struct {
	TaskID uuid.UUID // uuid.Nil for wind-down reminders
	Kind   ReminderKind
	Title  string
	At     time.Time
}

// Notifier delivers reminders. Delivery is a platform concern; the core
// only plans when reminders should fire.
type Notifier interface {
	Notify(ctx context.Context, r Reminder) error
}

// ReminderPlanner computes reminder times for a day from already-fetched
// settings and tasks. It performs no I/O.
type ReminderPlanner struct{}

// NewReminderPlanner creates a new reminder planner.
func NewReminderPlanner() *ReminderPlanner {
	return &ReminderPlanner{}
}

// PlanDay returns the reminders for the given date, ordered by fire time.
// Each scheduled, still-open task gets a reminder at start minus the
// configured lead. With hard stop enabled, a wind-down cue fires before the
// apex hour begins. Returns nothing when notifications are disabled.
func (p *ReminderPlanner) PlanDay(date time.Time, settings prefs.Settings, tasks []*task.Task) []Reminder {
	if !settings.NotificationsEnabled {
		return nil
	}

	lead := settings.NotificationLead()
	reminders := make([]Reminder, 0, len(tasks)+1)

	for _, t := range tasks {
		if t.IsCompleted() || t.IsCancelled() {
			continue
		}
		start, _, ok := t.Interval()
		if !ok {
			continue
		}
		reminders = append(reminders, Reminder{
			TaskID: t.ID(),
			Kind:   ReminderKindTask,
			Title:  t.Title(),
			At:     start.Add(-lead),
		})
	}

	if settings.HardStopEnabled {
		reminders = append(reminders, Reminder{
			TaskID: uuid.Nil,
			Kind:   ReminderKindWindDown,
			Title:  "Wind-down begins soon",
			At:     settings.ApexHourStart(date).Add(-lead),
		})
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].At.Before(reminders[j].At)
	})

	return reminders
}
