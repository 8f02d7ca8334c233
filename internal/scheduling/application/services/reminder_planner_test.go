package services

import (
	"testing"

	"github.com/felixgeelhaar/apexhour/internal/productivity/domain/task"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderPlanner_PlanDay(t *testing.T) {
	planner := NewReminderPlanner()

	t.Run("plans one reminder per scheduled open task", func(t *testing.T) {
		settings := testSettings() // lead 15 minutes

		tasks := []*task.Task{
			scheduledTask(t, "Standup", task.CategoryShallowWork, clock(t, 9, 0), clock(t, 9, 30)),
			scheduledTask(t, "Deep dive", task.CategoryDeepWork, clock(t, 10, 0), clock(t, 11, 0)),
		}

		reminders := planner.PlanDay(testDate(), settings, tasks)

		require.Len(t, reminders, 2)
		assert.Equal(t, clock(t, 8, 45), reminders[0].At)
		assert.Equal(t, "Standup", reminders[0].Title)
		assert.Equal(t, ReminderKindTask, reminders[0].Kind)
		assert.Equal(t, clock(t, 9, 45), reminders[1].At)
	})

	t.Run("skips completed, cancelled and unscheduled tasks", func(t *testing.T) {
		settings := testSettings()

		done := scheduledTask(t, "Done", task.CategoryShallowWork, clock(t, 9, 0), clock(t, 9, 30))
		require.NoError(t, done.Complete())

		dropped := scheduledTask(t, "Dropped", task.CategoryShallowWork, clock(t, 10, 0), clock(t, 10, 30))
		require.NoError(t, dropped.Cancel())

		unscheduled, err := task.NewTask("Someday", task.CategoryDeepWork)
		require.NoError(t, err)

		reminders := planner.PlanDay(testDate(), settings, []*task.Task{done, dropped, unscheduled})

		assert.Empty(t, reminders)
	})

	t.Run("hard stop adds a wind-down cue before the apex hour", func(t *testing.T) {
		settings := testSettings()
		settings.HardStopEnabled = true

		reminders := planner.PlanDay(testDate(), settings, nil)

		require.Len(t, reminders, 1)
		assert.Equal(t, ReminderKindWindDown, reminders[0].Kind)
		assert.Equal(t, uuid.Nil, reminders[0].TaskID)
		// Apex hour starts 17:00; lead is 15 minutes.
		assert.Equal(t, clock(t, 16, 45), reminders[0].At)
	})

	t.Run("disabled notifications plan nothing", func(t *testing.T) {
		settings := testSettings()
		settings.NotificationsEnabled = false
		settings.HardStopEnabled = true

		tasks := []*task.Task{
			scheduledTask(t, "Standup", task.CategoryShallowWork, clock(t, 9, 0), clock(t, 9, 30)),
		}

		assert.Nil(t, planner.PlanDay(testDate(), settings, tasks))
	})

	t.Run("orders reminders by fire time", func(t *testing.T) {
		settings := testSettings()
		settings.HardStopEnabled = true

		tasks := []*task.Task{
			scheduledTask(t, "Late sync", task.CategoryShallowWork, clock(t, 16, 0), clock(t, 16, 30)),
			scheduledTask(t, "Standup", task.CategoryShallowWork, clock(t, 9, 0), clock(t, 9, 30)),
		}

		reminders := planner.PlanDay(testDate(), settings, tasks)

		require.Len(t, reminders, 3)
		for i := 1; i < len(reminders); i++ {
			assert.False(t, reminders[i].At.Before(reminders[i-1].At))
		}
		assert.Equal(t, ReminderKindWindDown, reminders[2].Kind)
	})
}
