package queries

import (
	"context"
	"testing"
	"time"

	"github.com/felixgeelhaar/apexhour/internal/productivity/domain/task"
	"github.com/felixgeelhaar/apexhour/internal/scheduling/application/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	prefs "github.com/felixgeelhaar/apexhour/internal/preferences/domain"
)

type mockTaskRepo struct {
	mock.Mock
}

func (m *mockTaskRepo) Save(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTaskRepo) FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Task), args.Error(1)
}

func (m *mockTaskRepo) FindByDate(ctx context.Context, date time.Time) ([]*task.Task, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Task), args.Error(1)
}

func (m *mockTaskRepo) List(ctx context.Context) ([]*task.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Task), args.Error(1)
}

func (m *mockTaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockSettingsRepo struct {
	mock.Mock
}

func (m *mockSettingsRepo) Load(ctx context.Context) (prefs.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(prefs.Settings), args.Error(1)
}

func (m *mockSettingsRepo) Save(ctx context.Context, s prefs.Settings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func testSettings() prefs.Settings {
	s := prefs.DefaultSettings()
	s.WorkStartHour = 9
	s.WorkEndHour = 18
	s.ApexHourMinutes = 60
	return s
}

func testDate() time.Time {
	return time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
}

func clock(t *testing.T, hour, min int) time.Time {
	t.Helper()
	d := testDate()
	return time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, time.UTC)
}

func TestFindAvailableSlotsHandler_Handle(t *testing.T) {
	t.Run("maps finder output to DTOs", func(t *testing.T) {
		taskRepo := new(mockTaskRepo)
		settingsRepo := new(mockSettingsRepo)
		handler := NewFindAvailableSlotsHandler(taskRepo, settingsRepo, services.NewSlotFinder())

		settingsRepo.On("Load", mock.Anything).Return(testSettings(), nil)
		taskRepo.On("FindByDate", mock.Anything, testDate()).Return([]*task.Task{}, nil)

		dtos, err := handler.Handle(context.Background(), FindAvailableSlotsQuery{
			Category:       task.CategoryDeepWork,
			Duration:       time.Hour,
			Date:           testDate(),
			MaxSuggestions: 3,
		})

		require.NoError(t, err)
		require.Len(t, dtos, 3)
		assert.Equal(t, clock(t, 9, 0), dtos[0].Start)
		assert.Equal(t, clock(t, 10, 0), dtos[0].End)
		assert.Equal(t, 60, dtos[0].DurationMin)
		assert.True(t, dtos[0].Optimal)
		taskRepo.AssertExpectations(t)
		settingsRepo.AssertExpectations(t)
	})

	t.Run("busy day narrows the results", func(t *testing.T) {
		taskRepo := new(mockTaskRepo)
		settingsRepo := new(mockSettingsRepo)
		handler := NewFindAvailableSlotsHandler(taskRepo, settingsRepo, services.NewSlotFinder())

		busy, err := task.NewTask("Standup", task.CategoryShallowWork)
		require.NoError(t, err)
		require.NoError(t, busy.Schedule(clock(t, 9, 0), clock(t, 10, 0)))

		settingsRepo.On("Load", mock.Anything).Return(testSettings(), nil)
		taskRepo.On("FindByDate", mock.Anything, testDate()).Return([]*task.Task{busy}, nil)

		dtos, err := handler.Handle(context.Background(), FindAvailableSlotsQuery{
			Category:       task.CategoryDeepWork,
			Duration:       time.Hour,
			Date:           testDate(),
			MaxSuggestions: 1,
		})

		require.NoError(t, err)
		require.Len(t, dtos, 1)
		assert.Equal(t, clock(t, 10, 0), dtos[0].Start)
	})
}

func TestValidateScheduleHandler_Handle(t *testing.T) {
	newEngine := func() *services.RuleEngine {
		return services.NewRuleEngine(services.NewSlotFinder())
	}

	t.Run("dry-runs the rules without persisting", func(t *testing.T) {
		taskRepo := new(mockTaskRepo)
		settingsRepo := new(mockSettingsRepo)
		handler := NewValidateScheduleHandler(taskRepo, settingsRepo, newEngine())

		tk, err := task.NewTask("Refactor parser", task.CategoryDeepWork)
		require.NoError(t, err)

		start, end := clock(t, 17, 0), clock(t, 17, 30)
		taskRepo.On("FindByID", mock.Anything, tk.ID()).Return(tk, nil)
		settingsRepo.On("Load", mock.Anything).Return(testSettings(), nil)
		taskRepo.On("FindByDate", mock.Anything, start).Return([]*task.Task{}, nil)

		result, err := handler.Handle(context.Background(), ValidateScheduleQuery{
			TaskID: tk.ID(),
			Start:  start,
			End:    end,
		})

		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.False(t, tk.IsScheduled())
		taskRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("unknown task id", func(t *testing.T) {
		taskRepo := new(mockTaskRepo)
		settingsRepo := new(mockSettingsRepo)
		handler := NewValidateScheduleHandler(taskRepo, settingsRepo, newEngine())

		id := uuid.New()
		taskRepo.On("FindByID", mock.Anything, id).Return(nil, nil)

		_, err := handler.Handle(context.Background(), ValidateScheduleQuery{
			TaskID: id,
			Start:  clock(t, 10, 0),
			End:    clock(t, 11, 0),
		})

		assert.ErrorIs(t, err, ErrTaskNotFound)
	})
}

func TestUpcomingRemindersHandler_Handle(t *testing.T) {
	t.Run("plans the day's reminders", func(t *testing.T) {
		taskRepo := new(mockTaskRepo)
		settingsRepo := new(mockSettingsRepo)
		handler := NewUpcomingRemindersHandler(taskRepo, settingsRepo, services.NewReminderPlanner())

		tk, err := task.NewTask("Standup", task.CategoryShallowWork)
		require.NoError(t, err)
		require.NoError(t, tk.Schedule(clock(t, 9, 0), clock(t, 9, 30)))

		settings := testSettings()
		settings.HardStopEnabled = true

		settingsRepo.On("Load", mock.Anything).Return(settings, nil)
		taskRepo.On("FindByDate", mock.Anything, testDate()).Return([]*task.Task{tk}, nil)

		reminders, err := handler.Handle(context.Background(), UpcomingRemindersQuery{Date: testDate()})

		require.NoError(t, err)
		require.Len(t, reminders, 2)
		assert.Equal(t, clock(t, 8, 45), reminders[0].At)
		assert.Equal(t, services.ReminderKindWindDown, reminders[1].Kind)
	})
}
