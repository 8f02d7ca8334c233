// Package app wires the application together: database, repositories,
// services, and handlers.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	preferencesApp "github.com/felixgeelhaar/apexhour/internal/preferences/application"
	preferencesPersistence "github.com/felixgeelhaar/apexhour/internal/preferences/infrastructure/persistence"
	taskCommands "github.com/felixgeelhaar/apexhour/internal/productivity/application/commands"
	taskQueries "github.com/felixgeelhaar/apexhour/internal/productivity/application/queries"
	taskPersistence "github.com/felixgeelhaar/apexhour/internal/productivity/infrastructure/persistence"
	scheduleCommands "github.com/felixgeelhaar/apexhour/internal/scheduling/application/commands"
	scheduleQueries "github.com/felixgeelhaar/apexhour/internal/scheduling/application/queries"
	"github.com/felixgeelhaar/apexhour/internal/scheduling/application/services"
	"github.com/felixgeelhaar/apexhour/internal/scheduling/infrastructure/notify"
	"github.com/felixgeelhaar/apexhour/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/apexhour/internal/shared/infrastructure/migrations"
	"github.com/felixgeelhaar/apexhour/pkg/config"
)

// Container holds all application dependencies.
type Container struct {
	db     *sql.DB
	logger *slog.Logger

	// Task command handlers
	CreateTaskHandler   *taskCommands.CreateTaskHandler
	UpdateTaskHandler   *taskCommands.UpdateTaskHandler
	CompleteTaskHandler *taskCommands.CompleteTaskHandler
	CancelTaskHandler   *taskCommands.CancelTaskHandler
	StartTaskHandler    *taskCommands.StartTaskHandler
	DeleteTaskHandler   *taskCommands.DeleteTaskHandler

	// Task query handlers
	GetTaskHandler   *taskQueries.GetTaskHandler
	ListTasksHandler *taskQueries.ListTasksHandler

	// Scheduling command handlers
	ScheduleTaskHandler   *scheduleCommands.ScheduleTaskHandler
	UnscheduleTaskHandler *scheduleCommands.UnscheduleTaskHandler
	AutoScheduleHandler   *scheduleCommands.AutoScheduleHandler

	// Scheduling query handlers
	FindAvailableSlotsHandler *scheduleQueries.FindAvailableSlotsHandler
	ValidateScheduleHandler   *scheduleQueries.ValidateScheduleHandler
	UpcomingRemindersHandler  *scheduleQueries.UpcomingRemindersHandler

	// Services
	SettingsService *preferencesApp.Service
	Notifier        services.Notifier
}

// NewContainer opens the database, applies migrations, and constructs every
// handler the CLI needs.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := migrations.RunSQLiteMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	taskRepo := taskPersistence.NewSQLiteTaskRepository(db)
	settingsRepo := preferencesPersistence.NewSQLiteSettingsRepository(db)

	slotFinder := services.NewSlotFinder()
	ruleEngine := services.NewRuleEngine(slotFinder)
	reminderPlanner := services.NewReminderPlanner()

	c := &Container{
		db:     db,
		logger: logger,

		CreateTaskHandler:   taskCommands.NewCreateTaskHandler(taskRepo),
		UpdateTaskHandler:   taskCommands.NewUpdateTaskHandler(taskRepo),
		CompleteTaskHandler: taskCommands.NewCompleteTaskHandler(taskRepo),
		CancelTaskHandler:   taskCommands.NewCancelTaskHandler(taskRepo),
		StartTaskHandler:    taskCommands.NewStartTaskHandler(taskRepo),
		DeleteTaskHandler:   taskCommands.NewDeleteTaskHandler(taskRepo),

		GetTaskHandler:   taskQueries.NewGetTaskHandler(taskRepo),
		ListTasksHandler: taskQueries.NewListTasksHandler(taskRepo),

		ScheduleTaskHandler:   scheduleCommands.NewScheduleTaskHandler(taskRepo, settingsRepo, ruleEngine, logger),
		UnscheduleTaskHandler: scheduleCommands.NewUnscheduleTaskHandler(taskRepo, logger),
		AutoScheduleHandler:   scheduleCommands.NewAutoScheduleHandler(taskRepo, settingsRepo, slotFinder, logger),

		FindAvailableSlotsHandler: scheduleQueries.NewFindAvailableSlotsHandler(taskRepo, settingsRepo, slotFinder),
		ValidateScheduleHandler:   scheduleQueries.NewValidateScheduleHandler(taskRepo, settingsRepo, ruleEngine),
		UpcomingRemindersHandler:  scheduleQueries.NewUpcomingRemindersHandler(taskRepo, settingsRepo, reminderPlanner),

		SettingsService: preferencesApp.NewService(settingsRepo),
		Notifier:        notify.NewLogNotifier(logger),
	}

	return c, nil
}

// Close releases the container's resources.
func (c *Container) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
