package cli

import (
	preferencesApp "github.com/felixgeelhaar/apexhour/internal/preferences/application"
	"github.com/felixgeelhaar/apexhour/internal/productivity/application/commands"
	"github.com/felixgeelhaar/apexhour/internal/productivity/application/queries"
	scheduleCommands "github.com/felixgeelhaar/apexhour/internal/scheduling/application/commands"
	scheduleQueries "github.com/felixgeelhaar/apexhour/internal/scheduling/application/queries"
)

// App holds the CLI application dependencies.
type App struct {
	// Task command handlers
	CreateTaskHandler   *commands.CreateTaskHandler
	UpdateTaskHandler   *commands.UpdateTaskHandler
	CompleteTaskHandler *commands.CompleteTaskHandler
	CancelTaskHandler   *commands.CancelTaskHandler
	StartTaskHandler    *commands.StartTaskHandler
	DeleteTaskHandler   *commands.DeleteTaskHandler

	// Task query handlers
	GetTaskHandler   *queries.GetTaskHandler
	ListTasksHandler *queries.ListTasksHandler

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
}

var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance, or nil when the
// container failed to initialize.
func GetApp() *App {
	return app
}
