package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/apexhour/adapter/cli"
	"github.com/felixgeelhaar/apexhour/adapter/cli/schedule"
	cliSettings "github.com/felixgeelhaar/apexhour/adapter/cli/settings"
	"github.com/felixgeelhaar/apexhour/adapter/cli/task"
	"github.com/felixgeelhaar/apexhour/internal/app"
	"github.com/felixgeelhaar/apexhour/pkg/config"
	"github.com/felixgeelhaar/apexhour/pkg/observability"
)

func main() {
	logger := observability.LoggerFromEnv()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("failed to load config, using development mode", "error", err)
		cfg = &config.Config{AppEnv: "development"}
	}

	cli.SetLogger(logger)

	var cliApp *cli.App
	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		if cfg.IsDevelopment() {
			// In development, allow the CLI to run without a database
			logger.Warn("failed to initialize container, running in limited mode", "error", err)
		} else {
			logger.Error("failed to initialize container", "error", err)
			os.Exit(1)
		}
	} else {
		defer container.Close()

		cliApp = &cli.App{
			CreateTaskHandler:   container.CreateTaskHandler,
			UpdateTaskHandler:   container.UpdateTaskHandler,
			CompleteTaskHandler: container.CompleteTaskHandler,
			CancelTaskHandler:   container.CancelTaskHandler,
			StartTaskHandler:    container.StartTaskHandler,
			DeleteTaskHandler:   container.DeleteTaskHandler,

			GetTaskHandler:   container.GetTaskHandler,
			ListTasksHandler: container.ListTasksHandler,

			ScheduleTaskHandler:   container.ScheduleTaskHandler,
			UnscheduleTaskHandler: container.UnscheduleTaskHandler,
			AutoScheduleHandler:   container.AutoScheduleHandler,

			FindAvailableSlotsHandler: container.FindAvailableSlotsHandler,
			ValidateScheduleHandler:   container.ValidateScheduleHandler,
			UpcomingRemindersHandler:  container.UpcomingRemindersHandler,

			SettingsService: container.SettingsService,
		}
	}

	cli.SetApp(cliApp)

	cli.AddCommand(task.Cmd)
	cli.AddCommand(schedule.Cmd)
	cli.AddCommand(cliSettings.Cmd)

	cli.Execute()
}
