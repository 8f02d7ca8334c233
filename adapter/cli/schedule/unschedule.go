package schedule

import (
	"fmt"

	"github.com/felixgeelhaar/apexhour/adapter/cli"
	"github.com/felixgeelhaar/apexhour/internal/scheduling/application/commands"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var unscheduleCmd = &cobra.Command{
	Use:   "unset [task-id]",
	Short: "Remove a task's scheduled interval",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.UnscheduleTaskHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid task id: %w", err)
		}

		if err := app.UnscheduleTaskHandler.Handle(cmd.Context(), commands.UnscheduleTaskCommand{TaskID: id}); err != nil {
			return fmt.Errorf("failed to unschedule task: %w", err)
		}

		fmt.Printf("Task unscheduled: %s\n", id)
		return nil
	},
}
