package task

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/apexhour/adapter/cli"
	"github.com/felixgeelhaar/apexhour/internal/productivity/application/queries"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [task-id]",
	Short: "Show a task's details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.GetTaskHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid task id: %w", err)
		}

		t, err := app.GetTaskHandler.Handle(cmd.Context(), queries.GetTaskQuery{TaskID: id})
		if err != nil {
			return fmt.Errorf("failed to fetch task: %w", err)
		}

		fmt.Printf("Task %s\n", t.ID)
		fmt.Printf("  title: %s\n", t.Title)
		if t.Description != "" {
			fmt.Printf("  description: %s\n", t.Description)
		}
		fmt.Printf("  category: %s\n", t.Category)
		fmt.Printf("  status: %s\n", t.Status)
		if len(t.Tags) > 0 {
			fmt.Printf("  tags: %s\n", strings.Join(t.Tags, ", "))
		}
		if t.ScheduledStart != nil && t.ScheduledEnd != nil {
			fmt.Printf("  scheduled: %s - %s\n",
				t.ScheduledStart.Format("2006-01-02 15:04"),
				t.ScheduledEnd.Format("15:04"))
		}
		fmt.Printf("  duration: %d minutes\n", t.DurationMinutes)
		if t.CompletedAt != nil {
			fmt.Printf("  completed: %s\n", t.CompletedAt.Format("2006-01-02 15:04"))
		}

		return nil
	},
}
