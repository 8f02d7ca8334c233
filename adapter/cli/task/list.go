package task

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/apexhour/adapter/cli"
	"github.com/felixgeelhaar/apexhour/internal/productivity/application/queries"
	"github.com/spf13/cobra"
)

var (
	listDate     string
	listStatus   string
	listCategory string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks, optionally filtered by date, status, or category.

Examples:
  apexhour task list
  apexhour task list --date 2026-03-02
  apexhour task list --status pending --category deep`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListTasksHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		query := queries.ListTasksQuery{
			Status:   listStatus,
			Category: listCategory,
		}
		if listDate != "" {
			parsed, err := time.ParseInLocation("2006-01-02", listDate, time.Local)
			if err != nil {
				return fmt.Errorf("invalid date format (use YYYY-MM-DD): %w", err)
			}
			query.Date = &parsed
		}

		tasks, err := app.ListTasksHandler.Handle(cmd.Context(), query)
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks found.")
			return nil
		}

		for _, t := range tasks {
			schedule := "unscheduled"
			if t.ScheduledStart != nil && t.ScheduledEnd != nil {
				schedule = fmt.Sprintf("%s - %s",
					t.ScheduledStart.Format("2006-01-02 15:04"),
					t.ScheduledEnd.Format("15:04"))
			}
			fmt.Printf("%s  [%s/%s]  %s  (%s)\n",
				t.ID, t.Category, t.Status, t.Title, schedule)
		}

		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listDate, "date", "", "only tasks scheduled on this day (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listStatus, "status", "", "filter by status (pending, in_progress, completed, cancelled)")
	listCmd.Flags().StringVar(&listCategory, "category", "", "filter by category (deep, shallow, wind-down)")
}
