package task

import (
	"fmt"

	"github.com/felixgeelhaar/apexhour/adapter/cli"
	"github.com/felixgeelhaar/apexhour/internal/productivity/application/commands"
	"github.com/spf13/cobra"
)

var (
	category    string
	duration    int
	description string
	tags        []string
)

var createCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a new task",
	Long: `Create a new task with a title, a cognitive-load category, and
optional properties.

Examples:
  apexhour task create "Refactor parser" -c deep -d 90
  apexhour task create "Inbox zero" --category shallow
  apexhour task create "Plan tomorrow" -c wind-down --tag planning`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CreateTaskHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		result, err := app.CreateTaskHandler.Handle(cmd.Context(), commands.CreateTaskCommand{
			Title:           args[0],
			Description:     description,
			Category:        category,
			Tags:            tags,
			DurationMinutes: duration,
		})
		if err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}

		fmt.Printf("Task created: %s\n", result.TaskID)
		fmt.Printf("  title: %s\n", args[0])
		fmt.Printf("  category: %s\n", result.Category)
		if duration > 0 {
			fmt.Printf("  duration: %d minutes\n", duration)
		}

		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&category, "category", "c", "shallow", "task category (deep, shallow, wind-down)")
	createCmd.Flags().IntVarP(&duration, "duration", "d", 0, "estimated duration in minutes")
	createCmd.Flags().StringVar(&description, "description", "", "task description")
	createCmd.Flags().StringSliceVar(&tags, "tag", nil, "task tags (repeatable)")
}
