package task

import (
	"fmt"

	"github.com/felixgeelhaar/apexhour/adapter/cli"
	"github.com/felixgeelhaar/apexhour/internal/productivity/application/commands"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	updateTitle       string
	updateDescription string
	updateCategory    string
	updateDuration    int
	updateTags        []string
)

var updateCmd = &cobra.Command{
	Use:   "update [task-id]",
	Short: "Update a task",
	Long: `Update a task's title, description, category, tags, or duration.
Only the provided flags change anything.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.UpdateTaskHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid task id: %w", err)
		}

		update := commands.UpdateTaskCommand{TaskID: id}
		if cmd.Flags().Changed("title") {
			update.Title = &updateTitle
		}
		if cmd.Flags().Changed("description") {
			update.Description = &updateDescription
		}
		if cmd.Flags().Changed("category") {
			update.Category = &updateCategory
		}
		if cmd.Flags().Changed("duration") {
			update.DurationMinutes = &updateDuration
		}
		if cmd.Flags().Changed("tag") {
			update.Tags = &updateTags
		}

		if err := app.UpdateTaskHandler.Handle(cmd.Context(), update); err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}

		fmt.Printf("Task updated: %s\n", id)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "new title")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "new description")
	updateCmd.Flags().StringVarP(&updateCategory, "category", "c", "", "new category (deep, shallow, wind-down)")
	updateCmd.Flags().IntVarP(&updateDuration, "duration", "d", 0, "new estimated duration in minutes")
	updateCmd.Flags().StringSliceVar(&updateTags, "tag", nil, "replacement tags (repeatable)")
}
