package schedule

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/apexhour/adapter/cli"
	"github.com/felixgeelhaar/apexhour/internal/scheduling/application/commands"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var autoDate string

var autoCmd = &cobra.Command{
	Use:   "auto [task-id]",
	Short: "Auto-schedule a task into the best available slot",
	Long: `Place a task into the top-ranked free slot on the preferred date.
When that day is full, the following week is scanned and alternate dates
are suggested instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.AutoScheduleHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid task id: %w", err)
		}

		date := time.Now()
		if autoDate != "" {
			date, err = parseDate(autoDate)
			if err != nil {
				return err
			}
		}

		result, err := app.AutoScheduleHandler.Handle(cmd.Context(), commands.AutoScheduleCommand{
			TaskID:        id,
			PreferredDate: date,
		})
		if err != nil {
			return fmt.Errorf("failed to auto-schedule task: %w", err)
		}

		fmt.Println(result.Message)
		if result.Scheduled {
			fmt.Printf("  %s - %s\n",
				result.Start.Format(datetimeLayout), result.End.Format("15:04"))
			return nil
		}

		if len(result.AlternateDates) > 0 {
			fmt.Println("Alternate dates with free slots:")
			for _, day := range result.AlternateDates {
				fmt.Printf("  %s\n", day.Format("2006-01-02"))
			}
		}

		return nil
	},
}

func init() {
	autoCmd.Flags().StringVar(&autoDate, "date", "", "preferred date (YYYY-MM-DD, default today)")
}
