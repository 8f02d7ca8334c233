package schedule

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/apexhour/adapter/cli"
	"github.com/felixgeelhaar/apexhour/internal/scheduling/application/queries"
	"github.com/spf13/cobra"
)

var remindersDate string

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Show the reminders planned for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.UpcomingRemindersHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		date := time.Now()
		if remindersDate != "" {
			var err error
			date, err = parseDate(remindersDate)
			if err != nil {
				return err
			}
		}

		reminders, err := app.UpcomingRemindersHandler.Handle(cmd.Context(), queries.UpcomingRemindersQuery{Date: date})
		if err != nil {
			return fmt.Errorf("failed to plan reminders: %w", err)
		}

		if len(reminders) == 0 {
			fmt.Println("No reminders planned.")
			return nil
		}

		for _, r := range reminders {
			fmt.Printf("%s  [%s]  %s\n", r.At.Format("15:04"), r.Kind, r.Title)
		}

		return nil
	},
}

func init() {
	remindersCmd.Flags().StringVar(&remindersDate, "date", "", "day to plan (YYYY-MM-DD, default today)")
}
