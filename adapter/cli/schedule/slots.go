package schedule

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/apexhour/adapter/cli"
	"github.com/felixgeelhaar/apexhour/internal/productivity/domain/task"
	"github.com/felixgeelhaar/apexhour/internal/scheduling/application/queries"
	"github.com/spf13/cobra"
)

var (
	slotsCategory string
	slotsDate     string
	slotsDuration int
	slotsMax      int
)

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "Find available time slots",
	Long: `Find free slots for a task of the given category and duration,
ranked with the optimal ones first.

Examples:
  apexhour schedule slots -c deep -d 60 --date 2026-03-02
  apexhour schedule slots -c wind-down -d 30`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.FindAvailableSlotsHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		category, err := task.ParseCategory(slotsCategory)
		if err != nil {
			return err
		}

		date := time.Now()
		if slotsDate != "" {
			date, err = parseDate(slotsDate)
			if err != nil {
				return err
			}
		}

		slots, err := app.FindAvailableSlotsHandler.Handle(cmd.Context(), queries.FindAvailableSlotsQuery{
			Category:       category,
			Duration:       time.Duration(slotsDuration) * time.Minute,
			Date:           date,
			MaxSuggestions: slotsMax,
		})
		if err != nil {
			return fmt.Errorf("failed to find slots: %w", err)
		}

		if len(slots) == 0 {
			fmt.Println("No free slots found.")
			return nil
		}

		for _, slot := range slots {
			marker := ""
			if slot.Optimal {
				marker = "  (optimal)"
			}
			fmt.Printf("%s - %s  %d min%s\n",
				slot.Start.Format(datetimeLayout),
				slot.End.Format("15:04"),
				slot.DurationMin,
				marker)
		}

		return nil
	},
}

func init() {
	slotsCmd.Flags().StringVarP(&slotsCategory, "category", "c", "shallow", "task category (deep, shallow, wind-down)")
	slotsCmd.Flags().IntVarP(&slotsDuration, "duration", "d", 30, "slot duration in minutes")
	slotsCmd.Flags().StringVar(&slotsDate, "date", "", "day to search (YYYY-MM-DD, default today)")
	slotsCmd.Flags().IntVar(&slotsMax, "max", 5, "maximum number of slots")
}
