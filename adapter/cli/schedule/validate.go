package schedule

import (
	"fmt"

	"github.com/felixgeelhaar/apexhour/adapter/cli"
	"github.com/felixgeelhaar/apexhour/internal/scheduling/application/queries"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	validateStart string
	validateEnd   string
)

var validateCmd = &cobra.Command{
	Use:   "validate [task-id]",
	Short: "Dry-run an interval against the scheduling rules",
	Long: `Check what would happen if the task were scheduled at the given
interval. Nothing is persisted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ValidateScheduleHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid task id: %w", err)
		}

		start, err := parseDatetime(validateStart)
		if err != nil {
			return err
		}
		end, err := parseDatetime(validateEnd)
		if err != nil {
			return err
		}

		result, err := app.ValidateScheduleHandler.Handle(cmd.Context(), queries.ValidateScheduleQuery{
			TaskID: id,
			Start:  start,
			End:    end,
		})
		if err != nil {
			return fmt.Errorf("failed to validate schedule: %w", err)
		}

		printValidation(result)

		if result.Valid {
			fmt.Println("Interval is valid.")
		} else {
			fmt.Println("Interval has conflicts.")
		}

		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateStart, "start", "", "interval start (\"YYYY-MM-DD HH:MM\")")
	validateCmd.Flags().StringVar(&validateEnd, "end", "", "interval end (\"YYYY-MM-DD HH:MM\")")
	_ = validateCmd.MarkFlagRequired("start")
	_ = validateCmd.MarkFlagRequired("end")
}
