package schedule

import (
	"fmt"

	"github.com/felixgeelhaar/apexhour/adapter/cli"
	"github.com/felixgeelhaar/apexhour/internal/scheduling/application/commands"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	setStart string
	setEnd   string
	setForce bool
)

var setCmd = &cobra.Command{
	Use:   "set [task-id]",
	Short: "Schedule a task at a specific interval",
	Long: `Schedule a task after validating the interval against the apex hour,
other tasks, and your work hours. Conflicts block scheduling unless --force
is given; warnings never block.

Examples:
  apexhour schedule set 3f1e... --start "2026-03-02 09:00" --end "2026-03-02 10:00"
  apexhour schedule set 3f1e... --start "2026-03-02 17:15" --end "2026-03-02 17:45" --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ScheduleTaskHandler == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid task id: %w", err)
		}

		start, err := parseDatetime(setStart)
		if err != nil {
			return err
		}
		end, err := parseDatetime(setEnd)
		if err != nil {
			return err
		}

		result, err := app.ScheduleTaskHandler.Handle(cmd.Context(), commands.ScheduleTaskCommand{
			TaskID: id,
			Start:  start,
			End:    end,
			Force:  setForce,
		})
		if err != nil {
			return fmt.Errorf("failed to schedule task: %w", err)
		}

		printValidation(result.Validation)

		if result.Scheduled {
			fmt.Printf("Task scheduled: %s - %s\n",
				start.Format(datetimeLayout), end.Format("15:04"))
		} else {
			fmt.Println("Not scheduled. Resolve the conflicts or rerun with --force.")
		}

		return nil
	},
}

func init() {
	setCmd.Flags().StringVar(&setStart, "start", "", "interval start (\"YYYY-MM-DD HH:MM\")")
	setCmd.Flags().StringVar(&setEnd, "end", "", "interval end (\"YYYY-MM-DD HH:MM\")")
	setCmd.Flags().BoolVar(&setForce, "force", false, "schedule even when conflicts were found")
	_ = setCmd.MarkFlagRequired("start")
	_ = setCmd.MarkFlagRequired("end")
}
