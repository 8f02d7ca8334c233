// Package settings contains the settings command group.
package settings

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/apexhour/adapter/cli"
	"github.com/spf13/cobra"
)

// Cmd is the settings command group
var Cmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage workday and apex-hour preferences",
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.SettingsService == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		s, err := app.SettingsService.Get(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("workday: %02d:%02d - %02d:%02d\n",
			s.WorkStartHour, s.WorkStartMinute, s.WorkEndHour, s.WorkEndMinute)
		fmt.Printf("apex hour: final %d minutes\n", s.ApexHourMinutes)
		fmt.Printf("notification lead: %d minutes\n", s.NotificationLeadMinutes)
		fmt.Printf("notifications: %s\n", onOff(s.NotificationsEnabled))
		fmt.Printf("hard stop: %s\n", onOff(s.HardStopEnabled))

		return nil
	},
}

var (
	workStart     string
	workEnd       string
	apexMinutes   int
	leadMinutes   int
	notifications bool
	hardStop      bool
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Update settings",
	Long: `Update workday and apex-hour preferences. Only the provided flags
change anything.

Examples:
  apexhour settings set --work-start 09:00 --work-end 18:00
  apexhour settings set --apex-minutes 90 --hard-stop`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.SettingsService == nil {
			return fmt.Errorf("application not initialized - database connection required")
		}

		s, err := app.SettingsService.Get(cmd.Context())
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("work-start") {
			h, m, err := parseClock(workStart)
			if err != nil {
				return err
			}
			s.WorkStartHour, s.WorkStartMinute = h, m
		}
		if cmd.Flags().Changed("work-end") {
			h, m, err := parseClock(workEnd)
			if err != nil {
				return err
			}
			s.WorkEndHour, s.WorkEndMinute = h, m
		}
		if cmd.Flags().Changed("apex-minutes") {
			s.ApexHourMinutes = apexMinutes
		}
		if cmd.Flags().Changed("lead-minutes") {
			s.NotificationLeadMinutes = leadMinutes
		}
		if cmd.Flags().Changed("notifications") {
			s.NotificationsEnabled = notifications
		}
		if cmd.Flags().Changed("hard-stop") {
			s.HardStopEnabled = hardStop
		}

		if err := app.SettingsService.Update(cmd.Context(), s); err != nil {
			return fmt.Errorf("failed to update settings: %w", err)
		}

		fmt.Println("Settings updated.")
		return nil
	},
}

func parseClock(value string) (hour, minute int, err error) {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time format (use HH:MM): %w", err)
	}
	return parsed.Hour(), parsed.Minute(), nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func init() {
	setCmd.Flags().StringVar(&workStart, "work-start", "", "workday start (HH:MM)")
	setCmd.Flags().StringVar(&workEnd, "work-end", "", "workday end (HH:MM)")
	setCmd.Flags().IntVar(&apexMinutes, "apex-minutes", 0, "apex hour length in minutes")
	setCmd.Flags().IntVar(&leadMinutes, "lead-minutes", 0, "notification lead in minutes")
	setCmd.Flags().BoolVar(&notifications, "notifications", true, "enable notifications")
	setCmd.Flags().BoolVar(&hardStop, "hard-stop", false, "enable the wind-down hard stop cue")

	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(setCmd)
}
