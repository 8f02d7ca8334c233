// Package schedule contains the schedule command group.
package schedule

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/apexhour/internal/scheduling/domain"
	"github.com/spf13/cobra"
)

const datetimeLayout = "2006-01-02 15:04"

// Cmd is the schedule command group
var Cmd = &cobra.Command{
	Use:   "schedule",
	Short: "Schedule tasks around your apex hour",
	Long:  `Place, validate, and auto-schedule tasks while protecting the wind-down window.`,
}

func init() {
	Cmd.AddCommand(setCmd)
	Cmd.AddCommand(unscheduleCmd)
	Cmd.AddCommand(validateCmd)
	Cmd.AddCommand(slotsCmd)
	Cmd.AddCommand(autoCmd)
	Cmd.AddCommand(remindersCmd)
}

func parseDatetime(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation(datetimeLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format (use \"YYYY-MM-DD HH:MM\"): %w", err)
	}
	return parsed, nil
}

func parseDate(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format (use YYYY-MM-DD): %w", err)
	}
	return parsed, nil
}

func printValidation(result *domain.ValidationResult) {
	for _, c := range result.Conflicts {
		fmt.Printf("conflict [%s]: %s\n", c.Kind, c.Message)
		if c.SuggestedAction != "" {
			fmt.Printf("  -> %s\n", c.SuggestedAction)
		}
	}
	for _, w := range result.Warnings {
		fmt.Printf("warning [%s]: %s\n", w.Kind, w.Message)
		if w.Remediation != "" {
			fmt.Printf("  -> %s\n", w.Remediation)
		}
	}
	for _, s := range result.Suggestions {
		marker := ""
		if s.Slot.Optimal {
			marker = " (optimal)"
		}
		fmt.Printf("suggestion [%s]: %s - %s%s: %s\n",
			s.Priority,
			s.Slot.Start.Format(datetimeLayout),
			s.Slot.End.Format("15:04"),
			marker,
			s.Rationale)
		if s.AlternateCategory != nil {
			fmt.Printf("  -> change category to %s\n", *s.AlternateCategory)
		}
	}
}
