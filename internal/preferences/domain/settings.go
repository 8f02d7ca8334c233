// Package domain holds the user preference model: workday boundaries, the
// protected apex-hour window, and notification behavior.
package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidWorkday   = errors.New("workday end must be after workday start")
	ErrInvalidApexHour  = errors.New("apex hour must fit inside the workday")
	ErrNegativeLeadTime = errors.New("notification lead time cannot be negative")
)

// Settings captures the user-configured preferences. The apex-hour window is
// always [workday end − duration, workday end]; it never extends past the
// workday on either side.
type Settings struct {
	WorkStartHour   int
	WorkStartMinute int
	WorkEndHour     int
	WorkEndMinute   int

	ApexHourMinutes         int
	NotificationLeadMinutes int

	NotificationsEnabled bool
	HardStopEnabled      bool
}

// DefaultSettings returns the out-of-the-box configuration: a 09:00-17:00
// workday with a protected final hour.
func DefaultSettings() Settings {
	return Settings{
		WorkStartHour:           9,
		WorkStartMinute:         0,
		WorkEndHour:             17,
		WorkEndMinute:           0,
		ApexHourMinutes:         60,
		NotificationLeadMinutes: 15,
		NotificationsEnabled:    true,
		HardStopEnabled:         false,
	}
}

// Validate checks the settings invariants.
func (s Settings) Validate() error {
	start := s.WorkStartHour*60 + s.WorkStartMinute
	end := s.WorkEndHour*60 + s.WorkEndMinute
	if end <= start {
		return ErrInvalidWorkday
	}
	if s.ApexHourMinutes <= 0 || s.ApexHourMinutes > end-start {
		return ErrInvalidApexHour
	}
	if s.NotificationLeadMinutes < 0 {
		return ErrNegativeLeadTime
	}
	return nil
}

// WorkdayStart returns the wall-clock start of the workday on the given date.
func (s Settings) WorkdayStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), s.WorkStartHour, s.WorkStartMinute, 0, 0, date.Location())
}

// WorkdayEnd returns the wall-clock end of the workday on the given date.
func (s Settings) WorkdayEnd(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), s.WorkEndHour, s.WorkEndMinute, 0, 0, date.Location())
}

// ApexHourStart returns the start of the protected window on the given date.
func (s Settings) ApexHourStart(date time.Time) time.Time {
	return s.WorkdayEnd(date).Add(-time.Duration(s.ApexHourMinutes) * time.Minute)
}

// NotificationLead returns the reminder lead time as a duration.
func (s Settings) NotificationLead() time.Duration {
	return time.Duration(s.NotificationLeadMinutes) * time.Minute
}
