package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	require.NoError(t, s.Validate())
	assert.Equal(t, 60, s.ApexHourMinutes)
	assert.Equal(t, 15, s.NotificationLeadMinutes)
	assert.True(t, s.NotificationsEnabled)
	assert.False(t, s.HardStopEnabled)
}

func TestSettings_Validate(t *testing.T) {
	t.Run("rejects inverted workday", func(t *testing.T) {
		s := DefaultSettings()
		s.WorkEndHour = 8
		assert.ErrorIs(t, s.Validate(), ErrInvalidWorkday)
	})

	t.Run("rejects apex hour longer than workday", func(t *testing.T) {
		s := DefaultSettings()
		s.WorkStartHour = 16
		s.WorkEndHour = 17
		s.ApexHourMinutes = 90
		assert.ErrorIs(t, s.Validate(), ErrInvalidApexHour)
	})

	t.Run("accepts apex hour equal to workday", func(t *testing.T) {
		s := DefaultSettings()
		s.WorkStartHour = 16
		s.WorkEndHour = 17
		s.ApexHourMinutes = 60
		assert.NoError(t, s.Validate())
	})

	t.Run("rejects negative lead time", func(t *testing.T) {
		s := DefaultSettings()
		s.NotificationLeadMinutes = -1
		assert.ErrorIs(t, s.Validate(), ErrNegativeLeadTime)
	})
}

func TestSettings_Windows(t *testing.T) {
	s := Settings{
		WorkStartHour:   9,
		WorkEndHour:     18,
		ApexHourMinutes: 60,
	}
	date := time.Date(2026, time.March, 2, 13, 45, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC), s.WorkdayStart(date))
	assert.Equal(t, time.Date(2026, time.March, 2, 18, 0, 0, 0, time.UTC), s.WorkdayEnd(date))
	assert.Equal(t, time.Date(2026, time.March, 2, 17, 0, 0, 0, time.UTC), s.ApexHourStart(date))
}

func TestSettings_WindowsWithMinutes(t *testing.T) {
	s := Settings{
		WorkStartHour:   8,
		WorkStartMinute: 30,
		WorkEndHour:     16,
		WorkEndMinute:   45,
		ApexHourMinutes: 45,
	}
	date := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, time.March, 3, 8, 30, 0, 0, time.UTC), s.WorkdayStart(date))
	assert.Equal(t, time.Date(2026, time.March, 3, 16, 45, 0, 0, time.UTC), s.WorkdayEnd(date))
	assert.Equal(t, time.Date(2026, time.March, 3, 16, 0, 0, 0, time.UTC), s.ApexHourStart(date))
}

func TestSettings_NotificationLead(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, 15*time.Minute, s.NotificationLead())
}
