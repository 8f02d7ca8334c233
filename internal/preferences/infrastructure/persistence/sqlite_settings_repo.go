package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	prefs "github.com/felixgeelhaar/apexhour/internal/preferences/domain"
)

// SQLiteSettingsRepository implements preferences.Repository using a
// singleton row in SQLite.
type SQLiteSettingsRepository struct {
	db *sql.DB
}

// NewSQLiteSettingsRepository creates a new SQLite settings repository.
func NewSQLiteSettingsRepository(db *sql.DB) *SQLiteSettingsRepository {
	return &SQLiteSettingsRepository{db: db}
}

// Load returns the stored settings, or the defaults when none were saved yet.
func (r *SQLiteSettingsRepository) Load(ctx context.Context) (prefs.Settings, error) {
	var (
		s                     prefs.Settings
		notifications, hardStop int
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT work_start_hour, work_start_minute, work_end_hour, work_end_minute,
		       apex_hour_minutes, notification_lead_minutes,
		       notifications_enabled, hard_stop_enabled
		FROM settings WHERE id = 1`).Scan(
		&s.WorkStartHour,
		&s.WorkStartMinute,
		&s.WorkEndHour,
		&s.WorkEndMinute,
		&s.ApexHourMinutes,
		&s.NotificationLeadMinutes,
		&notifications,
		&hardStop,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return prefs.DefaultSettings(), nil
	}
	if err != nil {
		return prefs.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}

	s.NotificationsEnabled = notifications != 0
	s.HardStopEnabled = hardStop != 0
	return s, nil
}

// Save upserts the singleton settings row.
func (r *SQLiteSettingsRepository) Save(ctx context.Context, s prefs.Settings) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (
			id, work_start_hour, work_start_minute, work_end_hour, work_end_minute,
			apex_hour_minutes, notification_lead_minutes,
			notifications_enabled, hard_stop_enabled, updated_at
		) VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			work_start_hour = excluded.work_start_hour,
			work_start_minute = excluded.work_start_minute,
			work_end_hour = excluded.work_end_hour,
			work_end_minute = excluded.work_end_minute,
			apex_hour_minutes = excluded.apex_hour_minutes,
			notification_lead_minutes = excluded.notification_lead_minutes,
			notifications_enabled = excluded.notifications_enabled,
			hard_stop_enabled = excluded.hard_stop_enabled,
			updated_at = excluded.updated_at`,
		s.WorkStartHour,
		s.WorkStartMinute,
		s.WorkEndHour,
		s.WorkEndMinute,
		s.ApexHourMinutes,
		s.NotificationLeadMinutes,
		boolToInt(s.NotificationsEnabled),
		boolToInt(s.HardStopEnabled),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
