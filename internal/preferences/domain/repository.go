package domain

import "context"

// Repository defines persistence operations for the single settings record.
type Repository interface {
	// Load retrieves the stored settings. Implementations return
	// DefaultSettings when nothing has been stored yet.
	Load(ctx context.Context) (Settings, error)

	// Save upserts the settings record.
	Save(ctx context.Context, s Settings) error
}
