// Package notify provides reminder delivery backends. The CLI has no
// platform notification center, so the default backend writes to the log.
package notify

import (
	"context"
	"log/slog"

	"github.com/felixgeelhaar/apexhour/internal/scheduling/application/services"
)

// LogNotifier delivers reminders through slog.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier backed by the given logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

// Notify writes the reminder to the log.
func (n *LogNotifier) Notify(ctx context.Context, r services.Reminder) error {
	n.logger.InfoContext(ctx, "reminder",
		"kind", string(r.Kind),
		"title", r.Title,
		"at", r.At,
		"task_id", r.TaskID,
	)
	return nil
}
