package notify

import (
	"context"

	"assessment-backend/internal/shared/telemetry"
)

// Notifier delivers a report-ready notification to an assessor.
type Notifier interface {
	ReportReady(ctx context.Context, email string, rowCount int) error
}

// LogNotifier accepts notifications and logs them without dispatching email.
// It stands in until a real mail collaborator is wired.
type LogNotifier struct{}

// ReportReady logs the notification request.
func (LogNotifier) ReportReady(ctx context.Context, email string, rowCount int) error {
	_ = ctx
	telemetry.Info("notify.report_ready", map[string]any{
		"email":     email,
		"row_count": rowCount,
		"dispatch":  "skipped",
	})
	return nil
}

var _ Notifier = LogNotifier{}
