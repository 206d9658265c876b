// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3. The only job today is the pending order reminder,
// which periodically republishes notifications for orders no owner has acted on.
package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"eats/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	pendingOrderReminderJob *PendingOrderReminderJob
}

// NewJobManager creates a job manager with all required jobs wired to their
// command handlers.
func NewJobManager(
	notifyPendingOrdersHandler commands.NotifyPendingOrdersCommandHandler,
	reminderSchedule string,
	reminderMaxAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingOrderReminderJob: NewPendingOrderReminderJob(
			notifyPendingOrdersHandler, reminderSchedule, reminderMaxAge, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingOrderReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending order reminder job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingOrderReminderJob.Stop()
}
