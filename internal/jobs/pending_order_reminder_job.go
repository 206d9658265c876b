package jobs

import (
	"context"
	"log/slog"
	"time"

	"eats/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PendingOrderReminderJob re-announces orders that have sat in Pending longer
// than the configured age, so restaurant owners who missed the original
// notification see them again.
type PendingOrderReminderJob struct {
	handler  commands.NotifyPendingOrdersCommandHandler
	cron     *cron.Cron
	schedule string
	maxAge   time.Duration
	logger   *slog.Logger
}

// NewPendingOrderReminderJob creates the reminder job. The schedule is a cron
// expression with seconds; maxAge is how long an order may stay pending before
// it is re-announced.
func NewPendingOrderReminderJob(
	handler commands.NotifyPendingOrdersCommandHandler,
	schedule string,
	maxAge time.Duration,
	logger *slog.Logger,
) *PendingOrderReminderJob {
	return &PendingOrderReminderJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		maxAge:   maxAge,
		logger:   logger.With("component", "pending_order_reminder_job"),
	}
}

// Start schedules the reminder job.
func (j *PendingOrderReminderJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewNotifyPendingOrdersCommand(j.maxAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending order reminder job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Pending order reminder job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending order reminder job started",
		"schedule", j.schedule, "maxAge", j.maxAge.String())
	return nil
}

// Stop stops the reminder job.
func (j *PendingOrderReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending order reminder job stopped")
}
