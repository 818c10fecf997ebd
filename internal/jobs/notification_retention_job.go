package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultRetentionSchedule runs the prune every day at 03:00:00.
const DefaultRetentionSchedule = "0 0 3 * * *"

// notificationLogPruner is satisfied by commands.PruneNotificationLogsCommandHandler.
type notificationLogPruner interface {
	Handle(ctx context.Context, cmd commands.PruneNotificationLogsCommand) (int64, error)
}

// RetentionPolicy configures NotificationRetentionJob.
type RetentionPolicy struct {
	// Schedule is a six-field cron expression (seconds first).
	Schedule  string
	Retention time.Duration
}

// NotificationRetentionJob prunes the notification log on a schedule.
type NotificationRetentionJob struct {
	handler notificationLogPruner
	policy  RetentionPolicy
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewNotificationRetentionJob(
	handler notificationLogPruner,
	policy RetentionPolicy,
	logger *slog.Logger,
) *NotificationRetentionJob {
	if policy.Schedule == "" {
		policy.Schedule = DefaultRetentionSchedule
	}

	return &NotificationRetentionJob{
		handler: handler,
		policy:  policy,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "notification_retention_job"),
	}
}

// Start registers the schedule and starts the cron runner.
func (j *NotificationRetentionJob) Start() error {
	cmd, err := commands.NewPruneNotificationLogsCommand(j.policy.Retention)
	if err != nil {
		return err
	}

	_, err = j.cron.AddFunc(j.policy.Schedule, func() {
		j.run(context.Background(), cmd)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification retention job started",
		"schedule", j.policy.Schedule, "retention", j.policy.Retention.String())
	return nil
}

// RunOnce prunes immediately, outside the schedule.
func (j *NotificationRetentionJob) RunOnce(ctx context.Context) (int64, error) {
	cmd, err := commands.NewPruneNotificationLogsCommand(j.policy.Retention)
	if err != nil {
		return 0, err
	}
	return j.run(ctx, cmd)
}

// Stop stops the scheduler and waits for a running prune to finish.
func (j *NotificationRetentionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification retention job stopped")
}

func (j *NotificationRetentionJob) run(ctx context.Context, cmd commands.PruneNotificationLogsCommand) (int64, error) {
	deleted, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification retention job failed", "error", err)
		return 0, err
	}

	if deleted > 0 {
		j.logger.InfoContext(ctx, "Pruned notification log", "deleted", deleted)
	}
	return deleted, nil
}
