package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	notificationRetentionJob *NotificationRetentionJob
}

func NewJobManager(
	pruneHandler notificationLogPruner,
	retention RetentionPolicy,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		notificationRetentionJob: NewNotificationRetentionJob(pruneHandler, retention, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationRetentionJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification retention job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.notificationRetentionJob.Stop()
}
