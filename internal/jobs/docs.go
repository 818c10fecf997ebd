// Package jobs provides scheduled background tasks for the ordering service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-resolution
// schedules and are started and stopped together through JobManager:
//
//	jobManager := jobs.NewJobManager(pruneHandler, jobs.RetentionPolicy{
//		Schedule:  "0 0 3 * * *",
//		Retention: 30 * 24 * time.Hour,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// NotificationRetentionJob deletes notification log entries older than the
// retention window. A failed run is logged and retried at the next tick.
package jobs
