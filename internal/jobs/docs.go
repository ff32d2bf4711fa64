// Package jobs provides scheduled background tasks for the print-order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderReaperJob - Runs every minute to remove orders whose session has
// been idle past the configured TTL, notifying the session afterwards.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(repo, notifier, keeper, cfg.OrderTTL, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The reaper uses the cron expression "* * * * *" (every minute). Deletion
// runs under the per-session lock, so a sweep cannot race an in-flight
// mutation for the same session. A zero TTL disables the reaper.
package jobs
