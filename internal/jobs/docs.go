// Package jobs provides scheduled background tasks for the shipping system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the shipping service.
//
// # Available Jobs
//
// 1. OrderArchivalJob - Runs every minute to move RECEIVED orders to ARCHIVED
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(archiveReceivedOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The archival job uses the cron expression "* * * * *" which means it runs
// every minute. Archiving received orders is bookkeeping rather than a
// user-facing operation, so a minute of latency is acceptable.
//
// # Error Handling
//
// - The archival sweep is idempotent; a failed run is retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
