// Package jobs provides scheduled background tasks for the order management system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations on the order store.
//
// # Available Jobs
//
// 1. OrderSweepJob - Runs every five minutes to promote PENDING orders to PROCESSING
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(sweepHandler, logger)
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
// The sweep uses the "@every 5m" schedule and the SkipIfStillRunning chain, so a
// long sweep delays nothing and never runs concurrently with itself.
//
// # Error Handling
//
// A failed sweep is logged and dropped; the next tick picks up whatever is still
// pending, so no separate retry is needed.
package jobs
