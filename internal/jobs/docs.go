// Package jobs provides scheduled background tasks for the shipment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order status aggregation.
//
// # Available Jobs
//
// 1. OrderStatusReconcileJob - Runs every minute to recompute the derived
// status of orders whose shipments changed recently. The synchronous
// recomputation after each shipment mutation is best-effort; this job closes
// the gap when a recomputation was lost to a crash or a transient failure.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(activeOrdersHandler, recomputeHandler, logger)
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
// The reconcile job uses the cron expression "0 * * * * *", running at the
// top of every minute. Recomputation is idempotent, so overlap between the
// synchronous path and the job is harmless.
package jobs
