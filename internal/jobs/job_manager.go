package jobs

import (
	"fmt"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderStatusReconcileJob *OrderStatusReconcileJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes use case handlers as dependencies to wire up the job execution.
func NewJobManager(
	activeOrdersHandler queries.GetActiveShipmentOrdersQueryHandler,
	recomputeHandler commands.RecomputeOrderStatusCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderStatusReconcileJob: NewOrderStatusReconcileJob(activeOrdersHandler, recomputeHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderStatusReconcileJob.Start(); err != nil {
		return fmt.Errorf("failed to start order status reconcile job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderStatusReconcileJob.Stop()
}
