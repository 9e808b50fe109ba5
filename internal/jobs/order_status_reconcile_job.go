package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// reconcileWindow is how far back the job looks for shipment activity.
// Wide enough to cover several missed runs, narrow enough to keep the scan
// off old orders.
const reconcileWindow = 10 * time.Minute

// OrderStatusReconcileJob periodically recomputes the derived status of
// orders with recent shipment activity. It backstops the synchronous
// recomputation that runs after each shipment mutation.
type OrderStatusReconcileJob struct {
	activeOrdersHandler queries.GetActiveShipmentOrdersQueryHandler
	recomputeHandler    commands.RecomputeOrderStatusCommandHandler
	cron                *cron.Cron
	logger              *slog.Logger
}

// NewOrderStatusReconcileJob creates a new job for order status reconciliation.
func NewOrderStatusReconcileJob(
	activeOrdersHandler queries.GetActiveShipmentOrdersQueryHandler,
	recomputeHandler commands.RecomputeOrderStatusCommandHandler,
	logger *slog.Logger,
) *OrderStatusReconcileJob {
	return &OrderStatusReconcileJob{
		activeOrdersHandler: activeOrdersHandler,
		recomputeHandler:    recomputeHandler,
		cron:                cron.New(cron.WithSeconds()),
		logger:              logger.With("component", "order_status_reconcile_job"),
	}
}

// Start begins the reconcile job, running at the top of every minute.
func (j *OrderStatusReconcileJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order status reconcile job started (running every minute)")
	return nil
}

// Stop stops the reconcile job.
func (j *OrderStatusReconcileJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order status reconcile job stopped")
}

// run performs one reconciliation pass. A failure on one order does not stop
// the pass; recomputation of the others is independent.
func (j *OrderStatusReconcileJob) run(ctx context.Context) {
	query, err := queries.NewGetActiveShipmentOrdersQuery(reconcileWindow)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order status reconcile job failed to build query", "error", err)
		return
	}

	orderIDs, err := j.activeOrdersHandler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order status reconcile job failed to list active orders", "error", err)
		return
	}

	for _, orderID := range orderIDs {
		cmd, err := commands.NewRecomputeOrderStatusCommand(orderID)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order status reconcile job failed to build command",
				"orderId", orderID.String(), "error", err)
			continue
		}

		if err := j.recomputeHandler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order status recomputation failed",
				"orderId", orderID.String(), "error", err)
		}
	}
}
