package commands

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/shipment"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// RecomputeOrderStatusCommandHandler re-derives an order's status from its
// shipments and, on an actual change, appends a timeline entry and publishes
// the change to the notification pipeline.
//
// The handler is idempotent: when the derived status matches the stored one,
// or when no derivation rule applies, the order is left untouched and nothing
// is published. This makes it safe to run after every shipment mutation and
// again from the reconciliation job.
type RecomputeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.OrderStatusPolicy
	notifier   ports.OrderStatusNotifier
	logger     *slog.Logger
}

// NewRecomputeOrderStatusCommandHandler creates a handler for order status
// recomputation.
func NewRecomputeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.OrderStatusPolicy,
	notifier ports.OrderStatusNotifier,
	logger *slog.Logger,
) RecomputeOrderStatusCommandHandler {
	return RecomputeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the recomputation command.
func (h *RecomputeOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd RecomputeOrderStatusCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipments, err := uow.ShipmentRepository().GetAllByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	statuses := make([]shipment.Status, 0, len(shipments))
	for _, s := range shipments {
		statuses = append(statuses, s.Status())
	}

	derived, ok := h.policy.Derive(statuses)
	if !ok {
		return nil
	}

	orderAggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if orderAggregate.Status() == derived {
		return nil
	}

	if err = orderAggregate.ChangeStatus(derived, len(shipments)); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, orderAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.PublishOrderStatusChanged(
		ctx, cmd.OrderID(), derived, time.Now().UTC()); err != nil {
		h.logger.Error("failed to publish order status change",
			slog.String("order_id", cmd.OrderID().String()),
			slog.String("status", derived.String()),
			slog.Any("error", err))
	}

	return nil
}
