package commands

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shipment"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// UpdateShipmentCommandHandler handles the business logic for shipment
// updates. Details are patched unconditionally; a supplied status runs the
// shipment's transition logic, which stamps ShippedAt and DeliveredAt once
// and records a history event on every actual change.
//
// Whenever the command carries a status, the parent order's derived status is
// recomputed after commit, even if the shipment already had that status. The
// recomputation is idempotent, so the extra run is harmless and covers
// earlier runs that may have failed.
type UpdateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	recomputer OrderStatusRecomputer
	cache      ports.ShipmentCache
	logger     *slog.Logger
}

// NewUpdateShipmentCommandHandler creates a handler for shipment updates.
func NewUpdateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	recomputer OrderStatusRecomputer,
	cache ports.ShipmentCache,
	logger *slog.Logger,
) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory: uowFactory,
		recomputer: recomputer,
		cache:      cache,
		logger:     logger,
	}
}

// Handle processes the shipment update command and returns the updated
// shipment.
func (h *UpdateShipmentCommandHandler) Handle(
	ctx context.Context, cmd UpdateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentAggregate, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	shipmentStore, err := uow.StoreRepository().Get(ctx, shipmentAggregate.StoreID())
	if err != nil {
		return nil, err
	}
	if !shipmentStore.IsOwnedBy(cmd.SellerID()) {
		return nil, errs.NewAccessForbiddenError("you do not own this shipment")
	}

	if err = shipmentAggregate.ApplyPatch(cmd.Patch()); err != nil {
		return nil, err
	}
	if cmd.Status() != nil {
		if err = shipmentAggregate.ChangeStatus(*cmd.Status()); err != nil {
			return nil, err
		}
	}

	if err = uow.ShipmentRepository().Update(ctx, shipmentAggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.cache.InvalidateShipment(ctx, cmd.ShipmentID()); err != nil {
		h.logger.Warn("failed to invalidate shipment cache",
			slog.String("shipment_id", cmd.ShipmentID().String()),
			slog.Any("error", err))
	}

	if cmd.Status() != nil {
		h.recomputeOrderStatus(ctx, shipmentAggregate.OrderID())
	}

	return shipmentAggregate, nil
}

func (h *UpdateShipmentCommandHandler) recomputeOrderStatus(ctx context.Context, orderID kernel.UUID) {
	recomputeCmd, err := NewRecomputeOrderStatusCommand(orderID)
	if err != nil {
		h.logger.Error("failed to build order status recompute command",
			slog.String("order_id", orderID.String()),
			slog.Any("error", err))
		return
	}

	if err := h.recomputer.Handle(ctx, recomputeCmd); err != nil {
		h.logger.Error("failed to recompute order status after shipment update",
			slog.String("order_id", orderID.String()),
			slog.Any("error", err))
	}
}
