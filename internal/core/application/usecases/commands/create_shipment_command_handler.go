package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shipment"
	"marketplace/internal/pkg/errs"
)

// CreateShipmentCommandHandler handles the business logic for shipment
// creation. A seller dispatches a subset of an order's items from one of
// their stores; the handler verifies store ownership, item membership and
// that none of the items was already shipped, then persists the new PENDING
// shipment with its initial history event.
//
// After the transaction commits, the parent order's derived status is
// recomputed best-effort: a recomputation failure is logged but never fails
// the already-committed shipment.
type CreateShipmentCommandHandler struct {
	uowFactory UoWFactory
	recomputer OrderStatusRecomputer
	logger     *slog.Logger
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(
	uowFactory UoWFactory,
	recomputer OrderStatusRecomputer,
	logger *slog.Logger,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		recomputer: recomputer,
		logger:     logger,
	}
}

// Handle processes the shipment creation command and returns the new
// shipment.
//
// Ownership of a store the caller does not own, or of a store that does not
// exist, surfaces as an access-forbidden error; the two cases are not
// distinguished so callers cannot probe for store existence. Item problems
// surface as value-is-invalid errors.
func (h *CreateShipmentCommandHandler) Handle(
	ctx context.Context, cmd CreateShipmentCommand,
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

	shipmentStore, err := uow.StoreRepository().Get(ctx, cmd.StoreID())
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return nil, errs.NewAccessForbiddenError("you do not own this store")
		}
		return nil, err
	}
	if !shipmentStore.IsOwnedBy(cmd.SellerID()) {
		return nil, errs.NewAccessForbiddenError("you do not own this store")
	}

	orderAggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			// An unknown order matches no items, the same outcome the
			// membership check below produces.
			return nil, itemsMismatchError(cmd.ItemIDs())
		}
		return nil, err
	}

	matched := orderAggregate.ItemsMatching(cmd.ItemIDs(), cmd.StoreID())
	if len(matched) != len(cmd.ItemIDs()) {
		return nil, itemsMismatchError(cmd.ItemIDs())
	}

	shipmentRepo := uow.ShipmentRepository()

	alreadyShipped, err := shipmentRepo.GetShippedOrderItemIDs(ctx, cmd.ItemIDs())
	if err != nil {
		return nil, err
	}
	if len(alreadyShipped) > 0 {
		ids := make([]string, 0, len(alreadyShipped))
		for _, id := range alreadyShipped {
			ids = append(ids, id.String())
		}
		return nil, errs.NewValueIsInvalidErrorWithCause("itemIds",
			fmt.Errorf("items already in shipment: %s", strings.Join(ids, ", ")))
	}

	items := make([]shipment.Item, 0, len(matched))
	for _, orderItem := range matched {
		item, itemErr := shipment.NewItem(orderItem.ID(), orderItem.Quantity())
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	shipmentAggregate, err := shipment.NewShipment(
		kernel.NewUUID(),
		cmd.OrderID(),
		cmd.StoreID(),
		shipment.NewNumber(time.Now()),
		shipmentStore.Name(),
		items,
		cmd.Details(),
	)
	if err != nil {
		return nil, err
	}

	// The unique index on shipment items is the safety net for concurrent
	// creates that pass the check above; the repository maps the violation
	// to a value-is-invalid error.
	if err = shipmentRepo.Add(ctx, shipmentAggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.recomputeOrderStatus(ctx, cmd.OrderID())

	return shipmentAggregate, nil
}

// itemsMismatchError names every requested item id: the membership check
// compares set sizes, so the missing subset itself is not known here.
func itemsMismatchError(itemIDs []kernel.UUID) error {
	ids := make([]string, 0, len(itemIDs))
	for _, id := range itemIDs {
		ids = append(ids, id.String())
	}
	return errs.NewValueIsInvalidErrorWithCause("itemIds",
		fmt.Errorf("some items do not belong to your store or this order: %s",
			strings.Join(ids, ", ")))
}

func (h *CreateShipmentCommandHandler) recomputeOrderStatus(ctx context.Context, orderID kernel.UUID) {
	recomputeCmd, err := NewRecomputeOrderStatusCommand(orderID)
	if err != nil {
		h.logger.Error("failed to build order status recompute command",
			slog.String("order_id", orderID.String()),
			slog.Any("error", err))
		return
	}

	if err := h.recomputer.Handle(ctx, recomputeCmd); err != nil {
		h.logger.Error("failed to recompute order status after shipment creation",
			slog.String("order_id", orderID.String()),
			slog.Any("error", err))
	}
}
