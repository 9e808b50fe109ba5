package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrRecomputeOrderStatusCommandIsNotConstructed = errors.New(
	"RecomputeOrderStatusCommand must be created via NewRecomputeOrderStatusCommand constructor",
)

// RecomputeOrderStatusCommand requests a re-derivation of one order's status
// from the statuses of its shipments. It is issued after every shipment
// mutation that touches a status, and periodically by the reconciliation job
// to repair missed runs.
type RecomputeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecomputeOrderStatusCommand creates a command to recompute an order's
// derived status.
func NewRecomputeOrderStatusCommand(orderID kernel.UUID) (RecomputeOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RecomputeOrderStatusCommand{}, err
	}

	return RecomputeOrderStatusCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecomputeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrRecomputeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order whose status should be recomputed.
func (c RecomputeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}
