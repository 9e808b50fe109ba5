package queries

import (
	"errors"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetActiveShipmentOrdersQueryIsNotConstructed = errors.New(
	"GetActiveShipmentOrdersQuery must be created via NewGetActiveShipmentOrdersQuery constructor",
)

// GetActiveShipmentOrdersQuery retrieves the ids of orders whose shipments
// changed within a recent window. The reconciliation job feeds these into
// the order status recomputation to repair runs that failed after commit.
type GetActiveShipmentOrdersQuery struct {
	window time.Duration

	guard guard.ConstructorGuard
}

// NewGetActiveShipmentOrdersQuery creates a query for orders with recent
// shipment activity. The window must be positive.
func NewGetActiveShipmentOrdersQuery(window time.Duration) (GetActiveShipmentOrdersQuery, error) {
	if window <= 0 {
		return GetActiveShipmentOrdersQuery{},
			errs.NewValueIsOutOfRangeError("window", window, "1ns", "unbounded")
	}

	return GetActiveShipmentOrdersQuery{
		window: window,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveShipmentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveShipmentOrdersQueryIsNotConstructed)
}

// Window returns the activity look-back window.
func (q GetActiveShipmentOrdersQuery) Window() time.Duration {
	return q.window
}
