package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/access"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderShipmentsQueryIsNotConstructed = errors.New(
	"GetOrderShipmentsQuery must be created via NewGetOrderShipmentsQuery constructor",
)

// GetOrderShipmentsQuery retrieves every shipment of one order visible to the
// caller. Buyers and admins see all of the order's shipments; a non-admin
// seller only sees shipments dispatched from stores they own.
type GetOrderShipmentsQuery struct {
	orderID kernel.UUID
	userID  kernel.UUID
	role    access.Role

	guard guard.ConstructorGuard
}

// NewGetOrderShipmentsQuery creates a query to list an order's shipments.
func NewGetOrderShipmentsQuery(orderID, userID kernel.UUID, role access.Role) (GetOrderShipmentsQuery, error) {
	if err := errors.Join(orderID.Validate(), userID.Validate()); err != nil {
		return GetOrderShipmentsQuery{}, err
	}

	return GetOrderShipmentsQuery{
		orderID: orderID,
		userID:  userID,
		role:    role,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderShipmentsQueryIsNotConstructed)
}

// OrderID returns the parent order's identifier.
func (q GetOrderShipmentsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// UserID returns the calling user's identifier.
func (q GetOrderShipmentsQuery) UserID() kernel.UUID {
	return q.userID
}

// Role returns the calling user's role.
func (q GetOrderShipmentsQuery) Role() access.Role {
	return q.role
}
