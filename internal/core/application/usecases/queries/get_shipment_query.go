package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/access"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves one shipment with its order, store, items and
// event history. The caller's identity and role drive the access check:
// buyers see shipments of their own orders, sellers see shipments of their
// own stores, admins see everything.
type GetShipmentQuery struct {
	shipmentID kernel.UUID
	userID     kernel.UUID
	role       access.Role

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query to retrieve a shipment by id.
func NewGetShipmentQuery(shipmentID, userID kernel.UUID, role access.Role) (GetShipmentQuery, error) {
	if err := errors.Join(shipmentID.Validate(), userID.Validate()); err != nil {
		return GetShipmentQuery{}, err
	}

	return GetShipmentQuery{
		shipmentID: shipmentID,
		userID:     userID,
		role:       role,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID returns the requested shipment's identifier.
func (q GetShipmentQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// UserID returns the calling user's identifier.
func (q GetShipmentQuery) UserID() kernel.UUID {
	return q.userID
}

// Role returns the calling user's role.
func (q GetShipmentQuery) Role() access.Role {
	return q.role
}
