package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment with its items and pending events.
	// Storage enforces that no order item is referenced by two shipment
	// items; a violation surfaces as a value-is-invalid error.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment and appends its
	// pending events. The shipment must already exist.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment with its items by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetAllByOrder retrieves every shipment of the given order, with items.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*shipment.Shipment, error)

	// GetShippedOrderItemIDs returns the subset of the given order item ids
	// that already belong to some shipment item, in no particular order.
	GetShippedOrderItemIDs(ctx context.Context, orderItemIDs []kernel.UUID) ([]kernel.UUID, error)
}
