package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates as
// this core sees them: loading for validation and derived-status updates.
type OrderRepository interface {
	// Get retrieves an order with its line items and their owning stores.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Update persists the order's status and appends any pending timeline
	// entries produced by ChangeStatus. The order must already exist.
	Update(ctx context.Context, aggregate *order.Order) error
}
