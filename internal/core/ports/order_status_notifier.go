package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderStatusNotifier publishes order status changes to interested consumers
// (notification and analytics pipelines). Publication is best-effort: the
// status change is already committed when the notifier runs, and failures are
// logged, never propagated back to the caller.
type OrderStatusNotifier interface {
	PublishOrderStatusChanged(ctx context.Context, orderID kernel.UUID, status order.Status, occurredAt time.Time) error
}
