package kafka

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// NoopOrderStatusNotifier discards status change events. Used when no broker
// is configured, so local runs do not need a Kafka cluster.
type NoopOrderStatusNotifier struct{}

// NewNoopOrderStatusNotifier creates a notifier that publishes nothing.
func NewNoopOrderStatusNotifier() NoopOrderStatusNotifier {
	return NoopOrderStatusNotifier{}
}

// PublishOrderStatusChanged does nothing and always succeeds.
func (NoopOrderStatusNotifier) PublishOrderStatusChanged(
	context.Context, kernel.UUID, order.Status, time.Time,
) error {
	return nil
}
