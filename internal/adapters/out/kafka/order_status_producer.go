// Package kafka publishes order status changes to the event bus consumed by
// the notification and analytics services.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// orderStatusChangedMessage is the wire format of a status change event.
// Keyed by order id so all events of one order land on the same partition.
type orderStatusChangedMessage struct {
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderStatusProducer writes order status change events to a Kafka topic.
type OrderStatusProducer struct {
	writer *kafka.Writer
}

// NewOrderStatusProducer creates a producer for the given brokers and topic.
func NewOrderStatusProducer(brokers []string, topic string) *OrderStatusProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}
	return &OrderStatusProducer{writer: writer}
}

// PublishOrderStatusChanged emits one event for a committed status change.
func (p *OrderStatusProducer) PublishOrderStatusChanged(
	ctx context.Context,
	orderID kernel.UUID,
	status order.Status,
	occurredAt time.Time,
) error {
	data, err := json.Marshal(orderStatusChangedMessage{
		OrderID:    orderID.String(),
		Status:     status.String(),
		OccurredAt: occurredAt,
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(orderID.String()),
		Value: data,
		Time:  occurredAt,
	})
}

// Close flushes buffered messages and releases the writer.
func (p *OrderStatusProducer) Close() error {
	return p.writer.Close()
}
