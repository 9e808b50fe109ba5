// Package redis implements the shipment read cache on a Redis instance.
// Payloads are opaque bytes: the query layer owns serialization so cached
// entries carry the access-check identifiers alongside the response body.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"marketplace/internal/core/domain/model/kernel"
)

// ShipmentCache stores assembled shipment read models in Redis.
type ShipmentCache struct {
	client *redis.Client
}

// NewShipmentCache connects to Redis and verifies the connection with a ping.
func NewShipmentCache(addr string) (*ShipmentCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("connect to redis at %s: %w", addr, err)
	}

	return &ShipmentCache{client: client}, nil
}

// Close releases the underlying connection pool.
func (c *ShipmentCache) Close() error {
	return c.client.Close()
}

// GetShipment returns the cached payload, or (nil, nil) on a miss.
func (c *ShipmentCache) GetShipment(ctx context.Context, id kernel.UUID) ([]byte, error) {
	data, err := c.client.Get(ctx, shipmentKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// SetShipment stores the payload with the given time-to-live.
func (c *ShipmentCache) SetShipment(ctx context.Context, id kernel.UUID, payload []byte, ttl time.Duration) error {
	return c.client.Set(ctx, shipmentKey(id), payload, ttl).Err()
}

// InvalidateShipment removes the cached payload, if any.
func (c *ShipmentCache) InvalidateShipment(ctx context.Context, id kernel.UUID) error {
	return c.client.Del(ctx, shipmentKey(id)).Err()
}

func shipmentKey(id kernel.UUID) string {
	return fmt.Sprintf("shipment:%s", id.String())
}
