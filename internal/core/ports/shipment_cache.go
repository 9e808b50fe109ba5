package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// ShipmentCache is a byte-level cache for assembled shipment read models.
// Readers treat it cache-aside and best-effort; writers invalidate after
// mutating a shipment.
type ShipmentCache interface {
	// GetShipment returns the cached payload, or (nil, nil) on a miss.
	GetShipment(ctx context.Context, id kernel.UUID) ([]byte, error)

	// SetShipment stores the payload with the given time-to-live.
	SetShipment(ctx context.Context, id kernel.UUID, payload []byte, ttl time.Duration) error

	// InvalidateShipment removes the cached payload, if any.
	InvalidateShipment(ctx context.Context, id kernel.UUID) error
}
