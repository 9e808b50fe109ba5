package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveShipmentOrdersQueryHandler finds orders with recent shipment
// activity. Used by the reconciliation job.
type GetActiveShipmentOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveShipmentOrdersQueryHandler creates a handler for the
// recent-activity query.
func NewGetActiveShipmentOrdersQueryHandler(db *gorm.DB) GetActiveShipmentOrdersQueryHandler {
	return GetActiveShipmentOrdersQueryHandler{db: db}
}

// Handle executes the query and returns distinct order ids whose shipments
// were created or updated inside the window.
func (h GetActiveShipmentOrdersQueryHandler) Handle(
	ctx context.Context, query GetActiveShipmentOrdersQuery,
) ([]kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-query.Window())

	orderIDs := make([]kernel.UUID, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT order_id
		FROM seller_shipments
		WHERE updated_at >= ?
		ORDER BY order_id
	`, cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderIDs = append(orderIDs, orderID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orderIDs, nil
}
