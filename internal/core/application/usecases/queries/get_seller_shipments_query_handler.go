package queries

import (
	"context"

	"gorm.io/gorm"
)

// sellerShipmentsEventLimit caps the history attached to each shipment on
// the seller dashboard listing.
const sellerShipmentsEventLimit = 3

// GetSellerShipmentsQueryHandler serves the seller dashboard: a paginated,
// filterable listing of shipments across all of the seller's stores.
type GetSellerShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetSellerShipmentsQueryHandler creates a handler for seller shipment
// listings.
func NewGetSellerShipmentsQueryHandler(db *gorm.DB) GetSellerShipmentsQueryHandler {
	return GetSellerShipmentsQueryHandler{db: db}
}

// Handle executes the query. A seller with no stores gets an empty first
// page with zero totals; the shipments table is not touched.
func (h GetSellerShipmentsQueryHandler) Handle(
	ctx context.Context, query GetSellerShipmentsQuery,
) (*SellerShipmentsPageResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var storeIDs []string
	err := h.db.WithContext(ctx).
		Model(&storeRow{}).
		Where("user_id = ?", query.SellerID().String()).
		Pluck("id", &storeIDs).Error
	if err != nil {
		return nil, err
	}

	if len(storeIDs) == 0 {
		return &SellerShipmentsPageResponse{
			Shipments:  []ShipmentResponse{},
			Total:      0,
			Page:       1,
			PageSize:   query.Limit(),
			TotalPages: 0,
		}, nil
	}

	// Fresh statement per finisher; gorm statements are not reusable after
	// Count.
	filtered := func() *gorm.DB {
		tx := h.db.WithContext(ctx).
			Model(&shipmentRow{}).
			Where("seller_shipments.store_id IN ?", storeIDs)

		if query.Status() != nil {
			tx = tx.Where("seller_shipments.status = ?", query.Status().String())
		}
		if query.Search() != "" {
			pattern := "%" + query.Search() + "%"
			tx = tx.
				Joins("LEFT JOIN orders ON orders.id = seller_shipments.order_id").
				Where(
					"seller_shipments.shipment_number ILIKE ? OR seller_shipments.tracking_number ILIKE ? OR orders.order_number ILIKE ?",
					pattern, pattern, pattern,
				)
		}
		return tx
	}

	var total int64
	if err = filtered().Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []shipmentRow
	err = filtered().
		Preload("Order.User").
		Preload("Order.ShippingAddress").
		Preload("Store").
		Preload("Items.OrderItem.Product").
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Order("seller_shipments.created_at DESC").
		Offset((query.Page() - 1) * query.Limit()).
		Limit(query.Limit()).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	shipments := make([]ShipmentResponse, 0, len(rows))
	for _, row := range rows {
		shipments = append(shipments, toShipmentResponse(row, sellerShipmentsEventLimit))
	}

	totalPages := int((total + int64(query.Limit()) - 1) / int64(query.Limit()))

	return &SellerShipmentsPageResponse{
		Shipments:  shipments,
		Total:      total,
		Page:       query.Page(),
		PageSize:   query.Limit(),
		TotalPages: totalPages,
	}, nil
}
