package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/access"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderShipmentsEventLimit caps the history attached to each shipment on the
// order view; the single-shipment view carries the full history.
const orderShipmentsEventLimit = 5

// GetOrderShipmentsQueryHandler lists the shipments of one order.
// The order is loaded first to resolve the caller's relation to it; on a
// shared multi-vendor order a non-admin seller is scoped down to shipments
// from their own stores.
type GetOrderShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderShipmentsQueryHandler creates a handler for order shipment
// listings.
func NewGetOrderShipmentsQueryHandler(db *gorm.DB) GetOrderShipmentsQueryHandler {
	return GetOrderShipmentsQueryHandler{db: db}
}

// Handle executes the query. Fails with an object-not-found error when the
// order does not exist and an access-forbidden error when the caller is
// neither the buyer, a seller of any item in the order, nor an admin.
func (h GetOrderShipmentsQueryHandler) Handle(
	ctx context.Context, query GetOrderShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var orderRecord orderRow
	err := h.db.WithContext(ctx).
		Preload("Items.Product").
		First(&orderRecord, "id = ?", query.OrderID().String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", query.OrderID())
		}
		return nil, err
	}

	isBuyer := orderRecord.UserID.String() == query.UserID().String()
	sellerStoreIDs, err := h.sellerStoreIDs(ctx, orderRecord, query)
	if err != nil {
		return nil, err
	}

	relation := access.RelationFor(query.Role(), isBuyer, len(sellerStoreIDs) > 0)
	if !relation.CanListOrderShipments() {
		return nil, errs.NewAccessForbiddenError("you do not have access to this order")
	}

	tx := h.db.WithContext(ctx).
		Preload("Store").
		Preload("Items.OrderItem.Product").
		Preload("Items.OrderItem.Variant").
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("order_id = ?", query.OrderID().String()).
		Order("created_at DESC")

	if relation.ScopedToOwnStores() {
		tx = tx.Where("store_id IN ?", sellerStoreIDs)
	}

	var rows []shipmentRow
	if err = tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	responses := make([]ShipmentResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, toShipmentResponse(row, orderShipmentsEventLimit))
	}
	return responses, nil
}

// sellerStoreIDs resolves which of the order's item stores the caller owns.
// Store ownership rides on the preloaded products, so no extra query runs.
func (h GetOrderShipmentsQueryHandler) sellerStoreIDs(
	ctx context.Context, orderRecord orderRow, query GetOrderShipmentsQuery,
) ([]string, error) {
	storeIDs := make(map[uuid.UUID]struct{})
	for _, item := range orderRecord.Items {
		if item.Product != nil {
			storeIDs[item.Product.StoreID] = struct{}{}
		}
	}
	if len(storeIDs) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(storeIDs))
	for id := range storeIDs {
		ids = append(ids, id)
	}

	var owned []storeRow
	err := h.db.WithContext(ctx).
		Where("id IN ?", ids).
		Where("user_id = ?", query.UserID().String()).
		Find(&owned).Error
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(owned))
	for _, s := range owned {
		result = append(result, s.ID.String())
	}
	return result, nil
}
