package queries

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/access"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// shipmentCacheTTL bounds the staleness of a cached shipment projection;
// writers invalidate eagerly, the TTL covers missed invalidations.
const shipmentCacheTTL = time.Minute

// cachedShipment is the cache payload. Ownership ids are stored alongside
// the projection so the access check also applies to cache hits.
type cachedShipment struct {
	StoreOwnerID uuid.UUID        `json:"storeOwnerId"`
	OrderBuyerID uuid.UUID        `json:"orderBuyerId"`
	Shipment     ShipmentResponse `json:"shipment"`
}

// GetShipmentQueryHandler retrieves one shipment by id, cache-aside.
// A missing shipment is not an error: the handler returns (nil, nil) and the
// transport layer renders an empty body, mirroring how storefront clients
// poll tracking pages for shipments that may not exist yet.
type GetShipmentQueryHandler struct {
	db     *gorm.DB
	cache  ports.ShipmentCache
	logger *slog.Logger
}

// NewGetShipmentQueryHandler creates a handler for single-shipment queries.
func NewGetShipmentQueryHandler(db *gorm.DB, cache ports.ShipmentCache, logger *slog.Logger) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db, cache: cache, logger: logger}
}

// Handle executes the query. Returns (nil, nil) when the shipment does not
// exist and an access-forbidden error when the caller has no visibility
// right on an existing shipment.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context, query GetShipmentQuery,
) (*ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if cached := h.fromCache(ctx, query.ShipmentID()); cached != nil {
		return h.authorize(query, cached)
	}

	var row shipmentRow
	err := h.db.WithContext(ctx).
		Preload("Order.User").
		Preload("Store").
		Preload("Items.OrderItem.Product").
		Preload("Items.OrderItem.Variant").
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&row, "id = ?", query.ShipmentID().String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	payload := cachedShipment{Shipment: toShipmentResponse(row, 0)}
	if row.Store != nil {
		payload.StoreOwnerID = row.Store.UserID
	}
	if row.Order != nil {
		payload.OrderBuyerID = row.Order.UserID
	}

	h.toCache(ctx, query.ShipmentID(), payload)

	return h.authorize(query, &payload)
}

func (h GetShipmentQueryHandler) authorize(
	query GetShipmentQuery, payload *cachedShipment,
) (*ShipmentResponse, error) {
	isBuyer := payload.OrderBuyerID.String() == query.UserID().String()
	isSeller := payload.StoreOwnerID.String() == query.UserID().String()

	relation := access.RelationFor(query.Role(), isBuyer, isSeller)
	if !relation.CanViewShipment() {
		return nil, errs.NewAccessForbiddenError("you do not have access to this shipment")
	}

	return &payload.Shipment, nil
}

func (h GetShipmentQueryHandler) fromCache(ctx context.Context, id kernel.UUID) *cachedShipment {
	data, err := h.cache.GetShipment(ctx, id)
	if err != nil {
		h.logger.Warn("shipment cache read failed",
			slog.String("shipment_id", id.String()),
			slog.Any("error", err))
		return nil
	}
	if data == nil {
		return nil
	}

	var payload cachedShipment
	if err = json.Unmarshal(data, &payload); err != nil {
		h.logger.Warn("shipment cache payload is corrupt",
			slog.String("shipment_id", id.String()),
			slog.Any("error", err))
		return nil
	}
	return &payload
}

func (h GetShipmentQueryHandler) toCache(ctx context.Context, id kernel.UUID, payload cachedShipment) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Warn("shipment cache payload marshal failed",
			slog.String("shipment_id", id.String()),
			slog.Any("error", err))
		return
	}

	if err = h.cache.SetShipment(ctx, id, data, shipmentCacheTTL); err != nil {
		h.logger.Warn("shipment cache write failed",
			slog.String("shipment_id", id.String()),
			slog.Any("error", err))
	}
}
