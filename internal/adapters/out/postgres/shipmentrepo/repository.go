package shipmentrepo

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shipment"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment with its items and pending events.
// A unique-index violation on an order item means another shipment claimed
// it concurrently; it surfaces as a value-is-invalid error, the same shape
// the pre-insert check produces. Requires the connection to run with GORM
// error translation enabled.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("itemIds",
				errors.New("items already in shipment"))
		}
		return err
	}

	if err := r.insertPendingEvents(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists changes to an existing shipment and appends its pending
// events. Items are immutable after creation and are not written back.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&SellerShipmentDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":             dto.Status,
			"carrier":            dto.Carrier,
			"tracking_number":    dto.TrackingNumber,
			"tracking_url":       dto.TrackingURL,
			"notes":              dto.Notes,
			"estimated_delivery": dto.EstimatedDelivery,
			"shipping_cost":      dto.ShippingCost,
			"weight":             dto.Weight,
			"shipped_at":         dto.ShippedAt,
			"delivered_at":       dto.DeliveredAt,
			"updated_at":         time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.insertPendingEvents(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment with its items by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SellerShipmentDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves every shipment of the given order with items.
func (r *GormShipmentRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*shipment.Shipment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []SellerShipmentDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}

	return shipments, nil
}

// GetShippedOrderItemIDs returns the subset of the given order item ids that
// already belong to a shipment item.
func (r *GormShipmentRepository) GetShippedOrderItemIDs(
	ctx context.Context, orderItemIDs []kernel.UUID,
) ([]kernel.UUID, error) {
	if len(orderItemIDs) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(orderItemIDs))
	for _, id := range orderItemIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		ids = append(ids, id.Bytes())
	}

	var taken []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&ShipmentItemDTO{}).
		Where("order_item_id IN ?", ids).
		Pluck("order_item_id", &taken).Error
	if err != nil {
		return nil, err
	}

	result := make([]kernel.UUID, 0, len(taken))
	for _, raw := range taken {
		id, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}
		result = append(result, id)
	}

	return result, nil
}

func (r *GormShipmentRepository) insertPendingEvents(ctx context.Context, aggregate *shipment.Shipment) error {
	for _, event := range aggregate.PendingEvents() {
		dto := eventFromDomain(aggregate.ID().Bytes(), event)
		if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			return err
		}
	}
	return nil
}
