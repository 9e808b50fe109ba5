// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. This is the only aggregate this core both reads
// and writes in full: shipment headers, their items, and the append-only
// event history.
package shipmentrepo

import (
	"time"

	"github.com/google/uuid"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shipment"
)

// SellerShipmentDTO represents the database structure for shipment headers.
// Optional carrier-facing attributes are nullable columns; the domain's
// empty string maps to NULL.
type SellerShipmentDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID `gorm:"type:uuid;index"`
	StoreID           uuid.UUID `gorm:"type:uuid;index"`
	ShipmentNumber    string    `gorm:"uniqueIndex"`
	Status            string    `gorm:"index"`
	Carrier           *string
	TrackingNumber    *string
	TrackingURL       *string
	Notes             *string
	EstimatedDelivery *time.Time
	ShippingCost      *float64
	Weight            *float64
	ShippedAt         *time.Time
	DeliveredAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Items []ShipmentItemDTO `gorm:"foreignKey:ShipmentID"`
}

// TableName specifies the database table name for shipments.
func (SellerShipmentDTO) TableName() string {
	return "seller_shipments"
}

// ShipmentItemDTO represents the database structure for shipment items.
// The unique index on OrderItemID is what makes double-shipping impossible
// under concurrent creates.
type ShipmentItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;index"`
	OrderItemID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Quantity    int
}

// TableName specifies the database table name for shipment items.
func (ShipmentItemDTO) TableName() string {
	return "shipment_items"
}

// ShipmentEventDTO represents one append-only entry of a shipment's history.
type ShipmentEventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;index"`
	Status      string
	Title       string
	Description string
	CreatedAt   time.Time
}

// TableName specifies the database table name for shipment events.
func (ShipmentEventDTO) TableName() string {
	return "shipment_events"
}

// fromDomain converts a shipment domain aggregate to its database
// representation, items included. Pending events are mapped separately
// because they are inserted, never updated.
func fromDomain(aggregate *shipment.Shipment) SellerShipmentDTO {
	details := aggregate.Details()

	dto := SellerShipmentDTO{
		ID:                aggregate.ID().Bytes(),
		OrderID:           aggregate.OrderID().Bytes(),
		StoreID:           aggregate.StoreID().Bytes(),
		ShipmentNumber:    aggregate.Number(),
		Status:            aggregate.Status().String(),
		Carrier:           optionalString(details.Carrier),
		TrackingNumber:    optionalString(details.TrackingNumber),
		TrackingURL:       optionalString(details.TrackingURL),
		Notes:             optionalString(details.Notes),
		EstimatedDelivery: details.EstimatedDelivery,
		ShippingCost:      details.ShippingCost,
		Weight:            details.Weight,
		ShippedAt:         aggregate.ShippedAt(),
		DeliveredAt:       aggregate.DeliveredAt(),
		CreatedAt:         aggregate.CreatedAt(),
	}

	for _, item := range aggregate.Items() {
		dto.Items = append(dto.Items, ShipmentItemDTO{
			ID:          uuid.New(),
			ShipmentID:  dto.ID,
			OrderItemID: item.OrderItemID().Bytes(),
			Quantity:    item.Quantity(),
		})
	}

	return dto
}

// eventFromDomain converts a pending history event to its database
// representation, assigning a fresh row id.
func eventFromDomain(shipmentID uuid.UUID, event shipment.Event) ShipmentEventDTO {
	return ShipmentEventDTO{
		ID:          uuid.New(),
		ShipmentID:  shipmentID,
		Status:      event.Status().String(),
		Title:       event.Title(),
		Description: event.Description(),
		CreatedAt:   event.OccurredAt(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
func toDomain(dto SellerShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}
	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]shipment.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		orderItemID, idErr := kernel.UUIDFromBytes(itemDTO.OrderItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		item, itemErr := shipment.NewItem(orderItemID, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	details := shipment.Details{
		Carrier:           stringValue(dto.Carrier),
		TrackingNumber:    stringValue(dto.TrackingNumber),
		TrackingURL:       stringValue(dto.TrackingURL),
		Notes:             stringValue(dto.Notes),
		EstimatedDelivery: dto.EstimatedDelivery,
		ShippingCost:      dto.ShippingCost,
		Weight:            dto.Weight,
	}

	return shipment.RestoreShipment(
		id, orderID, storeID,
		dto.ShipmentNumber, status, details,
		dto.ShippedAt, dto.DeliveredAt,
		items, dto.CreatedAt,
	)
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
