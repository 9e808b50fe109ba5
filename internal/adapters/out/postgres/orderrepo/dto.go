// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders are created by checkout, outside this core; here
// they are loaded for shipment validation and written back only when the
// derived status changes, together with the resulting timeline entries.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"marketplace/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for order headers.
type OrderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID  `gorm:"type:uuid;index"`
	OrderNumber       string     `gorm:"uniqueIndex"`
	Status            string
	ShippingAddressID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the database table name for orders.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents the database structure for order line items.
type OrderItemDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID  `gorm:"type:uuid;index"`
	ProductID uuid.UUID  `gorm:"type:uuid;index"`
	VariantID *uuid.UUID `gorm:"type:uuid"`
	Quantity  int
	Price     float64
}

// TableName specifies the database table name for order items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderTimelineDTO represents one immutable entry of an order's audit log.
// Entries are inserted when the derived order status changes and never
// updated or deleted.
type OrderTimelineDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	Status      string
	Title       string
	Description string
	Icon        string
	CreatedAt   time.Time
}

// TableName specifies the database table name for order timeline entries.
func (OrderTimelineDTO) TableName() string {
	return "order_timelines"
}

// UserDTO represents the database structure of a platform user.
// Present for schema migration and read-side joins; users are managed by the
// accounts service.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"uniqueIndex"`
	FirstName string
	LastName  string
	Role      string
}

// TableName specifies the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}

// AddressDTO represents the database structure of a shipping address.
type AddressDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;index"`
	Line1      string
	Line2      *string
	City       string
	State      string
	PostalCode string
	Country    string
	Phone      *string
}

// TableName specifies the database table name for addresses.
func (AddressDTO) TableName() string {
	return "addresses"
}

// timelineFromDomain converts a pending timeline entry to its database
// representation, assigning a fresh row id.
func timelineFromDomain(orderID uuid.UUID, entry order.TimelineEntry) OrderTimelineDTO {
	return OrderTimelineDTO{
		ID:          uuid.New(),
		OrderID:     orderID,
		Status:      entry.Status().String(),
		Title:       entry.Title(),
		Description: entry.Description(),
		Icon:        entry.Icon(),
		CreatedAt:   entry.OccurredAt(),
	}
}
