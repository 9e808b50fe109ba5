// Package queries contains read operations for shipment and order data.
// Implements the Query pattern for the read side of the CQRS architecture.
// Query handlers bypass the domain model and read row models straight from
// the database, assembling denormalized responses for the transport layer.
package queries

import (
	"time"

	"github.com/google/uuid"
)

// Row models map the storage tables for read-side access. They carry only
// the columns and associations the queries project; writes go through the
// repositories, never through these types.

type userRow struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string
	FirstName string
	LastName  string
}

func (userRow) TableName() string { return "users" }

type storeRow struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid"`
	Name   string
}

func (storeRow) TableName() string { return "stores" }

type productRow struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID  uuid.UUID `gorm:"type:uuid"`
	Title    string
	ImageURL *string
}

func (productRow) TableName() string { return "products" }

type variantRow struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Name      string
}

func (variantRow) TableName() string { return "product_variants" }

type addressRow struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Line1      string
	Line2      *string
	City       string
	State      string
	PostalCode string
	Country    string
	Phone      *string
}

func (addressRow) TableName() string { return "addresses" }

type orderRow struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID  `gorm:"type:uuid"`
	OrderNumber       string
	Status            string
	ShippingAddressID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time

	User            *userRow    `gorm:"foreignKey:UserID"`
	ShippingAddress *addressRow `gorm:"foreignKey:ShippingAddressID"`
	Items           []orderItemRow
}

func (orderRow) TableName() string { return "orders" }

type orderItemRow struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID  `gorm:"type:uuid"`
	ProductID uuid.UUID  `gorm:"type:uuid"`
	VariantID *uuid.UUID `gorm:"type:uuid"`
	Quantity  int
	Price     float64

	Product *productRow `gorm:"foreignKey:ProductID"`
	Variant *variantRow `gorm:"foreignKey:VariantID"`
}

func (orderItemRow) TableName() string { return "order_items" }

type shipmentRow struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID `gorm:"type:uuid"`
	StoreID           uuid.UUID `gorm:"type:uuid"`
	ShipmentNumber    string
	Status            string
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

	Order  *orderRow `gorm:"foreignKey:OrderID"`
	Store  *storeRow `gorm:"foreignKey:StoreID"`
	Items  []shipmentItemRow
	Events []shipmentEventRow
}

func (shipmentRow) TableName() string { return "seller_shipments" }

type shipmentItemRow struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID  uuid.UUID `gorm:"type:uuid"`
	OrderItemID uuid.UUID `gorm:"type:uuid"`
	Quantity    int

	OrderItem *orderItemRow `gorm:"foreignKey:OrderItemID"`
}

func (shipmentItemRow) TableName() string { return "shipment_items" }

type shipmentEventRow struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID  uuid.UUID `gorm:"type:uuid"`
	Status      string
	Title       string
	Description string
	CreatedAt   time.Time
}

func (shipmentEventRow) TableName() string { return "shipment_events" }

// Response DTOs returned to the transport layer.

// BuyerResponse is the buyer summary attached to an order.
type BuyerResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// AddressResponse is a shipping address.
type AddressResponse struct {
	Line1      string  `json:"line1"`
	Line2      *string `json:"line2,omitempty"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postalCode"`
	Country    string  `json:"country"`
	Phone      *string `json:"phone,omitempty"`
}

// OrderSummaryResponse is the parent-order projection attached to a shipment.
type OrderSummaryResponse struct {
	ID              string           `json:"id"`
	OrderNumber     string           `json:"orderNumber"`
	Status          string           `json:"status"`
	Buyer           *BuyerResponse   `json:"buyer,omitempty"`
	ShippingAddress *AddressResponse `json:"shippingAddress,omitempty"`
}

// StoreResponse is the owning-store projection attached to a shipment.
type StoreResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductResponse is the product projection attached to a shipment item.
type ProductResponse struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// VariantResponse is the product-variant projection attached to a shipment item.
type VariantResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ShipmentItemResponse is one order item inside a shipment.
type ShipmentItemResponse struct {
	ID          string           `json:"id"`
	OrderItemID string           `json:"orderItemId"`
	Quantity    int              `json:"quantity"`
	Price       float64          `json:"price"`
	Product     *ProductResponse `json:"product,omitempty"`
	Variant     *VariantResponse `json:"variant,omitempty"`
}

// ShipmentEventResponse is one entry of a shipment's history, newest first.
type ShipmentEventResponse struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ShipmentResponse is the full shipment projection.
type ShipmentResponse struct {
	ID                string                  `json:"id"`
	OrderID           string                  `json:"orderId"`
	StoreID           string                  `json:"storeId"`
	ShipmentNumber    string                  `json:"shipmentNumber"`
	Status            string                  `json:"status"`
	Carrier           *string                 `json:"carrier,omitempty"`
	TrackingNumber    *string                 `json:"trackingNumber,omitempty"`
	TrackingURL       *string                 `json:"trackingUrl,omitempty"`
	Notes             *string                 `json:"notes,omitempty"`
	EstimatedDelivery *time.Time              `json:"estimatedDelivery,omitempty"`
	ShippingCost      *float64                `json:"shippingCost,omitempty"`
	Weight            *float64                `json:"weight,omitempty"`
	ShippedAt         *time.Time              `json:"shippedAt,omitempty"`
	DeliveredAt       *time.Time              `json:"deliveredAt,omitempty"`
	CreatedAt         time.Time               `json:"createdAt"`
	UpdatedAt         time.Time               `json:"updatedAt"`
	Order             *OrderSummaryResponse   `json:"order,omitempty"`
	Store             *StoreResponse          `json:"store,omitempty"`
	Items             []ShipmentItemResponse  `json:"items"`
	Events            []ShipmentEventResponse `json:"events"`
}

// SellerShipmentsPageResponse is one page of a seller's shipments.
type SellerShipmentsPageResponse struct {
	Shipments  []ShipmentResponse `json:"shipments"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	TotalPages int                `json:"totalPages"`
}

// toShipmentResponse maps a loaded row to the transport projection, keeping
// at most eventLimit newest events (0 keeps the full history).
func toShipmentResponse(row shipmentRow, eventLimit int) ShipmentResponse {
	resp := ShipmentResponse{
		ID:                row.ID.String(),
		OrderID:           row.OrderID.String(),
		StoreID:           row.StoreID.String(),
		ShipmentNumber:    row.ShipmentNumber,
		Status:            row.Status,
		Carrier:           row.Carrier,
		TrackingNumber:    row.TrackingNumber,
		TrackingURL:       row.TrackingURL,
		Notes:             row.Notes,
		EstimatedDelivery: row.EstimatedDelivery,
		ShippingCost:      row.ShippingCost,
		Weight:            row.Weight,
		ShippedAt:         row.ShippedAt,
		DeliveredAt:       row.DeliveredAt,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
		Items:             make([]ShipmentItemResponse, 0, len(row.Items)),
		Events:            make([]ShipmentEventResponse, 0, len(row.Events)),
	}

	if row.Order != nil {
		resp.Order = toOrderSummaryResponse(*row.Order)
	}
	if row.Store != nil {
		resp.Store = &StoreResponse{
			ID:   row.Store.ID.String(),
			Name: row.Store.Name,
		}
	}

	for _, item := range row.Items {
		itemResp := ShipmentItemResponse{
			ID:          item.ID.String(),
			OrderItemID: item.OrderItemID.String(),
			Quantity:    item.Quantity,
		}
		if item.OrderItem != nil {
			itemResp.Price = item.OrderItem.Price
			if item.OrderItem.Product != nil {
				itemResp.Product = &ProductResponse{
					ID:       item.OrderItem.Product.ID.String(),
					Title:    item.OrderItem.Product.Title,
					ImageURL: item.OrderItem.Product.ImageURL,
				}
			}
			if item.OrderItem.Variant != nil {
				itemResp.Variant = &VariantResponse{
					ID:   item.OrderItem.Variant.ID.String(),
					Name: item.OrderItem.Variant.Name,
				}
			}
		}
		resp.Items = append(resp.Items, itemResp)
	}

	// Events are preloaded newest first; a per-parent LIMIT inside a
	// preload is not expressible, so the cut happens here.
	events := row.Events
	if eventLimit > 0 && len(events) > eventLimit {
		events = events[:eventLimit]
	}
	for _, event := range events {
		resp.Events = append(resp.Events, ShipmentEventResponse{
			ID:          event.ID.String(),
			Status:      event.Status,
			Title:       event.Title,
			Description: event.Description,
			CreatedAt:   event.CreatedAt,
		})
	}

	return resp
}

func toOrderSummaryResponse(row orderRow) *OrderSummaryResponse {
	summary := &OrderSummaryResponse{
		ID:          row.ID.String(),
		OrderNumber: row.OrderNumber,
		Status:      row.Status,
	}
	if row.User != nil {
		summary.Buyer = &BuyerResponse{
			ID:        row.User.ID.String(),
			Email:     row.User.Email,
			FirstName: row.User.FirstName,
			LastName:  row.User.LastName,
		}
	}
	if row.ShippingAddress != nil {
		summary.ShippingAddress = &AddressResponse{
			Line1:      row.ShippingAddress.Line1,
			Line2:      row.ShippingAddress.Line2,
			City:       row.ShippingAddress.City,
			State:      row.ShippingAddress.State,
			PostalCode: row.ShippingAddress.PostalCode,
			Country:    row.ShippingAddress.Country,
			Phone:      row.ShippingAddress.Phone,
		}
	}
	return summary
}
