package shipment

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New(
		"Shipment must be created via NewShipment or RestoreShipment constructor")

	// ErrNoItems is returned when a shipment is created without order items.
	ErrNoItems = errors.New("shipment must contain at least one item")
)

// Details carries the optional carrier-facing attributes of a shipment.
// Zero-value strings and nil pointers mean "not provided".
type Details struct {
	Carrier           string
	TrackingNumber    string
	TrackingURL       string
	Notes             string
	EstimatedDelivery *time.Time
	ShippingCost      *float64
	Weight            *float64
}

// Validate checks the numeric constraints on details.
func (d Details) Validate() error {
	if d.ShippingCost != nil && *d.ShippingCost < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"shippingCost", fmt.Errorf("%v is negative", *d.ShippingCost))
	}
	if d.Weight != nil && *d.Weight < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%v is negative", *d.Weight))
	}
	return nil
}

// Patch describes a partial update of shipment details.
// Nil fields are left untouched; non-nil fields are applied unconditionally.
type Patch struct {
	Carrier           *string
	TrackingNumber    *string
	TrackingURL       *string
	Notes             *string
	EstimatedDelivery *time.Time
	ShippingCost      *float64
	Weight            *float64
}

// Validate checks the numeric constraints on the patch.
func (p Patch) Validate() error {
	if p.ShippingCost != nil && *p.ShippingCost < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"shippingCost", fmt.Errorf("%v is negative", *p.ShippingCost))
	}
	if p.Weight != nil && *p.Weight < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%v is negative", *p.Weight))
	}
	return nil
}

// Shipment is the aggregate root for a seller's dispatch of order items.
// It belongs to exactly one order and one store and carries a subset of the
// order's items; a multi-vendor order accumulates one or more shipments, each
// advancing through its own status lifecycle.
//
// Invariants maintained here:
//   - a shipment always has at least one item
//   - ShippedAt and DeliveredAt are stamped once and never overwritten, even
//     if the status later regresses and advances again
//   - every creation and status change appends exactly one history event
//
// The derived status of the parent order is NOT maintained here; that is the
// order status aggregation policy's job, run after shipment mutations commit.
type Shipment struct {
	id      kernel.UUID
	orderID kernel.UUID
	storeID kernel.UUID

	number      string
	status      Status
	details     Details
	shippedAt   *time.Time
	deliveredAt *time.Time

	items []Item
	// pendingEvents are history entries produced since construction or
	// restoration; repositories persist and discard them on save.
	pendingEvents []Event

	createdAt time.Time

	isConstructed bool
}

// NewShipment creates a PENDING shipment for the given order items, recording
// the initial "Shipment Created" history event attributed to the store.
func NewShipment(
	id kernel.UUID,
	orderID kernel.UUID,
	storeID kernel.UUID,
	number string,
	storeName string,
	items []Item,
	details Details,
) (*Shipment, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), storeID.Validate()); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("shipmentNumber")
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	if err := details.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	s := &Shipment{
		id:            id,
		orderID:       orderID,
		storeID:       storeID,
		number:        number,
		status:        StatusPending,
		details:       details,
		items:         items,
		createdAt:     now,
		isConstructed: true,
	}
	s.pendingEvents = append(s.pendingEvents, NewEvent(
		StatusPending,
		"Shipment Created",
		fmt.Sprintf("Shipment created by %s", storeName),
		now,
	))

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence.
// No history event is produced; pending events start empty.
func RestoreShipment(
	id kernel.UUID,
	orderID kernel.UUID,
	storeID kernel.UUID,
	number string,
	status Status,
	details Details,
	shippedAt *time.Time,
	deliveredAt *time.Time,
	items []Item,
	createdAt time.Time,
) (*Shipment, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), storeID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("shipmentNumber")
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	return &Shipment{
		id:            id,
		orderID:       orderID,
		storeID:       storeID,
		number:        number,
		status:        status,
		details:       details,
		shippedAt:     shippedAt,
		deliveredAt:   deliveredAt,
		items:         items,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ChangeStatus transitions the shipment to the given status.
//
// A transition to the current status is a no-op: no event is recorded and no
// timestamp is touched. Otherwise the status is updated, ShippedAt is stamped
// on the first PICKED_UP, DeliveredAt on the first DELIVERED, and one history
// event is appended from the status lookup tables.
func (s *Shipment) ChangeStatus(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if next == s.status {
		return nil
	}

	now := time.Now().UTC()
	s.status = next

	if next == StatusPickedUp && s.shippedAt == nil {
		s.shippedAt = &now
	}
	if next == StatusDelivered && s.deliveredAt == nil {
		s.deliveredAt = &now
	}

	s.pendingEvents = append(s.pendingEvents, newStatusEvent(next, now))
	return nil
}

// ApplyPatch applies the non-nil fields of the patch to the shipment details.
func (s *Shipment) ApplyPatch(p Patch) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if p.Carrier != nil {
		s.details.Carrier = *p.Carrier
	}
	if p.TrackingNumber != nil {
		s.details.TrackingNumber = *p.TrackingNumber
	}
	if p.TrackingURL != nil {
		s.details.TrackingURL = *p.TrackingURL
	}
	if p.Notes != nil {
		s.details.Notes = *p.Notes
	}
	if p.EstimatedDelivery != nil {
		s.details.EstimatedDelivery = p.EstimatedDelivery
	}
	if p.ShippingCost != nil {
		s.details.ShippingCost = p.ShippingCost
	}
	if p.Weight != nil {
		s.details.Weight = p.Weight
	}
	return nil
}

// IsEqual compares two shipments by identity.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID { return s.id }

// OrderID returns the parent order's identifier.
func (s *Shipment) OrderID() kernel.UUID { return s.orderID }

// StoreID returns the owning store's identifier.
func (s *Shipment) StoreID() kernel.UUID { return s.storeID }

// Number returns the human-readable shipment number.
func (s *Shipment) Number() string { return s.number }

// Status returns the current shipment status.
func (s *Shipment) Status() Status { return s.status }

// Details returns the optional carrier-facing attributes.
func (s *Shipment) Details() Details { return s.details }

// ShippedAt returns the first PICKED_UP timestamp, or nil if never picked up.
func (s *Shipment) ShippedAt() *time.Time { return s.shippedAt }

// DeliveredAt returns the first DELIVERED timestamp, or nil if never delivered.
func (s *Shipment) DeliveredAt() *time.Time { return s.deliveredAt }

// Items returns the order items carried by this shipment.
func (s *Shipment) Items() []Item { return s.items }

// PendingEvents returns history entries not yet persisted.
func (s *Shipment) PendingEvents() []Event { return s.pendingEvents }

// CreatedAt returns the shipment creation time.
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }
