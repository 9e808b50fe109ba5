package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New(
		"Order must be created via NewOrder or RestoreOrder constructor")

	// ErrItemIsNotConstructed is returned when an Item instance was not
	// created through the NewItem factory method.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is a purchased line item of an order. StoreID identifies the store
// owning the purchased product, which is what ties a line item to the seller
// allowed to ship it.
type Item struct {
	id        kernel.UUID
	productID kernel.UUID
	storeID   kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewItem creates an order line item. Quantity must be positive.
func NewItem(id, productID, storeID kernel.UUID, quantity int) (Item, error) {
	if err := errors.Join(id.Validate(), productID.Validate(), storeID.Validate()); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return Item{
		id:        id,
		productID: productID,
		storeID:   storeID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the order item's unique identifier.
func (i Item) ID() kernel.UUID { return i.id }

// ProductID returns the purchased product's identifier.
func (i Item) ProductID() kernel.UUID { return i.productID }

// StoreID returns the identifier of the store owning the product.
func (i Item) StoreID() kernel.UUID { return i.storeID }

// Quantity returns the purchased quantity.
func (i Item) Quantity() int { return i.quantity }

// Order is the aggregate this core derives status for. It is created at
// checkout (outside this core) and mutated here only through ChangeStatus,
// which the order status aggregation policy drives from shipment state.
//
// Invariants maintained here:
//   - the status field changes only through ChangeStatus
//   - every actual status change appends exactly one timeline entry;
//     a ChangeStatus to the current status appends nothing
type Order struct {
	id      kernel.UUID
	buyerID kernel.UUID
	number  string
	status  Status
	items   []Item

	// pendingTimeline holds entries produced since construction or
	// restoration; repositories persist and discard them on save.
	pendingTimeline []TimelineEntry

	isConstructed bool
}

// NewOrder creates a PENDING order with the given line items.
func NewOrder(id, buyerID kernel.UUID, number string, items []Item) (*Order, error) {
	return RestoreOrder(id, buyerID, number, StatusPending, items)
}

// RestoreOrder reconstructs an order from persistence with an explicit status.
func RestoreOrder(id, buyerID kernel.UUID, number string, status Status, items []Item) (*Order, error) {
	if err := errors.Join(id.Validate(), buyerID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		buyerID:       buyerID,
		number:        number,
		status:        status,
		items:         items,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ChangeStatus moves the order to the given status and appends one timeline
// entry. Changing to the current status is a no-op, which is what makes the
// shipment-driven recomputation idempotent.
func (o *Order) ChangeStatus(next Status, shipmentCount int) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if next == o.status {
		return nil
	}

	o.status = next
	o.pendingTimeline = append(o.pendingTimeline,
		NewTimelineEntry(next, shipmentCount, time.Now().UTC()))
	return nil
}

// ItemsMatching returns the subset of the order's items whose id appears in
// itemIDs and whose product is owned by storeID. The caller compares the
// result's size with the requested set's size to detect foreign or unknown
// items.
func (o *Order) ItemsMatching(itemIDs []kernel.UUID, storeID kernel.UUID) []Item {
	requested := make(map[kernel.UUID]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		requested[id] = struct{}{}
	}

	var matched []Item
	for _, item := range o.items {
		if _, ok := requested[item.id]; !ok {
			continue
		}
		if !item.storeID.IsEqual(storeID) {
			continue
		}
		matched = append(matched, item)
	}
	return matched
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// BuyerID returns the identifier of the user who placed the order.
func (o *Order) BuyerID() kernel.UUID { return o.buyerID }

// Number returns the human-readable order number.
func (o *Order) Number() string { return o.number }

// Status returns the current order status.
func (o *Order) Status() Status { return o.status }

// Items returns the order's line items.
func (o *Order) Items() []Item { return o.items }

// PendingTimeline returns timeline entries not yet persisted.
func (o *Order) PendingTimeline() []TimelineEntry { return o.pendingTimeline }
