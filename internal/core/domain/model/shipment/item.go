package shipment

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item links one order item to the shipment that carries it, with the shipped
// quantity copied from the order item at shipment creation time.
//
// System-wide invariant: an order item belongs to at most one shipment item.
// The pre-check lives in the create-shipment use case and the race-safe
// enforcement is a unique storage constraint on the order item reference.
type Item struct {
	orderItemID kernel.UUID
	quantity    int

	guard guard.ConstructorGuard
}

// NewItem creates a shipment item for the given order item.
// Quantity must be positive.
func NewItem(orderItemID kernel.UUID, quantity int) (Item, error) {
	if err := orderItemID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{
		orderItemID: orderItemID,
		quantity:    quantity,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// OrderItemID returns the referenced order item's identifier.
func (i Item) OrderItemID() kernel.UUID {
	return i.orderItemID
}

// Quantity returns the shipped quantity.
func (i Item) Quantity() int {
	return i.quantity
}
