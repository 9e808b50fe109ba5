package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shipment"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrNoItemIDs = errors.New("at least one order item id is required")
)

// CreateShipmentCommand represents a seller's request to ship a subset of
// their items within one order. The item set must be non-empty and free of
// duplicates; ownership and already-shipped checks happen in the handler
// against current state.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	storeID  kernel.UUID
	sellerID kernel.UUID
	itemIDs  []kernel.UUID
	details  shipment.Details

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to ship order items.
// Validates the identifiers, requires at least one unique item id, and checks
// the optional detail constraints (non-negative cost and weight).
func NewCreateShipmentCommand(
	orderID kernel.UUID,
	storeID kernel.UUID,
	sellerID kernel.UUID,
	itemIDs []kernel.UUID,
	details shipment.Details,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStoreID(storeID),
		cmd.setSellerID(sellerID),
		cmd.setItemIDs(itemIDs),
		cmd.setDetails(details),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c CreateShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StoreID returns the shipping store's identifier.
func (c CreateShipmentCommand) StoreID() kernel.UUID {
	return c.storeID
}

// SellerID returns the calling seller's user identifier.
func (c CreateShipmentCommand) SellerID() kernel.UUID {
	return c.sellerID
}

// ItemIDs returns the order item identifiers to include in the shipment.
func (c CreateShipmentCommand) ItemIDs() []kernel.UUID {
	return c.itemIDs
}

// Details returns the optional carrier-facing shipment attributes.
func (c CreateShipmentCommand) Details() shipment.Details {
	return c.details
}

func (c *CreateShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateShipmentCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}
	c.storeID = storeID
	return nil
}

func (c *CreateShipmentCommand) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	c.sellerID = sellerID
	return nil
}

func (c *CreateShipmentCommand) setItemIDs(itemIDs []kernel.UUID) error {
	if len(itemIDs) == 0 {
		return ErrNoItemIDs
	}

	seen := make(map[kernel.UUID]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, dup := seen[id]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"itemIds", fmt.Errorf("item %s is referenced more than once", id))
		}
		seen[id] = struct{}{}
	}

	c.itemIDs = itemIDs
	return nil
}

func (c *CreateShipmentCommand) setDetails(details shipment.Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	c.details = details
	return nil
}
