package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shipment"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateShipmentCommandIsNotConstructed = errors.New(
	"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
)

// UpdateShipmentCommand represents a seller's partial update of one of their
// shipments: carrier-facing details, an optional status transition, or both.
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	sellerID   kernel.UUID
	status     *shipment.Status
	patch      shipment.Patch

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand creates a command to update a shipment.
// A nil status leaves the shipment's lifecycle untouched; patch fields that
// are nil are left unchanged.
func NewUpdateShipmentCommand(
	shipmentID kernel.UUID,
	sellerID kernel.UUID,
	status *shipment.Status,
	patch shipment.Patch,
) (UpdateShipmentCommand, error) {
	cmd := UpdateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setSellerID(sellerID),
		cmd.setStatus(status),
		cmd.setPatch(patch),
	); err != nil {
		return UpdateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the target shipment's identifier.
func (c UpdateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// SellerID returns the calling seller's user identifier.
func (c UpdateShipmentCommand) SellerID() kernel.UUID {
	return c.sellerID
}

// Status returns the requested status transition, or nil when the update does
// not touch the lifecycle.
func (c UpdateShipmentCommand) Status() *shipment.Status {
	return c.status
}

// Patch returns the detail fields to apply.
func (c UpdateShipmentCommand) Patch() shipment.Patch {
	return c.patch
}

func (c *UpdateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateShipmentCommand) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	c.sellerID = sellerID
	return nil
}

func (c *UpdateShipmentCommand) setStatus(status *shipment.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	c.status = status
	return nil
}

func (c *UpdateShipmentCommand) setPatch(patch shipment.Patch) error {
	if err := patch.Validate(); err != nil {
		return err
	}
	c.patch = patch
	return nil
}
