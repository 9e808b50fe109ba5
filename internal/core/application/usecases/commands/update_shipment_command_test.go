package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shipment"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateShipmentCommand_ValidInput(t *testing.T) {
	// Arrange
	shipmentID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	status := shipment.StatusInTransit
	carrier := "FedEx"
	patch := shipment.Patch{Carrier: &carrier}

	// Act
	cmd, err := commands.NewUpdateShipmentCommand(shipmentID, sellerID, &status, patch)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, shipmentID, cmd.ShipmentID())
	assert.Equal(t, sellerID, cmd.SellerID())
	require.NotNil(t, cmd.Status())
	assert.Equal(t, status, *cmd.Status())
	assert.Equal(t, patch, cmd.Patch())
	assert.NoError(t, cmd.Validate())
}

func TestNewUpdateShipmentCommand_NoStatus(t *testing.T) {
	// Arrange
	notes := "left at reception"

	// Act
	cmd, err := commands.NewUpdateShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), nil, shipment.Patch{Notes: &notes})

	// Assert
	require.NoError(t, err)
	assert.Nil(t, cmd.Status())
}

func TestNewUpdateShipmentCommand_InvalidInput(t *testing.T) {
	unknownStatus := shipment.StatusUnknown
	negative := -2.5

	testCases := []struct {
		name       string
		shipmentID kernel.UUID
		sellerID   kernel.UUID
		status     *shipment.Status
		patch      shipment.Patch
	}{
		{
			name:     "empty shipment id",
			sellerID: kernel.NewUUID(),
		},
		{
			name:       "empty seller id",
			shipmentID: kernel.NewUUID(),
		},
		{
			name:       "unknown status",
			shipmentID: kernel.NewUUID(),
			sellerID:   kernel.NewUUID(),
			status:     &unknownStatus,
		},
		{
			name:       "negative shipping cost",
			shipmentID: kernel.NewUUID(),
			sellerID:   kernel.NewUUID(),
			patch:      shipment.Patch{ShippingCost: &negative},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			cmd, err := commands.NewUpdateShipmentCommand(
				tc.shipmentID, tc.sellerID, tc.status, tc.patch)

			// Assert
			require.Error(t, err)
			assert.Error(t, cmd.Validate())
		})
	}
}

func TestNewUpdateShipmentCommand_UnknownStatusError(t *testing.T) {
	unknownStatus := shipment.StatusUnknown

	_, err := commands.NewUpdateShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), &unknownStatus, shipment.Patch{})

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
