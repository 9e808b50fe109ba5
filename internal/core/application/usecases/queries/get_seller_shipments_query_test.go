package queries_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shipment"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetSellerShipmentsQuery_ValidInput(t *testing.T) {
	// Arrange
	sellerID := kernel.NewUUID()
	status := shipment.StatusInTransit

	// Act
	query, err := queries.NewGetSellerShipmentsQuery(sellerID, &status, "SH-", 2, 10)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, sellerID, query.SellerID())
	require.NotNil(t, query.Status())
	assert.Equal(t, status, *query.Status())
	assert.Equal(t, "SH-", query.Search())
	assert.Equal(t, 2, query.Page())
	assert.Equal(t, 10, query.Limit())
	assert.NoError(t, query.Validate())
}

func TestNewGetSellerShipmentsQuery_Defaults(t *testing.T) {
	// Act
	query, err := queries.NewGetSellerShipmentsQuery(kernel.NewUUID(), nil, "", 0, 0)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, query.Page())
	assert.Equal(t, 20, query.Limit())
	assert.Nil(t, query.Status())
	assert.Empty(t, query.Search())
}

func TestNewGetSellerShipmentsQuery_InvalidInput(t *testing.T) {
	unknownStatus := shipment.StatusUnknown

	testCases := []struct {
		name     string
		sellerID kernel.UUID
		status   *shipment.Status
		page     int
		limit    int
		wantErr  error
	}{
		{
			name:    "empty seller id",
			wantErr: kernel.ErrUUIDIsNotConstructed,
		},
		{
			name:     "negative page",
			sellerID: kernel.NewUUID(),
			page:     -1,
			wantErr:  errs.ErrValueIsOutOfRange,
		},
		{
			name:     "negative limit",
			sellerID: kernel.NewUUID(),
			limit:    -5,
			wantErr:  errs.ErrValueIsOutOfRange,
		},
		{
			name:     "unknown status filter",
			sellerID: kernel.NewUUID(),
			status:   &unknownStatus,
			wantErr:  errs.ErrValueIsInvalid,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			query, err := queries.NewGetSellerShipmentsQuery(
				tc.sellerID, tc.status, "", tc.page, tc.limit)

			// Assert
			require.Error(t, err)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Error(t, query.Validate())
		})
	}
}
