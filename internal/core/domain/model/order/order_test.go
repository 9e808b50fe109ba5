package order_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(t *testing.T, storeID kernel.UUID) order.Item {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), storeID, 1)
	require.NoError(t, err)
	return item
}

func TestNewOrderItem(t *testing.T) {
	t.Run("should create valid item", func(t *testing.T) {
		id := kernel.NewUUID()
		productID := kernel.NewUUID()
		storeID := kernel.NewUUID()

		item, err := order.NewItem(id, productID, storeID, 2)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ID().IsEqual(id))
		assert.True(t, item.ProductID().IsEqual(productID))
		assert.True(t, item.StoreID().IsEqual(storeID))
		assert.Equal(t, 2, item.Quantity())
	})

	t.Run("should fail with invalid identifiers", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewItem(invalidID, kernel.NewUUID(), kernel.NewUUID(), 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validBuyerID := kernel.NewUUID()

	t.Run("should restore with explicit status", func(t *testing.T) {
		items := []order.Item{newTestItem(t, kernel.NewUUID())}

		o, err := order.RestoreOrder(validID, validBuyerID, "ORD-20260901-0001", order.StatusConfirmed, items)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.BuyerID().IsEqual(validBuyerID))
		assert.Equal(t, "ORD-20260901-0001", o.Number())
		assert.Equal(t, order.StatusConfirmed, o.Status())
		assert.Len(t, o.Items(), 1)
		assert.Empty(t, o.PendingTimeline())
	})

	t.Run("should fail with empty order number", func(t *testing.T) {
		_, err := order.RestoreOrder(validID, validBuyerID, "", order.StatusConfirmed, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(validID, validBuyerID, "ORD-1", order.StatusUnknown, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero value order", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	newConfirmedOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), "ORD-1",
			order.StatusConfirmed, []order.Item{newTestItem(t, kernel.NewUUID())})
		require.NoError(t, err)
		return o
	}

	t.Run("should change status and append one timeline entry", func(t *testing.T) {
		o := newConfirmedOrder(t)

		err := o.ChangeStatus(order.StatusPartiallyShipped, 2)

		require.NoError(t, err)
		assert.Equal(t, order.StatusPartiallyShipped, o.Status())
		require.Len(t, o.PendingTimeline(), 1)

		entry := o.PendingTimeline()[0]
		assert.Equal(t, order.StatusPartiallyShipped, entry.Status())
		assert.Equal(t, "Partially Shipped", entry.Title())
		assert.Equal(t, "Some items from 2 shipment(s) have been delivered", entry.Description())
		assert.Equal(t, "truck", entry.Icon())
	})

	t.Run("should treat a change to the current status as a no-op", func(t *testing.T) {
		o := newConfirmedOrder(t)

		err := o.ChangeStatus(order.StatusConfirmed, 1)

		require.NoError(t, err)
		assert.Equal(t, order.StatusConfirmed, o.Status())
		assert.Empty(t, o.PendingTimeline())
	})

	t.Run("should reject an invalid status", func(t *testing.T) {
		o := newConfirmedOrder(t)

		err := o.ChangeStatus(order.StatusUnknown, 1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.StatusConfirmed, o.Status())
	})
}

func TestOrder_ItemsMatching(t *testing.T) {
	storeID := kernel.NewUUID()
	otherStoreID := kernel.NewUUID()

	ownItem := newTestItem(t, storeID)
	foreignItem := newTestItem(t, otherStoreID)

	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), "ORD-1",
		order.StatusConfirmed, []order.Item{ownItem, foreignItem})
	require.NoError(t, err)

	t.Run("should match items of the given store", func(t *testing.T) {
		matched := o.ItemsMatching([]kernel.UUID{ownItem.ID()}, storeID)

		require.Len(t, matched, 1)
		assert.True(t, matched[0].ID().IsEqual(ownItem.ID()))
	})

	t.Run("should exclude items of other stores", func(t *testing.T) {
		matched := o.ItemsMatching([]kernel.UUID{ownItem.ID(), foreignItem.ID()}, storeID)

		require.Len(t, matched, 1)
		assert.True(t, matched[0].ID().IsEqual(ownItem.ID()))
	})

	t.Run("should exclude unknown item ids", func(t *testing.T) {
		matched := o.ItemsMatching([]kernel.UUID{kernel.NewUUID()}, storeID)

		assert.Empty(t, matched)
	})
}
