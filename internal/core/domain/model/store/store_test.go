package store_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreStore(t *testing.T) {
	t.Run("should restore a valid store", func(t *testing.T) {
		id := kernel.NewUUID()
		ownerID := kernel.NewUUID()

		s, err := store.RestoreStore(id, ownerID, "Acme Outdoor")

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(id))
		assert.True(t, s.OwnerID().IsEqual(ownerID))
		assert.Equal(t, "Acme Outdoor", s.Name())
	})

	t.Run("should fail with invalid identifiers", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := store.RestoreStore(invalidID, kernel.NewUUID(), "Acme Outdoor")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := store.RestoreStore(kernel.NewUUID(), kernel.NewUUID(), "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero value store", func(t *testing.T) {
		var s store.Store

		require.ErrorIs(t, s.Validate(), store.ErrStoreIsNotConstructed)
	})
}

func TestStore_IsOwnedBy(t *testing.T) {
	ownerID := kernel.NewUUID()

	s, err := store.RestoreStore(kernel.NewUUID(), ownerID, "Acme Outdoor")
	require.NoError(t, err)

	assert.True(t, s.IsOwnedBy(ownerID))
	assert.False(t, s.IsOwnedBy(kernel.NewUUID()))
}
