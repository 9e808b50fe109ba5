package access_test

import (
	"testing"

	"marketplace/internal/core/domain/model/access"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	t.Run("should parse all defined roles", func(t *testing.T) {
		tests := map[string]access.Role{
			"CUSTOMER":    access.RoleCustomer,
			"SELLER":      access.RoleSeller,
			"ADMIN":       access.RoleAdmin,
			"SUPER_ADMIN": access.RoleSuperAdmin,
		}

		for s, want := range tests {
			role, err := access.RoleFromString(s)

			require.NoError(t, err)
			assert.Equal(t, want, role)
			assert.Equal(t, s, role.String())
		}
	})

	t.Run("should reject unknown representations", func(t *testing.T) {
		for _, s := range []string{"", "UNKNOWN", "seller", "ROOT"} {
			role, err := access.RoleFromString(s)

			require.Error(t, err, s)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, access.RoleUnknown, role)
		}
	})
}

func TestRole_IsAdmin(t *testing.T) {
	assert.True(t, access.RoleAdmin.IsAdmin())
	assert.True(t, access.RoleSuperAdmin.IsAdmin())
	assert.False(t, access.RoleCustomer.IsAdmin())
	assert.False(t, access.RoleSeller.IsAdmin())
	assert.False(t, access.RoleUnknown.IsAdmin())
}

func TestRelationFor(t *testing.T) {
	tests := []struct {
		name     string
		role     access.Role
		isBuyer  bool
		isSeller bool
		want     access.Relation
	}{
		{"admin outranks any ownership", access.RoleAdmin, true, true, access.Admin},
		{"super admin outranks any ownership", access.RoleSuperAdmin, false, false, access.Admin},
		{"seller ownership outranks buying", access.RoleSeller, true, true, access.SellerOwner},
		{"seller owning the store", access.RoleSeller, false, true, access.SellerOwner},
		{"buyer of the order", access.RoleCustomer, true, false, access.BuyerOwner},
		{"seller without ties is only a buyer if they bought", access.RoleSeller, true, false, access.BuyerOwner},
		{"customer without ties", access.RoleCustomer, false, false, access.Unrelated},
		{"seller without ties", access.RoleSeller, false, false, access.Unrelated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, access.RelationFor(tt.role, tt.isBuyer, tt.isSeller))
		})
	}
}

func TestRelation_Permissions(t *testing.T) {
	t.Run("should grant shipment visibility to everyone but unrelated callers", func(t *testing.T) {
		assert.True(t, access.Admin.CanViewShipment())
		assert.True(t, access.SellerOwner.CanViewShipment())
		assert.True(t, access.BuyerOwner.CanViewShipment())
		assert.False(t, access.Unrelated.CanViewShipment())
	})

	t.Run("should grant order shipment listing to everyone but unrelated callers", func(t *testing.T) {
		assert.True(t, access.Admin.CanListOrderShipments())
		assert.True(t, access.SellerOwner.CanListOrderShipments())
		assert.True(t, access.BuyerOwner.CanListOrderShipments())
		assert.False(t, access.Unrelated.CanListOrderShipments())
	})

	t.Run("should scope only non-admin sellers to their own stores", func(t *testing.T) {
		assert.True(t, access.SellerOwner.ScopedToOwnStores())
		assert.False(t, access.Admin.ScopedToOwnStores())
		assert.False(t, access.BuyerOwner.ScopedToOwnStores())
		assert.False(t, access.Unrelated.ScopedToOwnStores())
	})
}
