// Package access centralizes the visibility and mutation rules shared by the
// shipment read operations. A caller's standing towards a shipment or order is
// computed once per request into a closed Relation variant, and every decision
// is an exhaustive match over that variant, so adding a role forces every
// decision point through the compiler.
package access

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role is the platform-level role carried by the caller's token.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer is a regular buyer account.
	RoleCustomer

	// RoleSeller is an account that owns one or more stores.
	RoleSeller

	// RoleAdmin is a platform administrator.
	RoleAdmin

	// RoleSuperAdmin is a platform super administrator.
	RoleSuperAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "UNKNOWN",
		RoleCustomer:   "CUSTOMER",
		RoleSeller:     "SELLER",
		RoleAdmin:      "ADMIN",
		RoleSuperAdmin: "SUPER_ADMIN",
	}
}

// RoleFromString parses the wire representation of a role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s && role != RoleUnknown {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not a valid role", s))
}

// String returns the wire representation of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsAdmin reports whether the role grants unconditional platform visibility.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Relation is the caller's standing towards a specific shipment or order.
type Relation int

const (
	// Unrelated means the caller has no tie to the object.
	Unrelated Relation = iota

	// BuyerOwner means the caller placed the parent order.
	BuyerOwner

	// SellerOwner means the caller owns a store involved in the object:
	// the shipment's store, or the store behind at least one order item.
	SellerOwner

	// Admin means the caller holds ADMIN or SUPER_ADMIN.
	Admin
)

// RelationFor computes the caller's relation to an object from their role and
// their ownership ties. Precedence is Admin over SellerOwner over BuyerOwner:
// a seller buying from their own store is treated as the seller, which is also
// what scopes their result sets to their own stores.
func RelationFor(role Role, isBuyer, isSeller bool) Relation {
	switch {
	case role.IsAdmin():
		return Admin
	case isSeller:
		return SellerOwner
	case isBuyer:
		return BuyerOwner
	default:
		return Unrelated
	}
}

// CanViewShipment reports whether the relation grants read access to a
// shipment: admins, the shipment's store owner, and the parent order's buyer.
func (r Relation) CanViewShipment() bool {
	switch r {
	case Admin, SellerOwner, BuyerOwner:
		return true
	case Unrelated:
		return false
	default:
		return false
	}
}

// CanListOrderShipments reports whether the relation grants access to the
// shipment listing of an order: the buyer, any involved seller, and admins.
func (r Relation) CanListOrderShipments() bool {
	switch r {
	case Admin, SellerOwner, BuyerOwner:
		return true
	case Unrelated:
		return false
	default:
		return false
	}
}

// ScopedToOwnStores reports whether listings must be narrowed to the caller's
// own stores. Only non-admin sellers are scoped; buyers and admins see every
// shipment of the order.
func (r Relation) ScopedToOwnStores() bool {
	switch r {
	case SellerOwner:
		return true
	case Admin, BuyerOwner, Unrelated:
		return false
	default:
		return false
	}
}
