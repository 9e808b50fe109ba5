// Package store contains the Store entity. A store is a seller's storefront
// and the unit of ownership for products and, transitively, shipments. This
// core references stores for ownership checks and never mutates them.
package store

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrStoreIsNotConstructed is returned when a Store instance was not created
// through the RestoreStore factory method.
var ErrStoreIsNotConstructed = errors.New("Store must be created via RestoreStore constructor")

// Store is a seller's storefront. Exactly one user owns a store; ownership is
// the authorization anchor for every shipment write in the core.
type Store struct {
	id      kernel.UUID
	ownerID kernel.UUID
	name    string

	isConstructed bool
}

// RestoreStore reconstructs a store from persistence.
func RestoreStore(id, ownerID kernel.UUID, name string) (*Store, error) {
	if err := errors.Join(id.Validate(), ownerID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Store{
		id:            id,
		ownerID:       ownerID,
		name:          name,
		isConstructed: true,
	}, nil
}

// Validate ensures the Store instance was properly constructed.
func (s *Store) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStoreIsNotConstructed
	}
	return nil
}

// IsOwnedBy reports whether the given user owns this store.
func (s *Store) IsOwnedBy(userID kernel.UUID) bool {
	return s.ownerID.IsEqual(userID)
}

// ID returns the store's unique identifier.
func (s *Store) ID() kernel.UUID { return s.id }

// OwnerID returns the owning seller's user identifier.
func (s *Store) OwnerID() kernel.UUID { return s.ownerID }

// Name returns the store's display name.
func (s *Store) Name() string { return s.name }
