// Package storerepo provides read access to stores and the store-owned
// catalog tables. Stores and products are written by the seller onboarding
// and catalog services; this core only resolves them for ownership checks,
// so the repository exposes no mutation methods.
package storerepo

import (
	"github.com/google/uuid"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"
)

// StoreDTO represents the database structure of a seller store.
type StoreDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;index"`
	Name   string
}

// TableName specifies the database table name for stores.
func (StoreDTO) TableName() string {
	return "stores"
}

// ProductDTO represents the database structure of a catalog product.
// Present for schema migration and read-side joins; products are not an
// aggregate of this core.
type ProductDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID  uuid.UUID `gorm:"type:uuid;index"`
	Title    string
	ImageURL *string
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

// ProductVariantDTO represents the database structure of a product variant.
type ProductVariantDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;index"`
	Name      string
}

// TableName specifies the database table name for product variants.
func (ProductVariantDTO) TableName() string {
	return "product_variants"
}

// toDomain converts a database DTO to a store domain entity.
func toDomain(dto StoreDTO) (*store.Store, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return store.RestoreStore(id, ownerID, dto.Name)
}
