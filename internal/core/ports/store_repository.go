// Package ports defines the contracts between the core and its adapters:
// repositories, the unit of work, and outbound notification/caching.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"
)

// StoreRepository defines read access to stores. Stores are created during
// seller onboarding, outside this core; here they are only resolved for
// ownership checks and seller scoping.
type StoreRepository interface {
	// Get retrieves a store by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*store.Store, error)
}
