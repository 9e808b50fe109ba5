package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shipment"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetSellerShipmentsQueryIsNotConstructed = errors.New(
	"GetSellerShipmentsQuery must be created via NewGetSellerShipmentsQuery constructor",
)

const (
	defaultShipmentsPage  = 1
	defaultShipmentsLimit = 20
)

// GetSellerShipmentsQuery retrieves a paginated listing of every shipment
// dispatched from the seller's stores, optionally narrowed by status and by
// a case-insensitive search against shipment number, tracking number or the
// parent order's number.
type GetSellerShipmentsQuery struct {
	sellerID kernel.UUID
	status   *shipment.Status
	search   string
	page     int
	limit    int

	guard guard.ConstructorGuard
}

// NewGetSellerShipmentsQuery creates a query for a seller's shipment listing.
// Zero page and limit fall back to the defaults (page 1, 20 per page);
// negative values are rejected.
func NewGetSellerShipmentsQuery(
	sellerID kernel.UUID,
	status *shipment.Status,
	search string,
	page int,
	limit int,
) (GetSellerShipmentsQuery, error) {
	if err := sellerID.Validate(); err != nil {
		return GetSellerShipmentsQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetSellerShipmentsQuery{}, err
		}
	}
	if page < 0 {
		return GetSellerShipmentsQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	}
	if limit < 0 {
		return GetSellerShipmentsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	if page == 0 {
		page = defaultShipmentsPage
	}
	if limit == 0 {
		limit = defaultShipmentsLimit
	}

	return GetSellerShipmentsQuery{
		sellerID: sellerID,
		status:   status,
		search:   search,
		page:     page,
		limit:    limit,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSellerShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetSellerShipmentsQueryIsNotConstructed)
}

// SellerID returns the calling seller's user identifier.
func (q GetSellerShipmentsQuery) SellerID() kernel.UUID {
	return q.sellerID
}

// Status returns the status filter, or nil when unfiltered.
func (q GetSellerShipmentsQuery) Status() *shipment.Status {
	return q.status
}

// Search returns the free-text search term, empty when unfiltered.
func (q GetSellerShipmentsQuery) Search() string {
	return q.search
}

// Page returns the 1-based page number.
func (q GetSellerShipmentsQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetSellerShipmentsQuery) Limit() int {
	return q.limit
}
