// Package services contains stateless domain services that implement business
// rules spanning multiple aggregates.
package services

import (
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/shipment"
)

// OrderStatusPolicy derives an order's status from the statuses of its
// shipments. Deriving instead of letting callers set the order status keeps
// the order header in sync when several independent sellers ship parts of one
// multi-vendor order.
//
// The decision rules are evaluated in order and the first match wins; they
// are deliberately not mutually exclusive:
//
//  1. every shipment DELIVERED                          -> DELIVERED
//  2. any DELIVERED, or any shipped and more than one   -> PARTIALLY_SHIPPED
//  3. every shipment in the shipped phase               -> SHIPPED
//  4. any shipment in the processing phase              -> PROCESSING
//  5. otherwise                                         -> no change
//
// "Shipped phase" is IN_TRANSIT, OUT_FOR_DELIVERY or DELIVERED; "processing
// phase" is PROCESSING, LABEL_CREATED or PICKED_UP.
type OrderStatusPolicy struct{}

// NewOrderStatusPolicy creates a new OrderStatusPolicy instance.
func NewOrderStatusPolicy() OrderStatusPolicy {
	return OrderStatusPolicy{}
}

// Derive computes the order status implied by the given shipment statuses.
//
// The second return value is false when no rule applies: either the order has
// no shipments yet (it keeps its checkout status), or every shipment is still
// PENDING, FAILED_DELIVERY or RETURNED without any processing activity. The
// caller must leave the order untouched in that case.
func (OrderStatusPolicy) Derive(statuses []shipment.Status) (order.Status, bool) {
	if len(statuses) == 0 {
		return order.StatusUnknown, false
	}

	allDelivered := true
	someDelivered := false
	allShipped := true
	someShipped := false
	anyProcessing := false

	for _, s := range statuses {
		if s.IsDelivered() {
			someDelivered = true
		} else {
			allDelivered = false
		}
		if s.IsShippedPhase() {
			someShipped = true
		} else {
			allShipped = false
		}
		if s.IsProcessingPhase() {
			anyProcessing = true
		}
	}

	switch {
	case allDelivered:
		return order.StatusDelivered, true
	case someDelivered || (someShipped && len(statuses) > 1):
		return order.StatusPartiallyShipped, true
	case allShipped:
		return order.StatusShipped, true
	case anyProcessing:
		return order.StatusProcessing, true
	default:
		return order.StatusUnknown, false
	}
}
