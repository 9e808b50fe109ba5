package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// PENDING and CONFIRMED are set by checkout (outside this core). Once
// shipments exist, PROCESSING, PARTIALLY_SHIPPED, SHIPPED and DELIVERED are
// derived from the aggregate state of the order's shipments and must not be
// written directly by callers. CANCELLED and REFUNDED belong to adjacent
// platform flows and are never produced by the derivation.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a placed, unpaid order.
	StatusPending

	// StatusConfirmed indicates payment has been confirmed.
	StatusConfirmed

	// StatusProcessing indicates at least one seller started preparing items.
	StatusProcessing

	// StatusPartiallyShipped indicates some, but not all, shipments have
	// left the sellers or been delivered.
	StatusPartiallyShipped

	// StatusShipped indicates every shipment has left the seller.
	StatusShipped

	// StatusDelivered indicates every shipment has been delivered.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled.
	StatusCancelled

	// StatusRefunded indicates the order was refunded.
	StatusRefunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:          "UNKNOWN",
		StatusPending:          "PENDING",
		StatusConfirmed:        "CONFIRMED",
		StatusProcessing:       "PROCESSING",
		StatusPartiallyShipped: "PARTIALLY_SHIPPED",
		StatusShipped:          "SHIPPED",
		StatusDelivered:        "DELIVERED",
		StatusCancelled:        "CANCELLED",
		StatusRefunded:         "REFUNDED",
	}
}

// StatusFromString parses the wire/storage representation of an order status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the Status is one of the defined order statuses.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusRefunded {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the wire/storage representation of the status.
// Implements fmt.Stringer; safe on any value, invalid values yield "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// TimelineTitle returns the timeline entry title for this status.
// The mapping is exhaustive over all defined statuses.
func (s Status) TimelineTitle() string {
	switch s {
	case StatusPending:
		return "Order Pending"
	case StatusConfirmed:
		return "Order Confirmed"
	case StatusProcessing:
		return "Processing"
	case StatusPartiallyShipped:
		return "Partially Shipped"
	case StatusShipped:
		return "Shipped"
	case StatusDelivered:
		return "Delivered"
	case StatusCancelled:
		return "Cancelled"
	case StatusRefunded:
		return "Refunded"
	case StatusUnknown:
		return ""
	default:
		return ""
	}
}

// TimelineIcon returns the timeline entry icon name for this status.
// The mapping is exhaustive over all defined statuses.
func (s Status) TimelineIcon() string {
	switch s {
	case StatusPending:
		return "clock"
	case StatusConfirmed:
		return "check-circle"
	case StatusProcessing:
		return "package"
	case StatusPartiallyShipped:
		return "truck"
	case StatusShipped:
		return "truck"
	case StatusDelivered:
		return "check-circle"
	case StatusCancelled:
		return "x-circle"
	case StatusRefunded:
		return "arrow-left"
	case StatusUnknown:
		return ""
	default:
		return ""
	}
}

// TimelineDescription returns the timeline entry description for this status.
// PARTIALLY_SHIPPED and multi-shipment SHIPPED carry the shipment count;
// every other status has a fixed phrasing.
func (s Status) TimelineDescription(shipmentCount int) string {
	if s == StatusPartiallyShipped {
		return fmt.Sprintf("Some items from %d shipment(s) have been delivered", shipmentCount)
	}
	if s == StatusShipped && shipmentCount > 1 {
		return fmt.Sprintf("All %d shipments are in transit", shipmentCount)
	}

	switch s {
	case StatusPending:
		return "Order awaiting payment"
	case StatusConfirmed:
		return "Payment confirmed"
	case StatusProcessing:
		return "Sellers are preparing your items"
	case StatusPartiallyShipped:
		return "Some shipments delivered"
	case StatusShipped:
		return "All items shipped"
	case StatusDelivered:
		return "All items delivered"
	case StatusCancelled:
		return "Order cancelled"
	case StatusRefunded:
		return "Order refunded"
	case StatusUnknown:
		return ""
	default:
		return ""
	}
}
