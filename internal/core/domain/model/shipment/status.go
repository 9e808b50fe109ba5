package shipment

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of a seller shipment.
//
// Unlike an order, a shipment does not enforce a linear state machine: carriers
// report regressions (FAILED_DELIVERY back to IN_TRANSIT, RETURNED) and sellers
// correct mistakes, so any valid status may follow any other. What the model
// does enforce is milestone monotonicity: ShippedAt and DeliveredAt are stamped
// the first time their status is reached and never overwritten afterwards.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of every created shipment.
	StatusPending

	// StatusProcessing indicates the seller is preparing the items.
	StatusProcessing

	// StatusLabelCreated indicates a shipping label has been created.
	StatusLabelCreated

	// StatusPickedUp indicates the carrier has collected the package.
	// Reaching this status stamps ShippedAt (once).
	StatusPickedUp

	// StatusInTransit indicates the package is moving through the carrier network.
	StatusInTransit

	// StatusOutForDelivery indicates the package is on the last-mile vehicle.
	StatusOutForDelivery

	// StatusDelivered indicates successful delivery.
	// Reaching this status stamps DeliveredAt (once).
	StatusDelivered

	// StatusFailedDelivery indicates a failed delivery attempt.
	StatusFailedDelivery

	// StatusReturned indicates the package went back to the sender.
	StatusReturned
)

// getStatusStrings returns the wire/storage representation for every Status.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "UNKNOWN",
		StatusPending:        "PENDING",
		StatusProcessing:     "PROCESSING",
		StatusLabelCreated:   "LABEL_CREATED",
		StatusPickedUp:       "PICKED_UP",
		StatusInTransit:      "IN_TRANSIT",
		StatusOutForDelivery: "OUT_FOR_DELIVERY",
		StatusDelivered:      "DELIVERED",
		StatusFailedDelivery: "FAILED_DELIVERY",
		StatusReturned:       "RETURNED",
	}
}

// StatusFromString parses the wire/storage representation of a shipment status.
// Returns an error for unknown values, including "UNKNOWN" itself.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid shipment status", s))
}

// Validate checks that the Status is one of the defined shipment statuses.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusReturned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid shipment status", s))
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

// IsDelivered reports whether the shipment reached its terminal happy state.
func (s Status) IsDelivered() bool {
	return s == StatusDelivered
}

// IsShippedPhase reports whether the package has left the seller:
// IN_TRANSIT, OUT_FOR_DELIVERY or DELIVERED.
func (s Status) IsShippedPhase() bool {
	return s == StatusInTransit || s == StatusOutForDelivery || s == StatusDelivered
}

// IsProcessingPhase reports whether the shipment is being prepared:
// PROCESSING, LABEL_CREATED or PICKED_UP.
func (s Status) IsProcessingPhase() bool {
	return s == StatusProcessing || s == StatusLabelCreated || s == StatusPickedUp
}

// EventTitle returns the history-event title recorded when a shipment enters
// this status. The mapping is exhaustive over all defined statuses.
func (s Status) EventTitle() string {
	switch s {
	case StatusPending:
		return "Shipment Pending"
	case StatusProcessing:
		return "Processing Shipment"
	case StatusLabelCreated:
		return "Shipping Label Created"
	case StatusPickedUp:
		return "Package Picked Up"
	case StatusInTransit:
		return "In Transit"
	case StatusOutForDelivery:
		return "Out for Delivery"
	case StatusDelivered:
		return "Delivered"
	case StatusFailedDelivery:
		return "Delivery Failed"
	case StatusReturned:
		return "Returned to Sender"
	case StatusUnknown:
		return ""
	default:
		return ""
	}
}

// EventDescription returns the history-event description recorded when a
// shipment enters this status. The mapping is exhaustive over all defined
// statuses.
func (s Status) EventDescription() string {
	switch s {
	case StatusPending:
		return "Shipment has been created"
	case StatusProcessing:
		return "Seller is preparing your items"
	case StatusLabelCreated:
		return "Shipping label has been created"
	case StatusPickedUp:
		return "Carrier has picked up the package"
	case StatusInTransit:
		return "Package is on its way"
	case StatusOutForDelivery:
		return "Package is out for delivery"
	case StatusDelivered:
		return "Package has been delivered"
	case StatusFailedDelivery:
		return "Delivery attempt failed"
	case StatusReturned:
		return "Package returned to sender"
	case StatusUnknown:
		return ""
	default:
		return ""
	}
}
