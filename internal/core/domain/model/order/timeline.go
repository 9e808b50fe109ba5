package order

import "time"

// TimelineEntry is one immutable entry of an order's audit log. An entry is
// appended only when the order's derived status actually changes; entries are
// never updated or deleted.
type TimelineEntry struct {
	status      Status
	title       string
	description string
	icon        string
	occurredAt  time.Time
}

// NewTimelineEntry creates the canonical timeline entry for an order entering
// the given status, using the status lookup tables. shipmentCount feeds the
// count-aware descriptions of PARTIALLY_SHIPPED and multi-shipment SHIPPED.
func NewTimelineEntry(status Status, shipmentCount int, occurredAt time.Time) TimelineEntry {
	return TimelineEntry{
		status:      status,
		title:       status.TimelineTitle(),
		description: status.TimelineDescription(shipmentCount),
		icon:        status.TimelineIcon(),
		occurredAt:  occurredAt,
	}
}

// Status returns the order status the entry records.
func (t TimelineEntry) Status() Status { return t.status }

// Title returns the short human-readable entry title.
func (t TimelineEntry) Title() string { return t.title }

// Description returns the human-readable entry description.
func (t TimelineEntry) Description() string { return t.description }

// Icon returns the icon name displayed next to the entry.
func (t TimelineEntry) Icon() string { return t.icon }

// OccurredAt returns the entry timestamp.
func (t TimelineEntry) OccurredAt() time.Time { return t.occurredAt }
