package shipment

import "time"

// Event is one immutable entry of a shipment's history log. An event is
// recorded when the shipment is created and on every status change; entries
// are append-only and never updated or deleted.
type Event struct {
	status      Status
	title       string
	description string
	occurredAt  time.Time
}

// NewEvent creates a history entry for the given status with an explicit
// title and description.
func NewEvent(status Status, title, description string, occurredAt time.Time) Event {
	return Event{
		status:      status,
		title:       title,
		description: description,
		occurredAt:  occurredAt,
	}
}

// newStatusEvent creates the canonical history entry for entering a status,
// using the status lookup tables.
func newStatusEvent(status Status, occurredAt time.Time) Event {
	return NewEvent(status, status.EventTitle(), status.EventDescription(), occurredAt)
}

// Status returns the shipment status at the time of the event.
func (e Event) Status() Status { return e.status }

// Title returns the short human-readable event title.
func (e Event) Title() string { return e.title }

// Description returns the human-readable event description.
func (e Event) Description() string { return e.description }

// OccurredAt returns the event timestamp.
func (e Event) OccurredAt() time.Time { return e.occurredAt }
