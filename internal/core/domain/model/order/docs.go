// Package order contains the Order aggregate as seen by the shipment core:
// line items with their owning stores, the derived status, and the
// append-only status timeline.
package order
