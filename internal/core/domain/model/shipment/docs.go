// Package shipment contains the SellerShipment aggregate: a seller-created
// grouping of order items dispatched together, with its status lifecycle,
// append-only history events and milestone timestamps.
package shipment
