// Package tracking provides types, interfaces, and helpers for working with
// the BBI container-tracking API.
//
// # Overview
//
// The tracking package defines the domain types (e.g., Shipment, Container,
// Movement, Route, AirShipment) and the interfaces for resource-oriented
// clients (ShipmentsClient, AirShipmentsClient). A concrete implementation of
// these clients is provided by the trackingclient package, which wires
// configuration and transport. Most consumers should import trackingclient to
// construct a client and then interact with the resource client interfaces
// exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/bolk-bi/container-tracking-go/pkg/tracking"
//	  "github.com/bolk-bi/container-tracking-go/pkg/trackingclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := trackingclient.New(&tracking.Config{APIKey: "secret"})
//	  if err != nil { log.Fatal(err) }
//
//	  result, err := cli.OceanShipments().Create(ctx, &tracking.ShipmentCreateRequest{
//	    BookingNumber: "MSCU1234567",
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = result
//	}
//
// # Absence vs. errors
//
// Single-object lookups (GetByID, GetByBookingNumber, GetByAWB) return
// (nil, nil) when the resource does not exist. A 404 on those lookups is a
// normal outcome, not an error. Every other non-2xx status surfaces as an
// *APIError carrying the status code and raw body; a 2xx body that does not
// unmarshal surfaces as a *DecodeError. Failures before any HTTP response
// (connection refused, timeout) surface as a *TransportError.
//
// # Create and conflict resolution
//
// Create registers a shipment for tracking, keyed by its booking number (or
// air-waybill number). When the shipment is already tracked the API answers
// 409; by default the client resolves the conflict by re-reading the existing
// shipment and returns a CreateResult with Outcome OutcomeResolved. Callers
// that need to distinguish a fresh registration set FailOnConflict on the
// request, in which case the 409 propagates as an *APIError.
//
// # Pagination
//
// List exposes the raw limit/offset primitive. All returns a PageIterator
// that walks the whole collection lazily:
//
//	it := cli.OceanShipments().All(ctx, nil)
//	for it.HasNext() {
//	  shipment, err := it.Next()
//	  if err != nil { break }
//	  _ = shipment
//	}
//
// FetchAllPages and StreamPages offer eager and channel-based traversals of
// the same sequence.
package tracking
