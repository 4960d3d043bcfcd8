// Package trackingclient provides the primary entry point for constructing a
// client for the BBI container-tracking API.
//
// It layers configuration normalization and HTTP transport on top of the
// resource interfaces and types defined in the tracking package. Most
// applications should import trackingclient to build a client, then use the
// returned tracking.Client to access the resource families, for example
// OceanShipments(), AirShipments().
//
// Quick start
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
//
//	  // Minimal: the API key against the production endpoint.
//	  cli, err := trackingclient.NewWithKey("secret")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with full configuration:
//	  cli, err = trackingclient.New(&tracking.Config{
//	    APIEndpoint: "https://api.container-tracking.example.com/v1",
//	    APIKey:      "secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  shipment, err := cli.OceanShipments().GetByID(ctx, 1)
//	  if err != nil { log.Fatal(err) }
//	  _ = shipment
//	}
//
// The facade trims a trailing slash from the endpoint, adds "https://" when
// no scheme is present, and falls back to the production endpoint when none
// is configured.
package trackingclient
