// Package constants centralizes defaults shared by the transport and the
// resource clients.
package constants

import "time"

// API surface.
const (
	// DefaultAPIEndpoint is the production tracking API.
	DefaultAPIEndpoint = "https://api.container-tracking.bolk-bi.com/v1"

	// HeaderAPIKey carries the static API key on every request.
	HeaderAPIKey = "X-API-Key"

	// DefaultUserAgent identifies this SDK.
	DefaultUserAgent = "container-tracking-go"
)

// Resource paths per family.
const (
	APIPathOceanShipments = "/ocean/shipments"
	APIPathOceanCarriers  = "/ocean/carriers"
	APIPathAirShipments   = "/air/shipments"
	APIPathAirCarriers    = "/air/carriers"

	// Legacy unprefixed surface of the v1 API.
	APIPathShipments = "/shipments"
	APIPathCarriers  = "/carriers"
)

// Query parameter names.
const (
	QueryBookingNumber = "booking_number"
	QueryAWBNumber     = "awb_number"
)

// Timeouts and retry bounds.
const (
	// DefaultHTTPTimeout is the fixed per-request timeout.
	DefaultHTTPTimeout = 10 * time.Second

	// DefaultRetryWaitMin is the minimum backoff when retries are opted in.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum backoff when retries are opted in.
	DefaultRetryWaitMax = 30 * time.Second
)
