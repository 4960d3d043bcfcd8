package tracking

import (
	"context"
	"time"
)

// CreateOutcome distinguishes how a create call concluded.
type CreateOutcome string

const (
	// OutcomeCreated means the API accepted the create and registered a new
	// shipment.
	OutcomeCreated CreateOutcome = "created"

	// OutcomeResolved means the API answered 409 and the client resolved the
	// conflict by re-reading the shipment that already carried the business
	// key. The returned identity is a projection of that shipment, not a
	// create response.
	OutcomeResolved CreateOutcome = "resolved"
)

// CreateResult is the outcome of a create operation: the base identity of the
// shipment plus how it was obtained.
type CreateResult[R any] struct {
	Shipment R             `json:"shipment" yaml:"shipment"`
	Outcome  CreateOutcome `json:"outcome"  yaml:"outcome"`
}

// ShipmentsClient is the operation surface of an ocean shipment family. The
// legacy unprefixed API surface exposes the same operations.
type ShipmentsClient interface {
	// Create registers a shipment for tracking by booking number. A 409
	// conflict is resolved idempotently unless the request opts out.
	Create(ctx context.Context, request *ShipmentCreateRequest) (*CreateResult[ShipmentRef], error)

	// GetByID retrieves a shipment by its server-assigned id. Returns
	// (nil, nil) when no such shipment exists.
	GetByID(ctx context.Context, id int64) (*Shipment, error)

	// GetByBookingNumber retrieves a shipment by booking number. Returns
	// (nil, nil) when no shipment carries the number.
	GetByBookingNumber(ctx context.Context, bookingNumber string) (*Shipment, error)

	// List retrieves one page of shipments.
	List(ctx context.Context, opts *ListOptions) ([]Shipment, error)

	// All walks the whole collection lazily, page by page.
	All(ctx context.Context, opts *PaginationOptions) *PageIterator[Shipment]

	// Carriers retrieves the carrier reference list.
	Carriers(ctx context.Context) ([]Carrier, error)
}

// AirShipmentsClient is the operation surface of the air shipment family.
type AirShipmentsClient interface {
	Create(ctx context.Context, request *AirShipmentCreateRequest) (*CreateResult[AirShipmentRef], error)
	GetByID(ctx context.Context, id int64) (*AirShipment, error)
	GetByAWB(ctx context.Context, awbNumber string) (*AirShipment, error)
	List(ctx context.Context, opts *ListOptions) ([]AirShipment, error)
	All(ctx context.Context, opts *PaginationOptions) *PageIterator[AirShipment]
	Carriers(ctx context.Context) ([]AirCarrier, error)
}

// Client is the top-level tracking API client, one accessor per resource
// family.
type Client interface {
	// OceanShipments accesses the ocean shipment family.
	OceanShipments() ShipmentsClient

	// AirShipments accesses the air shipment family.
	AirShipments() AirShipmentsClient

	// Shipments accesses the legacy unprefixed shipment surface of the v1
	// API. It serves the same ocean entities as OceanShipments on older
	// deployments.
	Shipments() ShipmentsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a tracking.Client.
//
// APIKey is the only credential; it is sent on every request as a static
// X-API-Key header. There is no token refresh or session handling.
//
// Every operation is a single blocking round trip bounded by HTTPTimeout.
// The client performs no automatic retries; RetryMax opts in to retrying
// transient failures (>=500, 429, connection errors) at the transport layer.
type Config struct {
	// APIEndpoint: base URL of the tracking API. When empty,
	// trackingclient.New falls back to the production endpoint. A trailing
	// slash is trimmed and "https://" is added if no scheme is present.
	APIEndpoint string

	// APIKey: required static API key.
	APIKey string

	// HTTPTimeout: per-request timeout applied uniformly to every call.
	// Defaults to 10 seconds.
	HTTPTimeout time.Duration

	// RetryMax: maximum number of transport-level retries. 0 (the default)
	// disables retrying entirely.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug: enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer and the
	// conflict-reconciliation path.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
}
