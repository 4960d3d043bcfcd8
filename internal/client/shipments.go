package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bolk-bi/container-tracking-go/internal/constants"
	internalhttp "github.com/bolk-bi/container-tracking-go/internal/http"
	"github.com/bolk-bi/container-tracking-go/pkg/tracking"
)

// ShipmentsClient implements tracking.ShipmentsClient against a configurable
// path prefix. The ocean family and the legacy unprefixed surface serve the
// same wire shapes and differ only in paths.
type ShipmentsClient struct {
	httpClient    *internalhttp.Client
	logger        tracking.Logger
	shipmentsPath string
	carriersPath  string
}

// NewOceanShipmentsClient creates the client for the ocean shipment family.
func NewOceanShipmentsClient(httpClient *internalhttp.Client, logger tracking.Logger) *ShipmentsClient {
	return &ShipmentsClient{
		httpClient:    httpClient,
		logger:        logger,
		shipmentsPath: constants.APIPathOceanShipments,
		carriersPath:  constants.APIPathOceanCarriers,
	}
}

// NewLegacyShipmentsClient creates the client for the unprefixed shipment
// surface of the v1 API.
func NewLegacyShipmentsClient(httpClient *internalhttp.Client, logger tracking.Logger) *ShipmentsClient {
	return &ShipmentsClient{
		httpClient:    httpClient,
		logger:        logger,
		shipmentsPath: constants.APIPathShipments,
		carriersPath:  constants.APIPathCarriers,
	}
}

// Create registers a shipment for tracking. On 409 the conflict is resolved
// by re-reading the shipment that already carries the booking number, unless
// the request opts out.
func (c *ShipmentsClient) Create(ctx context.Context, request *tracking.ShipmentCreateRequest) (*tracking.CreateResult[tracking.ShipmentRef], error) {
	resp, err := c.httpClient.Post(ctx, c.shipmentsPath, request)
	if err != nil {
		return nil, fmt.Errorf("creating shipment: %w", err)
	}

	if resp.StatusCode == http.StatusConflict && !request.FailOnConflict {
		return c.reconcileConflict(ctx, request.BookingNumber, resp)
	}

	ref, err := decodeCreated[tracking.ShipmentRef](resp)
	if err != nil {
		return nil, fmt.Errorf("creating shipment: %w", err)
	}

	return &tracking.CreateResult[tracking.ShipmentRef]{
		Shipment: *ref,
		Outcome:  tracking.OutcomeCreated,
	}, nil
}

// reconcileConflict resolves a create conflict by reading the shipment that
// owns the booking number and projecting its base identity. When the read
// comes back empty the write and read paths disagree; the anomaly is logged
// and the original conflict surfaces.
func (c *ShipmentsClient) reconcileConflict(ctx context.Context, bookingNumber string, conflict *internalhttp.Response) (*tracking.CreateResult[tracking.ShipmentRef], error) {
	shipment, err := c.GetByBookingNumber(ctx, bookingNumber)
	if err != nil {
		return nil, fmt.Errorf("reconciling create conflict: %w", err)
	}

	if shipment == nil {
		if c.logger != nil {
			c.logger.Error("shipment not found after create conflict", map[string]interface{}{
				"booking_number": bookingNumber,
			})
		}

		return nil, &tracking.APIError{StatusCode: conflict.StatusCode, Body: conflict.Body}
	}

	return &tracking.CreateResult[tracking.ShipmentRef]{
		Shipment: tracking.ShipmentRef{ID: shipment.ID, BookingNumber: bookingNumber},
		Outcome:  tracking.OutcomeResolved,
	}, nil
}

// GetByID retrieves a shipment by id. Returns (nil, nil) when it does not
// exist.
func (c *ShipmentsClient) GetByID(ctx context.Context, id int64) (*tracking.Shipment, error) {
	path := c.shipmentsPath + "/" + strconv.FormatInt(id, 10)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting shipment: %w", err)
	}

	shipment, err := decodeObject[tracking.Shipment](resp)
	if err != nil {
		return nil, fmt.Errorf("getting shipment: %w", err)
	}

	return shipment, nil
}

// GetByBookingNumber retrieves a shipment by booking number via the filtered
// list endpoint. The server enforces uniqueness of booking numbers, so the
// first match is the match; an empty listing means (nil, nil).
func (c *ShipmentsClient) GetByBookingNumber(ctx context.Context, bookingNumber string) (*tracking.Shipment, error) {
	query := url.Values{}
	query.Set(constants.QueryBookingNumber, bookingNumber)

	resp, err := c.httpClient.Get(ctx, c.shipmentsPath, query)
	if err != nil {
		return nil, fmt.Errorf("getting shipment by booking number: %w", err)
	}

	shipments, _, err := decodeList[tracking.Shipment](resp, shapePage)
	if err != nil {
		return nil, fmt.Errorf("getting shipment by booking number: %w", err)
	}

	if len(shipments) == 0 {
		return nil, nil
	}

	return &shipments[0], nil
}

// List retrieves one page of shipments.
func (c *ShipmentsClient) List(ctx context.Context, opts *tracking.ListOptions) ([]tracking.Shipment, error) {
	resp, err := c.httpClient.Get(ctx, c.shipmentsPath, opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing shipments: %w", err)
	}

	shipments, _, err := decodeList[tracking.Shipment](resp, shapePage)
	if err != nil {
		return nil, fmt.Errorf("listing shipments: %w", err)
	}

	return shipments, nil
}

// All walks the whole shipment collection lazily, honoring the options'
// change-tracking filter when set.
func (c *ShipmentsClient) All(ctx context.Context, opts *tracking.PaginationOptions) *tracking.PageIterator[tracking.Shipment] {
	return tracking.NewPageIterator(ctx, c.pageFunc(opts), opts)
}

func (c *ShipmentsClient) pageFunc(opts *tracking.PaginationOptions) tracking.PageFunc[tracking.Shipment] {
	return func(ctx context.Context, limit, offset int) ([]tracking.Shipment, error) {
		listOpts := tracking.NewListOptions().WithLimit(limit).WithOffset(offset)
		if opts != nil {
			listOpts.ChangedSince = opts.ChangedSince
		}

		return c.List(ctx, listOpts)
	}
}

// Carriers retrieves the carrier reference list.
func (c *ShipmentsClient) Carriers(ctx context.Context) ([]tracking.Carrier, error) {
	resp, err := c.httpClient.Get(ctx, c.carriersPath, nil)
	if err != nil {
		return nil, fmt.Errorf("listing carriers: %w", err)
	}

	carriers, _, err := decodeList[tracking.Carrier](resp, shapeBare)
	if err != nil {
		return nil, fmt.Errorf("listing carriers: %w", err)
	}

	return carriers, nil
}
