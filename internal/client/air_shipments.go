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

// AirShipmentsClient implements tracking.AirShipmentsClient.
type AirShipmentsClient struct {
	httpClient *internalhttp.Client
	logger     tracking.Logger
}

// NewAirShipmentsClient creates the client for the air shipment family.
func NewAirShipmentsClient(httpClient *internalhttp.Client, logger tracking.Logger) *AirShipmentsClient {
	return &AirShipmentsClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Create registers an air shipment for tracking by air-waybill number. The
// 409 handling mirrors the ocean family: resolved against the existing
// shipment unless the request opts out.
func (c *AirShipmentsClient) Create(ctx context.Context, request *tracking.AirShipmentCreateRequest) (*tracking.CreateResult[tracking.AirShipmentRef], error) {
	resp, err := c.httpClient.Post(ctx, constants.APIPathAirShipments, request)
	if err != nil {
		return nil, fmt.Errorf("creating air shipment: %w", err)
	}

	if resp.StatusCode == http.StatusConflict && !request.FailOnConflict {
		return c.reconcileConflict(ctx, request.AWBNumber, resp)
	}

	ref, err := decodeCreated[tracking.AirShipmentRef](resp)
	if err != nil {
		return nil, fmt.Errorf("creating air shipment: %w", err)
	}

	return &tracking.CreateResult[tracking.AirShipmentRef]{
		Shipment: *ref,
		Outcome:  tracking.OutcomeCreated,
	}, nil
}

func (c *AirShipmentsClient) reconcileConflict(ctx context.Context, awbNumber string, conflict *internalhttp.Response) (*tracking.CreateResult[tracking.AirShipmentRef], error) {
	shipment, err := c.GetByAWB(ctx, awbNumber)
	if err != nil {
		return nil, fmt.Errorf("reconciling create conflict: %w", err)
	}

	if shipment == nil {
		if c.logger != nil {
			c.logger.Error("air shipment not found after create conflict", map[string]interface{}{
				"awb_number": awbNumber,
			})
		}

		return nil, &tracking.APIError{StatusCode: conflict.StatusCode, Body: conflict.Body}
	}

	return &tracking.CreateResult[tracking.AirShipmentRef]{
		Shipment: tracking.AirShipmentRef{ID: shipment.ID, AWBNumber: awbNumber},
		Outcome:  tracking.OutcomeResolved,
	}, nil
}

// GetByID retrieves an air shipment by id. Returns (nil, nil) when it does
// not exist.
func (c *AirShipmentsClient) GetByID(ctx context.Context, id int64) (*tracking.AirShipment, error) {
	path := constants.APIPathAirShipments + "/" + strconv.FormatInt(id, 10)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting air shipment: %w", err)
	}

	shipment, err := decodeObject[tracking.AirShipment](resp)
	if err != nil {
		return nil, fmt.Errorf("getting air shipment: %w", err)
	}

	return shipment, nil
}

// GetByAWB retrieves an air shipment by air-waybill number. Returns
// (nil, nil) when no shipment carries the number.
func (c *AirShipmentsClient) GetByAWB(ctx context.Context, awbNumber string) (*tracking.AirShipment, error) {
	query := url.Values{}
	query.Set(constants.QueryAWBNumber, awbNumber)

	resp, err := c.httpClient.Get(ctx, constants.APIPathAirShipments, query)
	if err != nil {
		return nil, fmt.Errorf("getting air shipment by awb: %w", err)
	}

	shipments, _, err := decodeList[tracking.AirShipment](resp, shapePage)
	if err != nil {
		return nil, fmt.Errorf("getting air shipment by awb: %w", err)
	}

	if len(shipments) == 0 {
		return nil, nil
	}

	return &shipments[0], nil
}

// List retrieves one page of air shipments.
func (c *AirShipmentsClient) List(ctx context.Context, opts *tracking.ListOptions) ([]tracking.AirShipment, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathAirShipments, opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing air shipments: %w", err)
	}

	shipments, _, err := decodeList[tracking.AirShipment](resp, shapePage)
	if err != nil {
		return nil, fmt.Errorf("listing air shipments: %w", err)
	}

	return shipments, nil
}

// All walks the whole air shipment collection lazily.
func (c *AirShipmentsClient) All(ctx context.Context, opts *tracking.PaginationOptions) *tracking.PageIterator[tracking.AirShipment] {
	return tracking.NewPageIterator(ctx, func(ctx context.Context, limit, offset int) ([]tracking.AirShipment, error) {
		listOpts := tracking.NewListOptions().WithLimit(limit).WithOffset(offset)
		if opts != nil {
			listOpts.ChangedSince = opts.ChangedSince
		}

		return c.List(ctx, listOpts)
	}, opts)
}

// Carriers retrieves the airline reference list.
func (c *AirShipmentsClient) Carriers(ctx context.Context) ([]tracking.AirCarrier, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathAirCarriers, nil)
	if err != nil {
		return nil, fmt.Errorf("listing air carriers: %w", err)
	}

	carriers, _, err := decodeList[tracking.AirCarrier](resp, shapeBare)
	if err != nil {
		return nil, fmt.Errorf("listing air carriers: %w", err)
	}

	return carriers, nil
}
