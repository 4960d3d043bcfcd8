// Package client implements the tracking.Client interface: per-family
// resource clients composed from the transport in internal/http and the
// decode helpers in this package.
package client

import (
	"github.com/bolk-bi/container-tracking-go/internal/constants"
	internalhttp "github.com/bolk-bi/container-tracking-go/internal/http"
	"github.com/bolk-bi/container-tracking-go/pkg/tracking"
)

// Client implements the tracking.Client interface.
type Client struct {
	httpClient *internalhttp.Client
	baseURL    string
	logger     tracking.Logger

	ocean  tracking.ShipmentsClient
	air    tracking.AirShipmentsClient
	legacy tracking.ShipmentsClient
}

// New creates a new tracking API client. The config is expected to be
// validated and normalized by the trackingclient facade.
func New(config *tracking.Config) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, tracking.ErrAPIEndpointRequired
	}

	httpOpts := buildHTTPOptions(config)
	httpClient := internalhttp.NewClient(config.APIEndpoint, config.APIKey, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.APIEndpoint,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// buildHTTPOptions maps config onto transport options.
func buildHTTPOptions(config *tracking.Config) []internalhttp.Option {
	var httpOpts []internalhttp.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, internalhttp.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, internalhttp.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, internalhttp.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// initializeResourceClients initializes all resource-family clients.
func (c *Client) initializeResourceClients() {
	c.ocean = NewOceanShipmentsClient(c.httpClient, c.logger)
	c.air = NewAirShipmentsClient(c.httpClient, c.logger)
	c.legacy = NewLegacyShipmentsClient(c.httpClient, c.logger)
}

// OceanShipments implements tracking.Client.OceanShipments.
func (c *Client) OceanShipments() tracking.ShipmentsClient {
	return c.ocean
}

// AirShipments implements tracking.Client.AirShipments.
func (c *Client) AirShipments() tracking.AirShipmentsClient {
	return c.air
}

// Shipments implements tracking.Client.Shipments.
func (c *Client) Shipments() tracking.ShipmentsClient {
	return c.legacy
}

// loggerAdapter adapts tracking.Logger to the transport's logger interface.
type loggerAdapter struct {
	logger tracking.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
