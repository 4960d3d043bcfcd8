package trackingclient

import (
	"fmt"
	"strings"

	"github.com/bolk-bi/container-tracking-go/internal/client"
	"github.com/bolk-bi/container-tracking-go/internal/constants"
	"github.com/bolk-bi/container-tracking-go/pkg/tracking"
)

// New creates a new tracking API client from the given configuration.
func New(config *tracking.Config) (tracking.Client, error) {
	if config == nil {
		return nil, tracking.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, tracking.ErrAPIKeyRequired
	}

	apiEndpoint := config.APIEndpoint
	if apiEndpoint == "" {
		apiEndpoint = constants.DefaultAPIEndpoint
	}

	apiEndpoint = strings.TrimSuffix(apiEndpoint, "/")
	if !strings.HasPrefix(apiEndpoint, "http://") && !strings.HasPrefix(apiEndpoint, "https://") {
		apiEndpoint = "https://" + apiEndpoint
	}

	config.APIEndpoint = apiEndpoint

	cli, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return cli, nil
}

// NewWithKey creates a new client for the production endpoint with just an
// API key.
func NewWithKey(apiKey string) (tracking.Client, error) {
	return New(&tracking.Config{
		APIKey: apiKey,
	})
}

// NewWithEndpoint creates a new client for a specific endpoint and API key.
func NewWithEndpoint(endpoint, apiKey string) (tracking.Client, error) {
	return New(&tracking.Config{
		APIEndpoint: endpoint,
		APIKey:      apiKey,
	})
}
