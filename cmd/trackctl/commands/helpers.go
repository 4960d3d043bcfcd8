package commands

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/bolk-bi/container-tracking-go/pkg/tracking"
	"github.com/bolk-bi/container-tracking-go/pkg/trackingclient"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// JSON formatting.
	defaultJSONIndent = "  "
)

// Common static errors used throughout the commands package.
var (
	ErrAPIKeyNotConfigured = errors.New("API key not configured (run 'trackctl config set-key' or set TRACKCTL_API_KEY)")
	ErrShipmentNotFound    = errors.New("shipment not found")
	ErrEmptyAPIKey         = errors.New("API key must not be empty")
)

// CreateClient builds a tracking client from the resolved configuration:
// flags, environment, then config file, in that order of precedence.
func CreateClient() (tracking.Client, error) {
	apiKey := viper.GetString("api-key")
	if apiKey == "" {
		return nil, ErrAPIKeyNotConfigured
	}

	config := &tracking.Config{
		APIEndpoint: viper.GetString("api"),
		APIKey:      apiKey,
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = newZerologAdapter()
	}

	client, err := trackingclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// formatTime renders a timestamp for table output.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return NotAvailable
	}

	return t.Format("2006-01-02 15:04")
}

// formatTimePtr renders an optional timestamp for table output.
func formatTimePtr(t *time.Time) string {
	if t == nil {
		return NotAvailable
	}

	return formatTime(*t)
}

// formatStringPtr renders an optional string for table output.
func formatStringPtr(s *string) string {
	if s == nil || *s == "" {
		return NotAvailable
	}

	return *s
}

// formatIntPtr renders an optional integer for table output.
func formatIntPtr(n *int) string {
	if n == nil {
		return NotAvailable
	}

	return strconv.Itoa(*n)
}

// formatFloatPtr renders an optional float for table output.
func formatFloatPtr(f *float64) string {
	if f == nil {
		return NotAvailable
	}

	return strconv.FormatFloat(*f, 'f', -1, 64)
}
