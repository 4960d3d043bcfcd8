package trackingclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bolk-bi/container-tracking-go/pkg/tracking"
	"github.com/bolk-bi/container-tracking-go/pkg/trackingclient"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()
	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := trackingclient.New(nil)
		assert.ErrorIs(t, err, tracking.ErrConfigRequired)
	})

	t.Run("missing api key", func(t *testing.T) {
		t.Parallel()

		_, err := trackingclient.New(&tracking.Config{})
		assert.ErrorIs(t, err, tracking.ErrAPIKeyRequired)
	})
}

func TestNew_EndpointNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint string
		want     string
	}{
		{
			name:     "trailing slash trimmed",
			endpoint: "https://api.example.com/v1/",
			want:     "https://api.example.com/v1",
		},
		{
			name:     "scheme added when missing",
			endpoint: "api.example.com/v1",
			want:     "https://api.example.com/v1",
		},
		{
			name:     "http left alone",
			endpoint: "http://localhost:8080/v1",
			want:     "http://localhost:8080/v1",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			config := &tracking.Config{APIEndpoint: testCase.endpoint, APIKey: "test-key"}

			_, err := trackingclient.New(config)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, config.APIEndpoint)
		})
	}
}

func TestNew_DefaultsEndpoint(t *testing.T) {
	t.Parallel()

	config := &tracking.Config{APIKey: "test-key"}

	_, err := trackingclient.New(config)
	require.NoError(t, err)
	assert.Equal(t, "https://api.container-tracking.bolk-bi.com/v1", config.APIEndpoint)
}

func TestClient_EndToEnd(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("X-API-Key"))

		switch {
		case r.Method == "POST" && r.URL.Path == "/ocean/shipments":
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(tracking.ShipmentRef{ID: 1, BookingNumber: "MSCU1234567"})
		case r.Method == "GET" && r.URL.Path == "/ocean/shipments/1":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(tracking.Shipment{
				ShipmentRef: tracking.ShipmentRef{ID: 1, BookingNumber: "MSCU1234567"},
				Status:      tracking.ShipmentStatusNew,
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	cli, err := trackingclient.NewWithEndpoint(server.URL, "secret")
	require.NoError(t, err)

	ctx := context.Background()

	result, err := cli.OceanShipments().Create(ctx, &tracking.ShipmentCreateRequest{
		BookingNumber: "MSCU1234567",
	})
	require.NoError(t, err)
	assert.Equal(t, tracking.OutcomeCreated, result.Outcome)

	shipment, err := cli.OceanShipments().GetByID(ctx, result.Shipment.ID)
	require.NoError(t, err)
	require.NotNil(t, shipment)
	assert.Equal(t, tracking.ShipmentStatusNew, shipment.Status)

	missing, err := cli.OceanShipments().GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
