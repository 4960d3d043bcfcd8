package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/bolk-bi/container-tracking-go/internal/http"
	"github.com/bolk-bi/container-tracking-go/pkg/tracking"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/shipments/1", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "test-key", request.Header.Get("X-API-Key"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			response := map[string]interface{}{"id": 1, "booking_number": "MSCU1234567"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "test-key")

		req := &internalhttp.Request{
			Method: "GET",
			Path:   "/shipments/1",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]interface{}

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "MSCU1234567", result["booking_number"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/shipments", request.URL.Path)
			assert.Equal(t, "limit=2&offset=4", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "test-key")

		req := &internalhttp.Request{
			Method: "GET",
			Path:   "/shipments",
			Query:  url.Values{"limit": []string{"2"}, "offset": []string{"4"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "MSCU1234567", body["booking_number"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "test-key")

		req := &internalhttp.Request{
			Method: "POST",
			Path:   "/shipments",
			Body:   map[string]string{"booking_number": "MSCU1234567"},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("non-2xx status is not an error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusConflict)
			_, _ = writer.Write([]byte(`{"detail":"already tracked"}`))
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "test-key")

		resp, err := client.Get(context.Background(), "/shipments", nil)
		require.NoError(t, err)
		assert.Equal(t, 409, resp.StatusCode)
		assert.JSONEq(t, `{"detail":"already tracked"}`, string(resp.Body))
	})

	t.Run("connection failure surfaces as transport error", func(t *testing.T) {
		t.Parallel()

		// Grab a port nobody is listening on.
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		deadURL := server.URL
		server.Close()

		client := internalhttp.NewClient(deadURL, "test-key")

		resp, err := client.Get(context.Background(), "/shipments", nil)
		require.Error(t, err)
		assert.Nil(t, resp)

		transportErr := &tracking.TransportError{}
		require.True(t, errors.As(err, &transportErr))
		assert.Error(t, transportErr.Unwrap())
	})

	t.Run("timeout surfaces as transport error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			time.Sleep(200 * time.Millisecond)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "test-key", internalhttp.WithTimeout(20*time.Millisecond))

		_, err := client.Get(context.Background(), "/shipments", nil)
		require.Error(t, err)

		transportErr := &tracking.TransportError{}
		assert.True(t, errors.As(err, &transportErr))
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "test-key")

		req := &internalhttp.Request{
			Method: "GET",
			Path:   "/shipments",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := internalhttp.NewClient(server.URL, "test-key", internalhttp.WithLogger(logger), internalhttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/shipments", nil)
		require.NoError(t, err)

		// Should have logged request and response
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})

	t.Run("custom user agent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "bolk-bi-test/1.0", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "test-key", internalhttp.WithUserAgent("bolk-bi-test/1.0"))

		_, err := client.Get(context.Background(), "/shipments", nil)
		require.NoError(t, err)
	})
}

func TestClient_RetryBehavior(t *testing.T) {
	t.Parallel()
	t.Run("no retries by default", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "test-key")

		resp, err := client.Get(context.Background(), "/shipments", nil)
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
		assert.Equal(t, 1, attempts)
	})

	t.Run("retries on 5xx when opted in", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "test-key",
			internalhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/shipments", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 3, attempts)
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "test-key",
			internalhttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/shipments", nil)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.Equal(t, 1, attempts)
	})
}

func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*internalhttp.Client, context.Context) (*internalhttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *internalhttp.Client, ctx context.Context) (*internalhttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *internalhttp.Client, ctx context.Context) (*internalhttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := internalhttp.NewClient(server.URL, "test-key")
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}
