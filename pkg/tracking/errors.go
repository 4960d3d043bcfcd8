package tracking

import (
	"errors"
	"fmt"
	"net/http"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIKeyRequired      = errors.New("API key is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrNoMoreItems         = errors.New("no more items")
)

// maxErrorBodyLen bounds how much of a response body an error message quotes.
const maxErrorBodyLen = 512

// TransportError represents a failure before any HTTP response was received,
// such as a refused connection or a timeout.
type TransportError struct {
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

// Unwrap returns the underlying network error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError represents a non-2xx HTTP response from the tracking API. Body
// carries the raw response body for diagnostics.
type APIError struct {
	StatusCode int
	Body       []byte
}

// Error implements the error interface.
func (e *APIError) Error() string {
	body := e.Body
	if len(body) > maxErrorBodyLen {
		body = body[:maxErrorBodyLen]
	}

	if len(body) == 0 {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}

	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, body)
}

// DecodeError represents a 2xx response whose body did not match the expected
// schema. It signals contract drift between client and API rather than a
// usage error.
type DecodeError struct {
	Err  error
	Body []byte
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response: %v", e.Err)
}

// Unwrap returns the underlying unmarshal error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AsAPIError extracts an *APIError from an error chain.
func AsAPIError(err error) (*APIError, bool) {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// IsAPIStatus checks whether the error is an *APIError with the given status.
func IsAPIStatus(err error, status int) bool {
	apiErr, ok := AsAPIError(err)

	return ok && apiErr.StatusCode == status
}

// IsConflict checks whether the error is a 409 conflict from the API.
func IsConflict(err error) bool {
	return IsAPIStatus(err, http.StatusConflict)
}
