package client

import (
	"encoding/json"
	"net/http"

	internalhttp "github.com/bolk-bi/container-tracking-go/internal/http"
	"github.com/bolk-bi/container-tracking-go/pkg/tracking"
)

// listShape declares how a list endpoint encodes its collection. The caller
// states the shape up front; the decoder never sniffs the payload.
type listShape int

const (
	// shapePage expects the {total, limit, offset, items} envelope.
	shapePage listShape = iota

	// shapeBare expects a raw JSON array, as the reference lists return.
	shapeBare
)

func is2xx(status int) bool {
	return status >= 200 && status < 300
}

// decodeObject translates a raw response into a typed value. A 404 is the
// absence of the object, returned as (nil, nil); any other non-2xx status is
// an *tracking.APIError; a 2xx body that fails to unmarshal is a
// *tracking.DecodeError.
func decodeObject[T any](resp *internalhttp.Response) (*T, error) {
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if !is2xx(resp.StatusCode) {
		return nil, &tracking.APIError{StatusCode: resp.StatusCode, Body: resp.Body}
	}

	var out T

	err := json.Unmarshal(resp.Body, &out)
	if err != nil {
		return nil, &tracking.DecodeError{Err: err, Body: resp.Body}
	}

	return &out, nil
}

// decodeCreated translates a create response. Unlike lookups, a 404 here is
// not absence: every non-2xx status is an *tracking.APIError. Conflict
// handling happens before this runs.
func decodeCreated[T any](resp *internalhttp.Response) (*T, error) {
	if !is2xx(resp.StatusCode) {
		return nil, &tracking.APIError{StatusCode: resp.StatusCode, Body: resp.Body}
	}

	var out T

	err := json.Unmarshal(resp.Body, &out)
	if err != nil {
		return nil, &tracking.DecodeError{Err: err, Body: resp.Body}
	}

	return &out, nil
}

// decodeList translates a raw collection response into its items and the
// server total. A missing collection has no valid encoding other than an
// empty one, so a 404 is an *tracking.APIError here, not absence. For the
// bare shape the item count stands in for the total.
func decodeList[T any](resp *internalhttp.Response, shape listShape) ([]T, int, error) {
	if !is2xx(resp.StatusCode) {
		return nil, 0, &tracking.APIError{StatusCode: resp.StatusCode, Body: resp.Body}
	}

	if shape == shapeBare {
		var items []T

		err := json.Unmarshal(resp.Body, &items)
		if err != nil {
			return nil, 0, &tracking.DecodeError{Err: err, Body: resp.Body}
		}

		return items, len(items), nil
	}

	var page tracking.Page[T]

	err := json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, 0, &tracking.DecodeError{Err: err, Body: resp.Body}
	}

	return page.Items, page.Total, nil
}
