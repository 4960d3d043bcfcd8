package tracking

import (
	"net/url"
	"strconv"
	"time"
)

// ListOptions express the limit/offset primitive of list endpoints plus the
// optional change-tracking filter. Zero values are omitted from the query
// string.
type ListOptions struct {
	// Limit is the page size requested from the server. Must be > 0 when a
	// page is requested explicitly.
	Limit int

	// Offset is the zero-based index of the first item to return.
	Offset int

	// ChangedSince restricts the listing to shipments whose last-changed
	// timestamp is greater than or equal to the given instant. Passed through
	// verbatim as changed_at_gte.
	ChangedSince *time.Time
}

// NewListOptions creates empty list options.
func NewListOptions() *ListOptions {
	return &ListOptions{}
}

// WithLimit sets the page size.
func (o *ListOptions) WithLimit(limit int) *ListOptions {
	o.Limit = limit

	return o
}

// WithOffset sets the offset.
func (o *ListOptions) WithOffset(offset int) *ListOptions {
	o.Offset = offset

	return o
}

// WithChangedSince sets the inclusive change-tracking filter.
func (o *ListOptions) WithChangedSince(t time.Time) *ListOptions {
	o.ChangedSince = &t

	return o
}

// ToValues converts the options to URL query values, omitting unset fields.
func (o *ListOptions) ToValues() url.Values {
	values := url.Values{}

	if o == nil {
		return values
	}

	if o.Limit > 0 {
		values.Set("limit", strconv.Itoa(o.Limit))
	}

	// A zero offset still travels when a page was requested explicitly, so
	// the server-side cursor is always pinned.
	if o.Offset > 0 || o.Limit > 0 {
		values.Set("offset", strconv.Itoa(o.Offset))
	}

	if o.ChangedSince != nil {
		values.Set("changed_at_gte", o.ChangedSince.Format(time.RFC3339))
	}

	return values
}
