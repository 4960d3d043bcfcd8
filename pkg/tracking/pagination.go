package tracking

import (
	"context"
	"time"
)

// DefaultPageSize is the page size used when PaginationOptions do not set one.
const DefaultPageSize = 100

// PageFunc fetches one page of a collection. It is the limit/offset list
// primitive the pagination helpers are built on.
type PageFunc[T any] func(ctx context.Context, limit, offset int) ([]T, error)

// PaginationOptions configure how the pagination helpers walk a collection.
type PaginationOptions struct {
	// PageSize is the number of items requested per page fetch. Defaults to
	// DefaultPageSize.
	PageSize int

	// PageDelay pauses between successive page fetches as a courtesy to the
	// API's rate limits. Zero means no pacing.
	PageDelay time.Duration

	// ChangedSince restricts the traversal to shipments whose last-changed
	// timestamp is at or after the given instant.
	ChangedSince *time.Time
}

// DefaultPaginationOptions returns the default pagination options.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{PageSize: DefaultPageSize}
}

func (o *PaginationOptions) pageSize() int {
	if o == nil || o.PageSize <= 0 {
		return DefaultPageSize
	}

	return o.PageSize
}

func (o *PaginationOptions) pageDelay() time.Duration {
	if o == nil {
		return 0
	}

	return o.PageDelay
}

// PageIterator walks a collection lazily, fetching one page at a time and
// yielding its items in server order. The sequence ends when a fetched page
// comes back empty; the server total is never consulted, since it can change
// between pages on live data. An iterator is not restartable: a fresh
// iterator starts a fresh offset cursor at zero.
type PageIterator[T any] struct {
	ctx      context.Context
	fetch    PageFunc[T]
	pageSize int
	delay    time.Duration

	offset  int
	page    []T
	pos     int
	fetched bool
	done    bool
	err     error
}

// NewPageIterator creates an iterator over the collection served by fetch.
func NewPageIterator[T any](ctx context.Context, fetch PageFunc[T], opts *PaginationOptions) *PageIterator[T] {
	return &PageIterator[T]{
		ctx:      ctx,
		fetch:    fetch,
		pageSize: opts.pageSize(),
		delay:    opts.pageDelay(),
	}
}

// HasNext reports whether another item is available, fetching the next page
// when the current one is exhausted. A fetch failure makes HasNext return
// true once more so the error surfaces from Next.
func (it *PageIterator[T]) HasNext() bool {
	if it.err != nil {
		return true
	}

	if it.done {
		return false
	}

	if it.pos < len(it.page) {
		return true
	}

	it.fetchNext()

	return it.err != nil || it.pos < len(it.page)
}

// Next returns the next item in the sequence. After the sequence ends it
// returns ErrNoMoreItems; after a failed page fetch it returns that error and
// the sequence is over.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if it.err != nil {
		err := it.err
		it.err = nil
		it.done = true

		return zero, err
	}

	if !it.done && it.pos >= len(it.page) {
		it.fetchNext()

		if it.err != nil {
			err := it.err
			it.err = nil
			it.done = true

			return zero, err
		}
	}

	if it.done || it.pos >= len(it.page) {
		return zero, ErrNoMoreItems
	}

	item := it.page[it.pos]
	it.pos++

	return item, nil
}

// All drains the remaining sequence into a slice.
func (it *PageIterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

// ForEach applies fn to every remaining item, stopping at the first error
// from fn or from a page fetch.
func (it *PageIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

// fetchNext pulls the next page and advances the offset cursor. An empty
// page terminates the sequence.
func (it *PageIterator[T]) fetchNext() {
	if it.fetched && it.delay > 0 {
		timer := time.NewTimer(it.delay)
		select {
		case <-it.ctx.Done():
			timer.Stop()
			it.err = it.ctx.Err()

			return
		case <-timer.C:
		}
	}

	page, err := it.fetch(it.ctx, it.pageSize, it.offset)
	if err != nil {
		it.err = err

		return
	}

	it.fetched = true
	it.offset += it.pageSize
	it.page = page
	it.pos = 0

	if len(page) == 0 {
		it.done = true
	}
}

// FetchAllPages eagerly collects the whole collection.
func FetchAllPages[T any](ctx context.Context, fetch PageFunc[T], opts *PaginationOptions) ([]T, error) {
	return NewPageIterator(ctx, fetch, opts).All()
}

// PageResult carries one fetched page or the error that ended the stream.
type PageResult[T any] struct {
	Items []T
	Err   error
}

// StreamPages walks the collection in a goroutine and delivers every page on
// the returned channel. The channel closes after the final page, after an
// error (delivered as the last result), or when ctx is cancelled.
func StreamPages[T any](ctx context.Context, fetch PageFunc[T], opts *PaginationOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	pageSize := opts.pageSize()
	delay := opts.pageDelay()

	go func() {
		defer close(results)

		offset := 0

		for {
			page, err := fetch(ctx, pageSize, offset)
			if err != nil {
				select {
				case results <- PageResult[T]{Err: err}:
				case <-ctx.Done():
				}

				return
			}

			if len(page) == 0 {
				return
			}

			select {
			case results <- PageResult[T]{Items: page}:
			case <-ctx.Done():
				return
			}

			offset += pageSize

			if delay > 0 {
				timer := time.NewTimer(delay)
				select {
				case <-ctx.Done():
					timer.Stop()

					return
				case <-timer.C:
				}
			}
		}
	}()

	return results
}
