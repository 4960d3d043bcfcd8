package tracking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errPageBroken = errors.New("page broken")

// slicePages serves a fixed collection through the PageFunc contract and
// records every fetch it sees.
type slicePages struct {
	items   []int
	fetches []int // offsets, in order
	limits  []int
	failAt  int // offset at which to fail; -1 disables
}

func newSlicePages(n int) *slicePages {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}

	return &slicePages{items: items, failAt: -1}
}

func (s *slicePages) fetch(_ context.Context, limit, offset int) ([]int, error) {
	s.fetches = append(s.fetches, offset)
	s.limits = append(s.limits, limit)

	if s.failAt >= 0 && offset >= s.failAt {
		return nil, errPageBroken
	}

	if offset >= len(s.items) {
		return []int{}, nil
	}

	end := offset + limit
	if end > len(s.items) {
		end = len(s.items)
	}

	return s.items[offset:end], nil
}

func TestPageIterator_WalksUntilEmptyPage(t *testing.T) {
	t.Parallel()

	source := newSlicePages(3)
	it := NewPageIterator(context.Background(), source.fetch, &PaginationOptions{PageSize: 2})

	items, err := it.All()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, items)

	// Pages of 2, then 1, then the empty page that ends the walk. A short
	// page alone does not terminate.
	assert.Equal(t, []int{0, 2, 4}, source.fetches)
	assert.Equal(t, []int{2, 2, 2}, source.limits)
}

func TestPageIterator_ExactMultipleStillFetchesEmptyPage(t *testing.T) {
	t.Parallel()

	source := newSlicePages(4)
	it := NewPageIterator(context.Background(), source.fetch, &PaginationOptions{PageSize: 2})

	items, err := it.All()
	require.NoError(t, err)
	assert.Len(t, items, 4)
	assert.Equal(t, []int{0, 2, 4}, source.fetches)
}

func TestPageIterator_EmptyCollection(t *testing.T) {
	t.Parallel()

	source := newSlicePages(0)
	it := NewPageIterator(context.Background(), source.fetch, nil)

	assert.False(t, it.HasNext())

	_, err := it.Next()
	assert.ErrorIs(t, err, ErrNoMoreItems)
	assert.Equal(t, []int{0}, source.fetches)
}

func TestPageIterator_DefaultsPageSize(t *testing.T) {
	t.Parallel()

	source := newSlicePages(0)
	it := NewPageIterator(context.Background(), source.fetch, nil)

	_, err := it.All()
	require.NoError(t, err)
	assert.Equal(t, []int{DefaultPageSize}, source.limits)
}

func TestPageIterator_NextAfterEnd(t *testing.T) {
	t.Parallel()

	source := newSlicePages(1)
	it := NewPageIterator(context.Background(), source.fetch, &PaginationOptions{PageSize: 10})

	item, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, item)

	_, err = it.Next()
	assert.ErrorIs(t, err, ErrNoMoreItems)

	_, err = it.Next()
	assert.ErrorIs(t, err, ErrNoMoreItems)
}

func TestPageIterator_FetchErrorSurfacesOnce(t *testing.T) {
	t.Parallel()

	source := newSlicePages(4)
	source.failAt = 2

	it := NewPageIterator(context.Background(), source.fetch, &PaginationOptions{PageSize: 2})

	for i := 0; i < 2; i++ {
		require.True(t, it.HasNext())

		_, err := it.Next()
		require.NoError(t, err)
	}

	// The failed fetch must not be swallowed by HasNext.
	require.True(t, it.HasNext())

	_, err := it.Next()
	assert.ErrorIs(t, err, errPageBroken)

	// The sequence is over after the error.
	assert.False(t, it.HasNext())

	_, err = it.Next()
	assert.ErrorIs(t, err, ErrNoMoreItems)
}

func TestPageIterator_AllPropagatesError(t *testing.T) {
	t.Parallel()

	source := newSlicePages(4)
	source.failAt = 2

	_, err := NewPageIterator(context.Background(), source.fetch, &PaginationOptions{PageSize: 2}).All()
	assert.ErrorIs(t, err, errPageBroken)
}

func TestPageIterator_ForEach(t *testing.T) {
	t.Parallel()

	source := newSlicePages(5)

	var seen []int

	err := NewPageIterator(context.Background(), source.fetch, &PaginationOptions{PageSize: 2}).
		ForEach(func(item int) error {
			seen = append(seen, item)

			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, seen)
}

func TestPageIterator_ForEachStopsOnCallbackError(t *testing.T) {
	t.Parallel()

	errStop := errors.New("stop")
	source := newSlicePages(5)

	var seen int

	err := NewPageIterator(context.Background(), source.fetch, &PaginationOptions{PageSize: 2}).
		ForEach(func(int) error {
			seen++
			if seen == 3 {
				return errStop
			}

			return nil
		})
	assert.ErrorIs(t, err, errStop)
	assert.Equal(t, 3, seen)
}

func TestPageIterator_PageDelayPacesFetches(t *testing.T) {
	t.Parallel()

	source := newSlicePages(4)
	opts := &PaginationOptions{PageSize: 2, PageDelay: 30 * time.Millisecond}

	start := time.Now()
	_, err := NewPageIterator(context.Background(), source.fetch, opts).All()
	require.NoError(t, err)

	// Three fetches, two inter-page delays.
	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
}

func TestPageIterator_DelayHonorsContextCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	source := newSlicePages(10)
	opts := &PaginationOptions{PageSize: 2, PageDelay: time.Minute}

	it := NewPageIterator(ctx, source.fetch, opts)

	for i := 0; i < 2; i++ {
		_, err := it.Next()
		require.NoError(t, err)
	}

	cancel()

	// Draining the first page is still fine; the next fetch waits on the
	// delay and must bail out on cancellation instead.
	for it.HasNext() {
		_, err := it.Next()
		if err != nil {
			assert.ErrorIs(t, err, context.Canceled)

			return
		}
	}

	t.Fatal("expected a cancellation error")
}

func TestFetchAllPages(t *testing.T) {
	t.Parallel()

	source := newSlicePages(7)

	items, err := FetchAllPages(context.Background(), source.fetch, &PaginationOptions{PageSize: 3})
	require.NoError(t, err)
	assert.Len(t, items, 7)
	assert.Equal(t, []int{0, 3, 6, 9}, source.fetches)
}

func TestStreamPages(t *testing.T) {
	t.Parallel()

	source := newSlicePages(5)

	var pages [][]int

	for result := range StreamPages(context.Background(), source.fetch, &PaginationOptions{PageSize: 2}) {
		require.NoError(t, result.Err)
		pages = append(pages, result.Items)
	}

	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, pages)
}

func TestStreamPages_DeliversErrorLast(t *testing.T) {
	t.Parallel()

	source := newSlicePages(5)
	source.failAt = 2

	var (
		pages   int
		lastErr error
	)

	for result := range StreamPages(context.Background(), source.fetch, &PaginationOptions{PageSize: 2}) {
		if result.Err != nil {
			lastErr = result.Err

			continue
		}

		pages++
	}

	assert.Equal(t, 1, pages)
	assert.ErrorIs(t, lastErr, errPageBroken)
}

func TestStreamPages_StopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	source := newSlicePages(100)

	results := StreamPages(ctx, source.fetch, &PaginationOptions{PageSize: 10})

	first, ok := <-results
	require.True(t, ok)
	require.NoError(t, first.Err)
	assert.Len(t, first.Items, 10)

	cancel()

	// The stream must close shortly after cancellation.
	for range results { //nolint:revive // draining until close
	}
}
