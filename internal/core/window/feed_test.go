// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

package window_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thinh77/trinhminhson-sub000/internal/core/window"
	"github.com/thinh77/trinhminhson-sub000/internal/platform/apperr"
)

func newFeed(fetcher window.Fetcher, opts ...window.Option) *window.Feed {
	return window.NewFeed(fetcher, append([]window.Option{window.WithLogger(discardLogger())}, opts...)...)
}

/*
TestFeed_HasMoreHeuristic verifies that a short chunk ends the feed and that
further LoadMore calls do not fetch.
*/
func TestFeed_HasMoreHeuristic(t *testing.T) {
	ctx := context.Background()
	fetcher := newFakeFetcher(7)
	feed := newFeed(fetcher)

	assert.Equal(t, window.LoadState{HasMore: true}, feed.State())

	require.NoError(t, feed.LoadMore(ctx))
	assert.Equal(t, window.LoadState{Offset: 3, HasMore: true}, feed.State())

	require.NoError(t, feed.LoadMore(ctx))
	require.NoError(t, feed.LoadMore(ctx))
	assert.Equal(t, window.LoadState{Offset: 7}, feed.State())
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7"}, ids(feed.Photos()))

	calls := fetcher.callCount()
	require.NoError(t, feed.LoadMore(ctx))
	assert.Equal(t, calls, fetcher.callCount())
}

func TestFeed_ExactChunkNeedsOneMoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	fetcher := newFakeFetcher(6)
	feed := newFeed(fetcher)

	require.NoError(t, feed.LoadMore(ctx))
	require.NoError(t, feed.LoadMore(ctx))
	assert.True(t, feed.State().HasMore)

	require.NoError(t, feed.LoadMore(ctx))
	assert.Equal(t, window.LoadState{Offset: 6}, feed.State())
	assert.Equal(t, []string{"page:3@0", "page:3@3", "page:3@6"}, fetcher.calls)
}

func TestFeed_LoadAllIsTerminal(t *testing.T) {
	ctx := context.Background()
	fetcher := newFakeFetcher(7)
	feed := newFeed(fetcher)

	require.NoError(t, feed.LoadMore(ctx))
	require.NoError(t, feed.LoadAll(ctx))
	assert.Equal(t, window.LoadState{Offset: 7, FullyLoaded: true}, feed.State())
	assert.Len(t, feed.Photos(), 7)

	calls := fetcher.callCount()
	require.NoError(t, feed.LoadMore(ctx))
	require.NoError(t, feed.LoadAll(ctx))
	assert.Equal(t, calls, fetcher.callCount())
}

func TestFeed_RefreshReloadsEverything(t *testing.T) {
	ctx := context.Background()
	fetcher := newFakeFetcher(7)
	feed := newFeed(fetcher)
	require.NoError(t, feed.LoadAll(ctx))

	fetcher.set(numbered(9), nil)
	require.NoError(t, feed.Refresh(ctx))

	assert.Equal(t, window.LoadState{Offset: 9, FullyLoaded: true}, feed.State())
	assert.Len(t, feed.Photos(), 9)
}

func TestFeed_FailureLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	fetcher := newFakeFetcher(7)
	feed := newFeed(fetcher)
	require.NoError(t, feed.LoadMore(ctx))

	fetcher.set(numbered(7), errors.New("network down"))

	for _, load := range []func(context.Context) error{feed.LoadMore, feed.LoadAll, feed.Refresh} {
		err := load(ctx)
		require.Error(t, err)
		assert.True(t, apperr.HasCode(err, apperr.CodeLoadFailed))
		assert.Equal(t, window.LoadState{Offset: 3, HasMore: true}, feed.State())
		assert.Equal(t, []string{"1", "2", "3"}, ids(feed.Photos()))
	}
	assert.Error(t, feed.LastError())

	fetcher.set(numbered(7), nil)
	require.NoError(t, feed.LoadMore(ctx))
	assert.NoError(t, feed.LastError())
	assert.Equal(t, 6, feed.State().Offset)
}

func TestFeed_InFlightCallsAreNoOps(t *testing.T) {
	ctx := context.Background()
	fetcher := newFakeFetcher(7)
	feed := newFeed(fetcher)

	release := fetcher.block()
	done := make(chan error, 1)
	go func() { done <- feed.LoadMore(ctx) }()
	fetcher.waitStarted()

	assert.NoError(t, feed.LoadMore(ctx))
	assert.NoError(t, feed.Refresh(ctx))
	assert.Equal(t, 1, fetcher.callCount())

	release()
	require.NoError(t, <-done)
	assert.Equal(t, []string{"1", "2", "3"}, ids(feed.Photos()))
}

/*
TestFeed_LoadAllDuringChunkRunsAfterIt checks that a LoadAll arriving while a
chunk is pending is not lost: the chunk's caller performs the full load once
the chunk lands.
*/
func TestFeed_LoadAllDuringChunkRunsAfterIt(t *testing.T) {
	ctx := context.Background()
	fetcher := newFakeFetcher(7)
	feed := newFeed(fetcher)

	release := fetcher.block()
	done := make(chan error, 1)
	go func() { done <- feed.LoadMore(ctx) }()
	fetcher.waitStarted()

	assert.NoError(t, feed.LoadAll(ctx))
	assert.Equal(t, 1, fetcher.callCount())

	release()
	require.NoError(t, <-done)
	assert.Equal(t, window.LoadState{Offset: 7, FullyLoaded: true}, feed.State())
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7"}, ids(feed.Photos()))
	assert.Equal(t, 2, fetcher.callCount())
}

func TestFeed_ResetClearsPendingLoadAll(t *testing.T) {
	ctx := context.Background()
	fetcher := newFakeFetcher(7)
	feed := newFeed(fetcher)

	release := fetcher.block()
	done := make(chan error, 1)
	go func() { done <- feed.LoadMore(ctx) }()
	fetcher.waitStarted()

	require.NoError(t, feed.LoadAll(ctx))
	feed.Reset()

	release()
	require.NoError(t, <-done)
	assert.Equal(t, window.LoadState{HasMore: true}, feed.State())
	assert.Empty(t, feed.Photos())
	assert.Equal(t, 1, fetcher.callCount())
}

func TestFeed_ResetDropsStaleResponse(t *testing.T) {
	ctx := context.Background()
	registry := prometheus.NewRegistry()
	fetcher := newFakeFetcher(7)
	feed := newFeed(fetcher, window.WithMetrics(window.NewMetrics(registry)))

	release := fetcher.block()
	done := make(chan error, 1)
	go func() { done <- feed.LoadAll(ctx) }()
	fetcher.waitStarted()

	feed.Reset()
	release()
	require.NoError(t, <-done)

	assert.Equal(t, window.LoadState{HasMore: true}, feed.State())
	assert.Empty(t, feed.Photos())
	assert.Equal(t, 1.0, counterValue(t, registry, "gallery_window_stale_responses_total", map[string]string{"strategy": "infinite"}))
}

func TestFeed_StartAtResumesFromOffset(t *testing.T) {
	fetcher := newFakeFetcher(7)
	feed := newFeed(fetcher, window.WithSize(2))

	feed.StartAt(4)
	require.NoError(t, feed.LoadMore(context.Background()))

	assert.Equal(t, []string{"page:2@4"}, fetcher.calls)
	assert.Equal(t, []string{"5", "6"}, ids(feed.Photos()))
	assert.Equal(t, window.LoadState{Offset: 6, HasMore: true}, feed.State())

	feed.StartAt(0)
	assert.Equal(t, 6, feed.State().Offset)
}
