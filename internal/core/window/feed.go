// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

package window

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/thinh77/trinhminhson-sub000/internal/core/photo"
	"github.com/thinh77/trinhminhson-sub000/pkg/pagination"
)

type feedKind int

const (
	feedNotStarted feedKind = iota
	feedPaging
	feedFullyLoaded
)

// feedPhase is NotStarted | Paging(offset, hasMore) | FullyLoaded. Offset
// and hasMore are only meaningful while paging, so "has more" and "fully
// loaded" cannot both hold.
type feedPhase struct {
	kind    feedKind
	offset  int
	hasMore bool
}

// LoadState is the externally visible feed bookkeeping.
type LoadState struct {
	Offset      int  `json:"offset"`
	HasMore     bool `json:"has_more"`
	FullyLoaded bool `json:"fully_loaded"`
}

// Feed accumulates photos chunk by chunk.
type Feed struct {
	fetcher   Fetcher
	chunkSize int
	logger    *slog.Logger
	metrics   *Metrics

	mu         sync.Mutex
	phase      feedPhase
	photos     []photo.Photo
	inFlight   bool
	pendingAll bool
	generation uint64
	lastErr    error
}

// NewFeed creates a feed that has not fetched anything yet. The chunk size
// defaults to [pagination.DefaultChunkSize].
func NewFeed(fetcher Fetcher, opts ...Option) *Feed {
	o := buildOptions(pagination.DefaultChunkSize, opts)
	return &Feed{
		fetcher:   fetcher,
		chunkSize: o.size,
		logger:    o.logger,
		metrics:   o.metrics,
	}
}

// # Queries

func (f *Feed) ChunkSize() int { return f.chunkSize }

func (f *Feed) State() LoadState {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.phase.kind {
	case feedPaging:
		return LoadState{Offset: f.phase.offset, HasMore: f.phase.hasMore}
	case feedFullyLoaded:
		return LoadState{Offset: len(f.photos), FullyLoaded: true}
	default:
		return LoadState{HasMore: true}
	}
}

// Photos returns a copy of everything accumulated so far.
func (f *Feed) Photos() []photo.Photo {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]photo.Photo(nil), f.photos...)
}

// LastError returns the failure of the most recent completed fetch, or nil.
func (f *Feed) LastError() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// # Controls

// StartAt positions a feed that has not started at offset, so a client can
// resume scrolling. It has no effect once the feed has fetched.
func (f *Feed) StartAt(offset int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase.kind != feedNotStarted || f.inFlight || offset <= 0 {
		return
	}
	f.phase = feedPhase{kind: feedPaging, offset: offset, hasMore: true}
}

/*
LoadMore fetches the next chunk and appends it.

It is a no-op while another fetch is pending, after the feed ran out, and
once fully loaded. A short chunk ends the feed; a full chunk is taken to mean
more photos remain, which is wrong when exactly one chunk was left.
*/
func (f *Feed) LoadMore(ctx context.Context) error {
	f.mu.Lock()
	if f.inFlight || f.phase.kind == feedFullyLoaded || (f.phase.kind == feedPaging && !f.phase.hasMore) {
		f.mu.Unlock()
		return nil
	}
	offset := f.phase.offset
	generation := f.beginLocked()
	f.mu.Unlock()

	started := time.Now()
	chunk, err := f.fetcher.FetchPhotos(ctx, f.chunkSize, offset)
	f.metrics.observe(strategyInfinite, operationChunk, started, err)

	f.mu.Lock()
	if f.completeLocked(generation, err) {
		f.photos = append(f.photos, chunk...)
		f.phase = feedPhase{
			kind:    feedPaging,
			offset:  offset + len(chunk),
			hasMore: len(chunk) == f.chunkSize,
		}

		f.logger.Debug("photos_chunk_loaded",
			slog.Int("offset", f.phase.offset),
			slog.Int("count", len(chunk)),
			slog.Bool("has_more", f.phase.hasMore),
		)
	}
	loadAll := f.takePendingLocked(generation)
	result := f.lastErrLocked(generation)
	f.mu.Unlock()

	if loadAll {
		return f.loadAll(ctx, false)
	}
	return result
}

// LoadAll fetches the whole collection and ends the feed. Filtering needs
// this, since photos that were never fetched cannot match. It is a no-op
// once fully loaded. Called while a chunk is pending, it returns nil at once
// and the full load runs on the LoadMore call that owns the chunk.
func (f *Feed) LoadAll(ctx context.Context) error {
	return f.loadAll(ctx, false)
}

// Refresh refetches the whole collection and makes it the current state,
// even if the feed was already fully loaded.
func (f *Feed) Refresh(ctx context.Context) error {
	return f.loadAll(ctx, true)
}

// Reset returns the feed to NotStarted. A fetch still pending is dropped
// when it completes.
func (f *Feed) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.generation++
	f.inFlight = false
	f.pendingAll = false
	f.phase = feedPhase{}
	f.photos = nil
	f.lastErr = nil
}

// # Internals

func (f *Feed) loadAll(ctx context.Context, force bool) error {
	f.mu.Lock()
	if !force && f.phase.kind == feedFullyLoaded {
		f.mu.Unlock()
		return nil
	}
	if f.inFlight {
		if !force {
			f.pendingAll = true
		}
		f.mu.Unlock()
		return nil
	}
	generation := f.beginLocked()
	f.mu.Unlock()

	started := time.Now()
	photos, err := f.fetcher.FetchAll(ctx)
	f.metrics.observe(strategyInfinite, operationAll, started, err)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.takePendingLocked(generation)
	if !f.completeLocked(generation, err) {
		return f.lastErrLocked(generation)
	}

	f.photos = photos
	f.phase = feedPhase{kind: feedFullyLoaded}

	f.logger.Debug("photos_fully_loaded", slog.Int("count", len(photos)))
	return nil
}

func (f *Feed) beginLocked() uint64 {
	f.inFlight = true
	return f.generation
}

// completeLocked settles a finished fetch. It reports whether the caller
// should apply the result: false for stale responses and failures.
func (f *Feed) completeLocked(generation uint64, err error) bool {
	if generation != f.generation {
		f.metrics.dropStale(strategyInfinite)
		f.logger.Debug("photos_feed_stale_dropped")
		return false
	}

	f.inFlight = false
	if err != nil {
		f.lastErr = loadFailed(err)
		f.logger.Warn("photos_feed_load_failed", slog.Any("error", err))
		return false
	}

	f.lastErr = nil
	return true
}

// takePendingLocked reports and clears a LoadAll that arrived while the
// fetch of generation was pending.
func (f *Feed) takePendingLocked(generation uint64) bool {
	if generation != f.generation || !f.pendingAll {
		return false
	}
	f.pendingAll = false
	return true
}

// lastErrLocked returns the recorded failure for the current generation,
// and nil for a dropped stale response.
func (f *Feed) lastErrLocked(generation uint64) error {
	if generation != f.generation {
		return nil
	}
	return f.lastErr
}
