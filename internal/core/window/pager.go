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

// Status is the pager lifecycle: Idle → Loading(page) → Loaded(page).
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	default:
		return "idle"
	}
}

// Phase pairs a Status with the page it concerns. Page is zero when Idle.
type Phase struct {
	Status Status
	Page   int
}

// Pager materializes one fixed-size page at a time.
//
// The total count is tracked separately from the page and only changes on
// Open or Refresh. Fetches run outside the lock.
type Pager struct {
	fetcher  Fetcher
	pageSize int
	logger   *slog.Logger
	metrics  *Metrics

	mu         sync.Mutex
	phase      Phase
	page       int
	total      int
	photos     []photo.Photo
	loaded     bool
	inFlight   bool
	generation uint64
	lastErr    error
}

// NewPager creates an idle pager. The page size defaults to
// [pagination.DefaultPageSize].
func NewPager(fetcher Fetcher, opts ...Option) *Pager {
	o := buildOptions(pagination.DefaultPageSize, opts)
	return &Pager{
		fetcher:  fetcher,
		pageSize: o.size,
		logger:   o.logger,
		metrics:  o.metrics,
		page:     pagination.FirstPage,
	}
}

// # Queries

func (p *Pager) PageSize() int { return p.pageSize }

// State derives the pagination bookkeeping from the loaded page and total.
func (p *Pager) State() pagination.State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stateLocked()
}

func (p *Pager) stateLocked() pagination.State {
	return pagination.NewState(p.page, p.total, p.pageSize)
}

// Photos returns a copy of the materialized page.
func (p *Pager) Photos() []photo.Photo {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]photo.Photo(nil), p.photos...)
}

func (p *Pager) Phase() Phase {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.phase
}

// LastError returns the failure of the most recent completed fetch, or nil
// if it succeeded.
func (p *Pager) LastError() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

// # Navigation

// GoToPage loads page n. Out-of-range pages and calls made while another
// fetch is pending are silent no-ops.
func (p *Pager) GoToPage(ctx context.Context, page int) error {
	p.mu.Lock()
	if p.inFlight || page < pagination.FirstPage || page > p.stateLocked().TotalPages {
		p.mu.Unlock()
		return nil
	}
	generation := p.beginLocked(page)
	total := p.total
	p.mu.Unlock()

	photos, err := p.fetchPage(ctx, page)
	if err != nil {
		return p.fail(generation, err)
	}
	return p.commit(generation, page, total, photos)
}

// NextPage moves forward unless already on the last page.
func (p *Pager) NextPage(ctx context.Context) error {
	state := p.State()
	if !state.HasNextPage {
		return nil
	}
	return p.GoToPage(ctx, state.CurrentPage+1)
}

// PrevPage moves back unless already on the first page.
func (p *Pager) PrevPage(ctx context.Context) error {
	state := p.State()
	if !state.HasPrevPage {
		return nil
	}
	return p.GoToPage(ctx, state.CurrentPage-1)
}

// Open counts the collection and loads page, clamped into the counted range.
func (p *Pager) Open(ctx context.Context, page int) error {
	return p.reload(ctx, func() int { return page })
}

/*
Refresh re-counts the collection and reloads the current page.

The count and the page are two round trips and the total may change in
between. Both results are swapped in together, and only if both fetches
succeed. If the collection shrank below the current page, the last page is
loaded instead.
*/
func (p *Pager) Refresh(ctx context.Context) error {
	return p.reload(ctx, func() int { return p.page })
}

// Reset returns the pager to Idle. A fetch still pending is dropped when it
// completes.
func (p *Pager) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.generation++
	p.inFlight = false
	p.phase = Phase{}
	p.page = pagination.FirstPage
	p.total = 0
	p.photos = nil
	p.loaded = false
	p.lastErr = nil
}

// # Internals

func (p *Pager) reload(ctx context.Context, targetLocked func() int) error {
	p.mu.Lock()
	if p.inFlight {
		p.mu.Unlock()
		return nil
	}
	target := max(targetLocked(), pagination.FirstPage)
	generation := p.beginLocked(target)
	p.mu.Unlock()

	started := time.Now()
	total, err := countPhotos(ctx, p.fetcher)
	p.metrics.observe(strategyPaged, operationCount, started, err)
	if err != nil {
		return p.fail(generation, err)
	}

	target = min(target, pagination.TotalPages(total, p.pageSize))
	photos, err := p.fetchPage(ctx, target)
	if err != nil {
		return p.fail(generation, err)
	}
	return p.commit(generation, target, total, photos)
}

func (p *Pager) fetchPage(ctx context.Context, page int) ([]photo.Photo, error) {
	started := time.Now()
	photos, err := p.fetcher.FetchPhotos(ctx, p.pageSize, pagination.Offset(page, p.pageSize))
	p.metrics.observe(strategyPaged, operationPage, started, err)
	return photos, err
}

func (p *Pager) beginLocked(page int) uint64 {
	p.inFlight = true
	p.phase = Phase{Status: StatusLoading, Page: page}
	return p.generation
}

func (p *Pager) commit(generation uint64, page, total int, photos []photo.Photo) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if generation != p.generation {
		p.metrics.dropStale(strategyPaged)
		p.logger.Debug("photos_page_stale_dropped", slog.Int("page", page))
		return nil
	}

	p.inFlight = false
	p.page = page
	p.total = total
	p.photos = photos
	p.loaded = true
	p.phase = Phase{Status: StatusLoaded, Page: page}
	p.lastErr = nil

	p.logger.Debug("photos_page_loaded",
		slog.Int("page", page),
		slog.Int("count", len(photos)),
		slog.Int("total", total),
	)
	return nil
}

func (p *Pager) fail(generation uint64, err error) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if generation != p.generation {
		p.metrics.dropStale(strategyPaged)
		return nil
	}

	p.inFlight = false
	if p.loaded {
		p.phase = Phase{Status: StatusLoaded, Page: p.page}
	} else {
		p.phase = Phase{}
	}

	failure := loadFailed(err)
	p.lastErr = failure
	p.logger.Warn("photos_page_load_failed",
		slog.Int("page", p.page),
		slog.Any("error", err),
	)
	return failure
}
