// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

/*
Package window decides how much of the photo collection is materialized.

Strategies:

  - Pager: fixed-size, randomly addressable pages over a known total.
  - Feed: a growing list fed by sequential chunk fetches, with a terminal
    "load all" transition.

Both guard against overlapping fetches with an in-flight flag and drop
responses that complete after Reset. A failed fetch leaves the materialized
state untouched and is reported through LastError.
*/
package window

import (
	"context"
	"log/slog"

	"github.com/thinh77/trinhminhson-sub000/internal/core/photo"
	"github.com/thinh77/trinhminhson-sub000/internal/platform/apperr"
)

// Fetcher is the photo collaborator the strategies page through.
type Fetcher interface {
	FetchPhotos(ctx context.Context, limit, offset int) ([]photo.Photo, error)
	FetchAll(ctx context.Context) ([]photo.Photo, error)
}

// Counter is implemented by fetchers that can count without loading.
// Without it, Pager.Refresh counts with FetchAll.
type Counter interface {
	CountPhotos(ctx context.Context) (int, error)
}

func countPhotos(ctx context.Context, fetcher Fetcher) (int, error) {
	if counter, ok := fetcher.(Counter); ok {
		return counter.CountPhotos(ctx)
	}
	photos, err := fetcher.FetchAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(photos), nil
}

// loadFailed maps a fetch error to the generic load-failed signal. An open
// breaker keeps its SERVICE_UNAVAILABLE code.
func loadFailed(err error) *apperr.AppError {
	if appErr := apperr.As(err); appErr != nil && appErr.Code == apperr.CodeServiceUnavailable {
		return appErr
	}
	return apperr.LoadFailed("photos", err)
}

// # Options

type options struct {
	logger  *slog.Logger
	metrics *Metrics
	size    int
}

// Option configures a Pager or Feed.
type Option func(*options)

// WithLogger sets the logger. The default is slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics records fetch outcomes and latencies.
func WithMetrics(metrics *Metrics) Option {
	return func(o *options) { o.metrics = metrics }
}

// WithSize overrides the page size of a Pager or the chunk size of a Feed.
// Non-positive values are ignored.
func WithSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.size = size
		}
	}
}

func buildOptions(defaultSize int, opts []Option) options {
	o := options{logger: slog.Default(), size: defaultSize}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
