// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

package window

import (
	"context"
	"errors"
	"log/slog"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/thinh77/trinhminhson-sub000/internal/core/photo"
	"github.com/thinh77/trinhminhson-sub000/internal/platform/apperr"
	"github.com/thinh77/trinhminhson-sub000/internal/platform/config"
)

// BreakerFetcher fails fast while the wrapped photo store keeps failing.
//
// One breaker covers every operation, since they all hit the same store.
// Open-state rejections surface as SERVICE_UNAVAILABLE.
type BreakerFetcher struct {
	inner   Fetcher
	breaker *gobreaker.CircuitBreaker[any]
}

// NewBreakerFetcher wraps inner. The breaker opens once MinRequests calls in
// the current interval have failed at FailureThreshold or more.
func NewBreakerFetcher(inner Fetcher, cfg config.BreakerConfig, logger *slog.Logger) *BreakerFetcher {
	settings := gobreaker.Settings{
		Name:        "photo-store",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("fetch_breaker_state_changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
		// A caller giving up says nothing about the store's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}

	return &BreakerFetcher{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker[any](settings),
	}
}

func (b *BreakerFetcher) FetchPhotos(ctx context.Context, limit, offset int) ([]photo.Photo, error) {
	return execute(b, func() ([]photo.Photo, error) {
		return b.inner.FetchPhotos(ctx, limit, offset)
	})
}

func (b *BreakerFetcher) FetchAll(ctx context.Context) ([]photo.Photo, error) {
	return execute(b, func() ([]photo.Photo, error) {
		return b.inner.FetchAll(ctx)
	})
}

// CountPhotos implements [Counter], delegating to the inner fetcher's count
// when it has one.
func (b *BreakerFetcher) CountPhotos(ctx context.Context) (int, error) {
	return execute(b, func() (int, error) {
		return countPhotos(ctx, b.inner)
	})
}

// State reports the breaker state, for readiness checks.
func (b *BreakerFetcher) State() gobreaker.State {
	return b.breaker.State()
}

func execute[T any](b *BreakerFetcher, fn func() (T, error)) (T, error) {
	result, err := b.breaker.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		var zero T
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, apperr.ServiceUnavailable("Photo store is temporarily unavailable", err)
		}
		return zero, err
	}
	return result.(T), nil
}
