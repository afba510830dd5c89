// Copyright (c) 2026 trinhminhson. All rights reserved.
// Author: thinh77

package taxonomy

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/thinh77/trinhminhson-sub000/internal/platform/constants"
)

// cacheKey holds the whole catalog; it is small and always read in full.
const cacheKey = constants.RedisPrefixCatalog + "categories"

// CacheClient is the subset of [redis.UniversalClient] the cache needs.
type CacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// CachedRepository fronts a [Repository] with a Redis read-through cache.
//
// Redis is an accelerator only: any cache error falls back to the inner
// repository. Concurrent misses share a single upstream load.
type CachedRepository struct {
	inner  Repository
	client CacheClient
	ttl    time.Duration
	logger *slog.Logger
	group  singleflight.Group
}

func NewCachedRepository(inner Repository, client CacheClient, ttl time.Duration, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

/*
ListCategories returns the catalog from Redis when present, otherwise from
the inner repository, storing the result for the configured TTL.

Parameters:
  - context: context.Context

Returns:
  - []Category: The catalog in display order
  - error: Errors from the inner repository only
*/
func (repository *CachedRepository) ListCategories(context context.Context) ([]Category, error) {
	raw, err := repository.client.Get(context, cacheKey).Bytes()
	switch {
	case err == nil:
		var categories []Category
		decodeErr := json.Unmarshal(raw, &categories)
		if decodeErr == nil {
			return categories, nil
		}
		repository.logger.Warn("catalog_cache_decode_failed", slog.Any("error", decodeErr))
	case errors.Is(err, redis.Nil):
		// miss
	default:
		repository.logger.Warn("catalog_cache_get_failed", slog.Any("error", err))
	}

	// Every caller waiting on the key shares this load; it outlives the
	// request that started it.
	shared := detach(context)
	result, err, _ := repository.group.Do(cacheKey, func() (any, error) {
		categories, err := repository.inner.ListCategories(shared)
		if err != nil {
			return nil, err
		}
		repository.store(shared, categories)
		return categories, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]Category), nil
}

// Invalidate drops the cached catalog so the next read hits the database.
func (repository *CachedRepository) Invalidate(context context.Context) error {
	return repository.client.Del(context, cacheKey).Err()
}

func detach(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}

func (repository *CachedRepository) store(context context.Context, categories []Category) {
	payload, err := json.Marshal(categories)
	if err != nil {
		repository.logger.Warn("catalog_cache_encode_failed", slog.Any("error", err))
		return
	}

	if err := repository.client.Set(context, cacheKey, payload, repository.ttl).Err(); err != nil {
		repository.logger.Warn("catalog_cache_set_failed", slog.Any("error", err))
	}
}
