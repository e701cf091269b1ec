// Package cache holds read-through caching for catalog data.
package cache

import (
	"context"
	"log/slog"
	"time"
)

// Catalog keys share this prefix so a catalog change can drop them at once.
const CatalogPrefix = "catalog:"

type Cache interface {
	// Get decodes the value stored under key into dst and reports whether
	// it was found.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// Remember returns the cached value for key, or calls load and caches the
// result. Cache failures are logged and fall through to load.
func Remember[T any](
	ctx context.Context,
	c Cache,
	key string,
	ttl time.Duration,
	load func(ctx context.Context) (T, error),
) (T, error) {

	var v T
	found, err := c.Get(ctx, key, &v)
	if err != nil {
		slog.WarnContext(ctx, "cache read failed", "key", key, "error", err)
	}
	if found {
		return v, nil
	}

	v, err = load(ctx)
	if err != nil {
		return v, err
	}

	if err := c.Set(ctx, key, v, ttl); err != nil {
		slog.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
	return v, nil
}

// InvalidateCatalog drops every catalog entry.
func InvalidateCatalog(ctx context.Context, c Cache) {
	if err := c.DeletePrefix(ctx, CatalogPrefix); err != nil {
		slog.WarnContext(ctx, "catalog cache invalidation failed", "error", err)
	}
}
