package persistence

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/pizza-store/internal/domain"
)

// CatalogCache stores catalog query results in Redis under TTL. Any
// Redis failure degrades to a cache miss; it never surfaces to the
// caller.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCatalogCache wraps a Redis handle. Returns nil when no client is
// available so a disabled cache stays a nil interface upstream.
func NewCatalogCache(r *Redis, ttl time.Duration, logger *zap.Logger) *CatalogCache {
	if r == nil || r.Client == nil {
		return nil
	}
	return &CatalogCache{client: r.Client, ttl: ttl, logger: logger}
}

// Get fetches a cached result set. ok is false on miss or any error.
func (c *CatalogCache) Get(ctx context.Context, key string) ([]domain.Item, bool) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("catalog cache get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var items []domain.Item
	if err := json.Unmarshal(payload, &items); err != nil {
		c.logger.Debug("catalog cache payload invalid", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return items, true
}

// Set stores a result set under the filter key.
func (c *CatalogCache) Set(ctx context.Context, key string, items []domain.Item) {
	payload, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Debug("catalog cache set failed", zap.String("key", key), zap.Error(err))
	}
}
