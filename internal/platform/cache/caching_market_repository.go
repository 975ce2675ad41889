// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"stocker_backend/internal/feature/instruments/domain/entity"
	"stocker_backend/internal/feature/instruments/usecase"
)

// CachingMarketRepository decorates a MarketRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying provider adapter. Caching sits below the domain:
// every recompute above still derives its statistics from the full series
// returned here.
type CachingMarketRepository struct {
	inner     usecase.MarketRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingMarketRepository decorates a MarketRepository with Redis caching.
// If ttl is 0, it defaults to 15 minutes. If namespace is empty, it uses "market".
func NewCachingMarketRepository(rdb *redis.Client, ttl time.Duration, inner usecase.MarketRepository, namespace string) *CachingMarketRepository {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	if namespace == "" {
		namespace = "market"
	}
	return &CachingMarketRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// GetMetadata retrieves instrument metadata, checking cache first then
// falling back to the provider.
func (c *CachingMarketRepository) GetMetadata(ctx context.Context, ticker string) (entity.InstrumentMeta, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.GetMetadata(ctx, ticker)
	}

	key := c.metaKey(ticker)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.InstrumentMeta
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the provider
	out, err := c.inner.GetMetadata(ctx, ticker)
	if err != nil {
		return entity.InstrumentMeta{}, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// GetSeries retrieves a price series, checking cache first then falling
// back to the provider.
func (c *CachingMarketRepository) GetSeries(ctx context.Context, ticker, start, end string) ([]entity.Bar, error) {
	if c.rdb == nil {
		return c.inner.GetSeries(ctx, ticker, start, end)
	}

	key := c.seriesKey(ticker, start, end)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Bar
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.GetSeries(ctx, ticker, start, end)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// seriesKey generates a cache key for a series query.
func (c *CachingMarketRepository) seriesKey(ticker, start, end string) string {
	return fmt.Sprintf("%s:series:%s:%s:%s", c.namespace, safe(ticker), start, end)
}

// metaKey generates a cache key for a metadata query.
func (c *CachingMarketRepository) metaKey(ticker string) string {
	return fmt.Sprintf("%s:meta:%s", c.namespace, safe(ticker))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
