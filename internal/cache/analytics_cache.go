package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/supplysight/backend/internal/config"
	"github.com/supplysight/backend/internal/domain"
)

const (
	analyticsKeyPrefix     = "analytics:"
	carrierPerformanceKey  = analyticsKeyPrefix + "carriers"
	topProductsKeyFormat   = analyticsKeyPrefix + "top_products:%d:%d"
	analyticsScanBatchSize = 100
)

// AnalyticsCache is a read-through cache for the analytics aggregates. The
// noop implementation is used when caching is disabled, so services never
// branch on configuration.
type AnalyticsCache interface {
	GetCarrierPerformance(ctx context.Context) ([]domain.CarrierPerformance, bool, error)
	SetCarrierPerformance(ctx context.Context, results []domain.CarrierPerformance) error
	GetTopProducts(ctx context.Context, lookbackDays, limit int) ([]domain.TopProduct, bool, error)
	SetTopProducts(ctx context.Context, lookbackDays, limit int, products []domain.TopProduct) error
	InvalidateAll(ctx context.Context) error
}

type redisAnalyticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopAnalyticsCache struct{}

func NewAnalyticsCache(cfg config.CacheConfig) (AnalyticsCache, error) {
	if !cfg.Enabled {
		return &noopAnalyticsCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisAnalyticsCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func NewNoopAnalyticsCache() AnalyticsCache {
	return &noopAnalyticsCache{}
}

func (c *redisAnalyticsCache) GetCarrierPerformance(ctx context.Context) ([]domain.CarrierPerformance, bool, error) {
	var results []domain.CarrierPerformance
	ok, err := c.get(ctx, carrierPerformanceKey, &results)
	return results, ok, err
}

func (c *redisAnalyticsCache) SetCarrierPerformance(ctx context.Context, results []domain.CarrierPerformance) error {
	return c.set(ctx, carrierPerformanceKey, results)
}

func (c *redisAnalyticsCache) GetTopProducts(ctx context.Context, lookbackDays, limit int) ([]domain.TopProduct, bool, error) {
	var products []domain.TopProduct
	ok, err := c.get(ctx, fmt.Sprintf(topProductsKeyFormat, lookbackDays, limit), &products)
	return products, ok, err
}

func (c *redisAnalyticsCache) SetTopProducts(ctx context.Context, lookbackDays, limit int, products []domain.TopProduct) error {
	return c.set(ctx, fmt.Sprintf(topProductsKeyFormat, lookbackDays, limit), products)
}

func (c *redisAnalyticsCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, analyticsKeyPrefix, analyticsScanBatchSize)
}

func (c *redisAnalyticsCache) get(ctx context.Context, key string, out interface{}) (bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get failed: %w", err)
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return false, fmt.Errorf("decode analytics cache entry %s: %w", key, err)
	}

	return true, nil
}

func (c *redisAnalyticsCache) set(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode analytics cache entry %s: %w", key, err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (n *noopAnalyticsCache) GetCarrierPerformance(ctx context.Context) ([]domain.CarrierPerformance, bool, error) {
	return nil, false, nil
}

func (n *noopAnalyticsCache) SetCarrierPerformance(ctx context.Context, results []domain.CarrierPerformance) error {
	return nil
}

func (n *noopAnalyticsCache) GetTopProducts(ctx context.Context, lookbackDays, limit int) ([]domain.TopProduct, bool, error) {
	return nil, false, nil
}

func (n *noopAnalyticsCache) SetTopProducts(ctx context.Context, lookbackDays, limit int, products []domain.TopProduct) error {
	return nil
}

func (n *noopAnalyticsCache) InvalidateAll(ctx context.Context) error {
	return nil
}
