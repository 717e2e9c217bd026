package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/supplysight/backend/internal/analytics"
	"github.com/supplysight/backend/internal/cache"
	"github.com/supplysight/backend/internal/domain"
	"github.com/supplysight/backend/internal/repository"
)

// DefaultTopProductsLookbackDays is the trailing quarter used for the
// best-sellers ranking.
const DefaultTopProductsLookbackDays = 90

// AnalyticsService serves the supply-chain aggregates, read-through
// cached where a cache is configured.
type AnalyticsService struct {
	repo  repository.MetricsRepository
	cache cache.AnalyticsCache
	now   func() time.Time
}

func NewAnalyticsService(repo repository.MetricsRepository, cacheImpl cache.AnalyticsCache) *AnalyticsService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopAnalyticsCache()
	}
	return &AnalyticsService{
		repo:  repo,
		cache: cacheImpl,
		now:   time.Now,
	}
}

// CarrierPerformance aggregates delivered shipments per
// (carrier, service level).
func (s *AnalyticsService) CarrierPerformance(ctx context.Context) ([]domain.CarrierPerformance, error) {
	if results, ok, err := s.cache.GetCarrierPerformance(ctx); err == nil && ok {
		return results, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("analytics: cache get carrier performance failed")
	}

	shipments, err := s.repo.DeliveredShipments(ctx)
	if err != nil {
		return nil, err
	}

	results := analytics.CarrierPerformance(shipments)

	if err := s.cache.SetCarrierPerformance(ctx, results); err != nil {
		log.Warn().Err(err).Msg("analytics: cache set carrier performance failed")
	}

	return results, nil
}

// TopProducts ranks best sellers over the lookback window. Fewer than
// limit products is a valid outcome.
func (s *AnalyticsService) TopProducts(ctx context.Context, lookbackDays, limit int) ([]domain.TopProduct, error) {
	if lookbackDays <= 0 {
		lookbackDays = DefaultTopProductsLookbackDays
	}
	if limit <= 0 {
		limit = analytics.DefaultTopProductsLimit
	}

	if products, ok, err := s.cache.GetTopProducts(ctx, lookbackDays, limit); err == nil && ok {
		return products, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("analytics: cache get top products failed")
	}

	since := s.now().AddDate(0, 0, -lookbackDays)
	lines, err := s.repo.SoldOrderLines(ctx, since)
	if err != nil {
		return nil, err
	}

	products := analytics.TopSellingProducts(lines, limit)

	if err := s.cache.SetTopProducts(ctx, lookbackDays, limit, products); err != nil {
		log.Warn().Err(err).Msg("analytics: cache set top products failed")
	}

	return products, nil
}

// Shortages classifies every inventory pair against its trailing demand.
func (s *AnalyticsService) Shortages(ctx context.Context) ([]domain.Shortage, error) {
	inventory, err := s.repo.CurrentInventory(ctx)
	if err != nil {
		return nil, err
	}

	since := s.now().AddDate(0, 0, -analytics.DemandWindowDays)
	demand, err := s.repo.DemandByPair(ctx, since)
	if err != nil {
		return nil, err
	}

	return analytics.ClassifyShortages(inventory, demand), nil
}

// InvalidateCache drops every cached analytics aggregate; the next read
// recomputes from the database.
func (s *AnalyticsService) InvalidateCache(ctx context.Context) error {
	return s.cache.InvalidateAll(ctx)
}

// Insights runs all three aggregations and derives the headline figures
// for the insights report.
func (s *AnalyticsService) Insights(ctx context.Context) (*domain.SupplyChainInsights, error) {
	carriers, err := s.CarrierPerformance(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.TopProducts(ctx, DefaultTopProductsLookbackDays, analytics.DefaultTopProductsLimit)
	if err != nil {
		return nil, err
	}

	shortages, err := s.Shortages(ctx)
	if err != nil {
		return nil, err
	}

	insights := analytics.BuildInsights(carriers, products, shortages, s.now())
	return &insights, nil
}
