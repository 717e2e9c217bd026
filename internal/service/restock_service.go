package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/supplysight/backend/internal/domain"
	"github.com/supplysight/backend/internal/engine"
	"github.com/supplysight/backend/internal/repository"
)

// RestockService runs the restocking pipeline: three read queries, metric
// extraction, then the pure recommendation pass. Any query failure aborts
// the run; there are no retries.
type RestockService struct {
	repo   repository.MetricsRepository
	params engine.Params
	now    func() time.Time
}

func NewRestockService(repo repository.MetricsRepository, params engine.Params) *RestockService {
	return &RestockService{
		repo:   repo,
		params: params.Normalize(),
		now:    time.Now,
	}
}

// Recommendations computes the ranked restock list using the supplied
// parameters; zero-valued fields fall back to the service defaults.
func (s *RestockService) Recommendations(ctx context.Context, overrides engine.Params) ([]domain.Recommendation, error) {
	params := s.merge(overrides)
	now := s.now()
	since := now.AddDate(0, 0, -params.VelocityLookbackDays)

	demand, err := s.repo.DemandByPair(ctx, since)
	if err != nil {
		return nil, err
	}

	shipmentTimes, err := s.repo.AvgShipmentTimes(ctx)
	if err != nil {
		return nil, err
	}

	inventory, err := s.repo.CurrentInventory(ctx)
	if err != nil {
		return nil, err
	}

	calc := engine.NewRestockCalculator(params)
	recs := calc.Recommend(
		engine.BuildInventoryMap(inventory),
		engine.BuildVelocityMap(demand, params.VelocityLookbackDays),
		engine.BuildShipmentTimeMap(shipmentTimes),
	)

	log.Info().
		Int("inventory_pairs", len(inventory)).
		Int("recommendations", len(recs)).
		Msg("restock: recommendations computed")

	return recs, nil
}

// Report wraps the recommendations with a timestamp and per-warehouse
// totals.
func (s *RestockService) Report(ctx context.Context, overrides engine.Params) (*domain.RestockReport, error) {
	recs, err := s.Recommendations(ctx, overrides)
	if err != nil {
		return nil, err
	}

	return &domain.RestockReport{
		GeneratedAt:      s.now(),
		Recommendations:  recs,
		WarehouseSummary: engine.SummarizeByWarehouse(recs),
	}, nil
}

// merge overlays non-zero override fields on the configured defaults.
func (s *RestockService) merge(overrides engine.Params) engine.Params {
	merged := s.params
	if overrides.SafetyStockDays > 0 {
		merged.SafetyStockDays = overrides.SafetyStockDays
	}
	if overrides.RestockThresholdDays > 0 {
		merged.RestockThresholdDays = overrides.RestockThresholdDays
	}
	if overrides.ReplenishmentDays > 0 {
		merged.ReplenishmentDays = overrides.ReplenishmentDays
	}
	if overrides.VelocityLookbackDays > 0 {
		merged.VelocityLookbackDays = overrides.VelocityLookbackDays
	}
	if overrides.DefaultVelocity > 0 {
		merged.DefaultVelocity = overrides.DefaultVelocity
	}
	if overrides.DefaultShipmentTime > 0 {
		merged.DefaultShipmentTime = overrides.DefaultShipmentTime
	}
	return merged
}
