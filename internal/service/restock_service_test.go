package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supplysight/backend/internal/domain"
	"github.com/supplysight/backend/internal/engine"
)

// fakeMetricsRepository serves canned rows and records the cutoff passed to
// the windowed queries.
type fakeMetricsRepository struct {
	demand     []domain.DemandRow
	times      []domain.ShipmentTimeRow
	inventory  []domain.InventoryLevel
	shipments  []domain.DeliveredShipment
	orderLines []domain.OrderLine

	err         error
	demandSince time.Time
	linesSince  time.Time
}

func (f *fakeMetricsRepository) DemandByPair(ctx context.Context, since time.Time) ([]domain.DemandRow, error) {
	f.demandSince = since
	return f.demand, f.err
}

func (f *fakeMetricsRepository) AvgShipmentTimes(ctx context.Context) ([]domain.ShipmentTimeRow, error) {
	return f.times, f.err
}

func (f *fakeMetricsRepository) CurrentInventory(ctx context.Context) ([]domain.InventoryLevel, error) {
	return f.inventory, f.err
}

func (f *fakeMetricsRepository) DeliveredShipments(ctx context.Context) ([]domain.DeliveredShipment, error) {
	return f.shipments, f.err
}

func (f *fakeMetricsRepository) SoldOrderLines(ctx context.Context, since time.Time) ([]domain.OrderLine, error) {
	f.linesSince = since
	return f.orderLines, f.err
}

func TestRecommendationsEndToEnd(t *testing.T) {
	repo := &fakeMetricsRepository{
		demand: []domain.DemandRow{
			{ProductID: "P001", WarehouseID: "W001", TotalSold: 60},
		},
		times: []domain.ShipmentTimeRow{
			{WarehouseID: "W001", AvgDays: 3.0},
		},
		inventory: []domain.InventoryLevel{
			{ProductID: "P001", WarehouseID: "W001", StockQuantity: 5},
		},
	}

	svc := NewRestockService(repo, engine.DefaultParams())
	recs, err := svc.Recommendations(context.Background(), engine.Params{})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 83, recs[0].RecommendedQuantity)
	assert.Equal(t, 75.0, recs[0].UrgencyScore)
}

func TestRecommendationsUsesLookbackWindow(t *testing.T) {
	repo := &fakeMetricsRepository{}
	svc := NewRestockService(repo, engine.DefaultParams())

	fixed := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	_, err := svc.Recommendations(context.Background(), engine.Params{VelocityLookbackDays: 60})
	require.NoError(t, err)
	assert.Equal(t, fixed.AddDate(0, 0, -60), repo.demandSince)
}

func TestRecommendationsEmptyDatasetIsValid(t *testing.T) {
	svc := NewRestockService(&fakeMetricsRepository{}, engine.DefaultParams())

	recs, err := svc.Recommendations(context.Background(), engine.Params{})
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRecommendationsPropagatesQueryError(t *testing.T) {
	svc := NewRestockService(&fakeMetricsRepository{err: assert.AnError}, engine.DefaultParams())

	_, err := svc.Recommendations(context.Background(), engine.Params{})
	assert.Error(t, err)
}

func TestReportIncludesWarehouseSummary(t *testing.T) {
	repo := &fakeMetricsRepository{
		demand: []domain.DemandRow{
			{ProductID: "P001", WarehouseID: "W001", TotalSold: 60},
			{ProductID: "P002", WarehouseID: "W001", TotalSold: 60},
		},
		times: []domain.ShipmentTimeRow{
			{WarehouseID: "W001", AvgDays: 3.0},
		},
		inventory: []domain.InventoryLevel{
			{ProductID: "P001", WarehouseID: "W001", StockQuantity: 5},
			{ProductID: "P002", WarehouseID: "W001", StockQuantity: 10},
		},
	}

	svc := NewRestockService(repo, engine.DefaultParams())
	r, err := svc.Report(context.Background(), engine.Params{})
	require.NoError(t, err)
	require.Len(t, r.Recommendations, 2)
	require.Len(t, r.WarehouseSummary, 1)
	assert.Equal(t, "W001", r.WarehouseSummary[0].WarehouseID)
	assert.Equal(t, 2, r.WarehouseSummary[0].Products)
	assert.False(t, r.GeneratedAt.IsZero())
}

func TestMergeKeepsDefaultsForZeroOverrides(t *testing.T) {
	svc := NewRestockService(&fakeMetricsRepository{}, engine.DefaultParams())

	merged := svc.merge(engine.Params{SafetyStockDays: 21})
	assert.Equal(t, 21, merged.SafetyStockDays)
	assert.Equal(t, engine.DefaultRestockThresholdDays, merged.RestockThresholdDays)
	assert.Equal(t, engine.DefaultVelocityLookbackDays, merged.VelocityLookbackDays)
}
