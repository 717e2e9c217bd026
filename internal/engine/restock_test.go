package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supplysight/backend/internal/domain"
)

func pair(product, warehouse string) domain.PairKey {
	return domain.PairKey{ProductID: product, WarehouseID: warehouse}
}

func TestRecommendTriggersBelowReorderPoint(t *testing.T) {
	calc := NewRestockCalculator(DefaultParams())

	inventory := InventoryMap{
		pair("P001", "W001"): {ProductID: "P001", WarehouseID: "W001", StockQuantity: 5},
	}
	velocity := VelocityMap{pair("P001", "W001"): 2.0}
	shipmentTimes := ShipmentTimeMap{"W001": 3.0}

	recs := calc.Recommend(inventory, velocity, shipmentTimes)
	require.Len(t, recs, 1)

	rec := recs[0]
	assert.Equal(t, "P001", rec.ProductID)
	assert.Equal(t, "W001", rec.WarehouseID)
	assert.Equal(t, 5, rec.AvailableStock)
	assert.Equal(t, 2.0, rec.SalesVelocity)
	assert.Equal(t, 3.0, rec.AvgShipmentTime)
	// reorder point = 2 * (3 + 7), safety stock = 2 * 14,
	// target = 28 + 2*30, quantity = round(88 - 5)
	assert.Equal(t, 20.0, rec.ReorderPoint)
	assert.Equal(t, 28.0, rec.SafetyStock)
	assert.Equal(t, 88.0, rec.TargetStock)
	assert.Equal(t, 83, rec.RecommendedQuantity)
	// urgency = (20 - 5) / 20 * 100
	assert.Equal(t, 75.0, rec.UrgencyScore)
}

func TestRecommendSkipsWellStockedPair(t *testing.T) {
	calc := NewRestockCalculator(DefaultParams())

	inventory := InventoryMap{
		pair("P001", "W001"): {ProductID: "P001", WarehouseID: "W001", StockQuantity: 200},
	}
	velocity := VelocityMap{pair("P001", "W001"): 2.0}
	shipmentTimes := ShipmentTimeMap{"W001": 3.0}

	recs := calc.Recommend(inventory, velocity, shipmentTimes)
	assert.Empty(t, recs)
}

func TestRecommendDefaultVelocityRarelyTriggers(t *testing.T) {
	calc := NewRestockCalculator(DefaultParams())

	// No sales history: velocity falls back to 0.1/day, reorder point
	// 0.1 * (5 + 7) = 1.2, so even a couple units on hand is enough.
	inventory := InventoryMap{
		pair("P002", "W001"): {ProductID: "P002", WarehouseID: "W001", StockQuantity: 2},
	}

	recs := calc.Recommend(inventory, VelocityMap{}, ShipmentTimeMap{})
	assert.Empty(t, recs)
}

func TestRecommendDefaultsApplyWhenHistoryMissing(t *testing.T) {
	calc := NewRestockCalculator(DefaultParams())

	inventory := InventoryMap{
		pair("P002", "W001"): {ProductID: "P002", WarehouseID: "W001", StockQuantity: 1},
	}

	recs := calc.Recommend(inventory, VelocityMap{}, ShipmentTimeMap{})
	require.Len(t, recs, 1)

	rec := recs[0]
	assert.Equal(t, 0.1, rec.SalesVelocity)
	assert.Equal(t, 5.0, rec.AvgShipmentTime)
	assert.Equal(t, 1.2, rec.ReorderPoint)
	// target = 0.1*14 + 0.1*30 = 4.4, round(4.4 - 1) = 3
	assert.Equal(t, 3, rec.RecommendedQuantity)
	// urgency = (1.2 - 1) / 1.2 * 100 = 16.67 rounded to 1 decimal
	assert.Equal(t, 16.7, rec.UrgencyScore)
}

func TestRecommendQuantityFloorsAtOne(t *testing.T) {
	// A wide threshold with short replenishment puts the target below the
	// stock on hand; the quantity still floors at one unit.
	calc := NewRestockCalculator(Params{
		SafetyStockDays:      1,
		RestockThresholdDays: 20,
		ReplenishmentDays:    1,
	})

	inventory := InventoryMap{
		pair("P003", "W001"): {ProductID: "P003", WarehouseID: "W001", StockQuantity: 45},
	}
	velocity := VelocityMap{pair("P003", "W001"): 2.0}
	shipmentTimes := ShipmentTimeMap{"W001": 3.0}

	recs := calc.Recommend(inventory, velocity, shipmentTimes)
	require.Len(t, recs, 1)
	assert.Equal(t, 1, recs[0].RecommendedQuantity)
	assert.Equal(t, 46.0, recs[0].ReorderPoint)
	assert.Equal(t, 4.0, recs[0].TargetStock)
}

func TestRecommendNegativeAvailable(t *testing.T) {
	calc := NewRestockCalculator(DefaultParams())

	// Oversold pair: reservations exceed stock. The shortfall below the
	// reorder point pushes urgency past 100%.
	inventory := InventoryMap{
		pair("P003", "W001"): {ProductID: "P003", WarehouseID: "W001", StockQuantity: 0, ReservedQuantity: 50},
	}
	velocity := VelocityMap{pair("P003", "W001"): 0.1}
	shipmentTimes := ShipmentTimeMap{"W001": 2.0}

	recs := calc.Recommend(inventory, velocity, shipmentTimes)
	require.Len(t, recs, 1)
	assert.Equal(t, -50, recs[0].AvailableStock)
	// target = 0.1*14 + 0.1*30 = 4.4, round(4.4 + 50) = 54
	assert.Equal(t, 54, recs[0].RecommendedQuantity)
	assert.Greater(t, recs[0].UrgencyScore, 100.0)
}

func TestRecommendZeroVelocityPair(t *testing.T) {
	calc := NewRestockCalculator(DefaultParams())

	inventory := InventoryMap{
		pair("P004", "W001"): {ProductID: "P004", WarehouseID: "W001", StockQuantity: 0},
		pair("P005", "W001"): {ProductID: "P005", WarehouseID: "W001", StockQuantity: 3},
	}
	velocity := VelocityMap{
		pair("P004", "W001"): 0,
		pair("P005", "W001"): 0,
	}
	shipmentTimes := ShipmentTimeMap{"W001": 4.0}

	recs := calc.Recommend(inventory, velocity, shipmentTimes)
	require.Len(t, recs, 1)
	// Zero velocity with nothing on hand is fully urgent; zero velocity
	// with stock remaining is not a recommendation at all.
	assert.Equal(t, "P004", recs[0].ProductID)
	assert.Equal(t, 100.0, recs[0].UrgencyScore)
	assert.Equal(t, 1, recs[0].RecommendedQuantity)
}

func TestRecommendSortsByUrgencyDescending(t *testing.T) {
	calc := NewRestockCalculator(DefaultParams())

	inventory := InventoryMap{
		pair("P001", "W001"): {ProductID: "P001", WarehouseID: "W001", StockQuantity: 15},
		pair("P002", "W001"): {ProductID: "P002", WarehouseID: "W001", StockQuantity: 5},
		pair("P003", "W002"): {ProductID: "P003", WarehouseID: "W002", StockQuantity: 0},
	}
	velocity := VelocityMap{
		pair("P001", "W001"): 2.0,
		pair("P002", "W001"): 2.0,
		pair("P003", "W002"): 2.0,
	}
	shipmentTimes := ShipmentTimeMap{"W001": 3.0, "W002": 3.0}

	recs := calc.Recommend(inventory, velocity, shipmentTimes)
	require.Len(t, recs, 3)
	assert.Equal(t, "P003", recs[0].ProductID)
	assert.Equal(t, "P002", recs[1].ProductID)
	assert.Equal(t, "P001", recs[2].ProductID)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].UrgencyScore, recs[i].UrgencyScore)
	}
}

func TestRecommendTieBreaksDeterministic(t *testing.T) {
	calc := NewRestockCalculator(DefaultParams())

	// Identical metrics for all three pairs: equal urgency, order falls
	// back to product id then warehouse id.
	inventory := InventoryMap{
		pair("P002", "W001"): {ProductID: "P002", WarehouseID: "W001", StockQuantity: 5},
		pair("P001", "W002"): {ProductID: "P001", WarehouseID: "W002", StockQuantity: 5},
		pair("P001", "W001"): {ProductID: "P001", WarehouseID: "W001", StockQuantity: 5},
	}
	velocity := VelocityMap{
		pair("P002", "W001"): 2.0,
		pair("P001", "W002"): 2.0,
		pair("P001", "W001"): 2.0,
	}
	shipmentTimes := ShipmentTimeMap{"W001": 3.0, "W002": 3.0}

	recs := calc.Recommend(inventory, velocity, shipmentTimes)
	require.Len(t, recs, 3)
	assert.Equal(t, pair("P001", "W001"), pair(recs[0].ProductID, recs[0].WarehouseID))
	assert.Equal(t, pair("P001", "W002"), pair(recs[1].ProductID, recs[1].WarehouseID))
	assert.Equal(t, pair("P002", "W001"), pair(recs[2].ProductID, recs[2].WarehouseID))
}

func TestRecommendEmptyInventory(t *testing.T) {
	calc := NewRestockCalculator(DefaultParams())
	recs := calc.Recommend(InventoryMap{}, VelocityMap{}, ShipmentTimeMap{})
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestParamsNormalizeFillsZeroFields(t *testing.T) {
	p := Params{SafetyStockDays: 21}.Normalize()

	assert.Equal(t, 21, p.SafetyStockDays)
	assert.Equal(t, DefaultRestockThresholdDays, p.RestockThresholdDays)
	assert.Equal(t, DefaultReplenishmentDays, p.ReplenishmentDays)
	assert.Equal(t, DefaultVelocityLookbackDays, p.VelocityLookbackDays)
	assert.Equal(t, DefaultVelocity, p.DefaultVelocity)
	assert.Equal(t, DefaultShipmentTimeDays, p.DefaultShipmentTime)
}
