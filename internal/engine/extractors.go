package engine

import (
	"github.com/supplysight/backend/internal/domain"
)

// VelocityMap maps a pair to its sales velocity in units per day.
// Pairs with no qualifying orders in the window are absent; the engine
// substitutes Params.DefaultVelocity for them.
type VelocityMap map[domain.PairKey]float64

// ShipmentTimeMap maps a warehouse to its average delivered transit time in
// days. Warehouses with no delivered shipments are absent.
type ShipmentTimeMap map[string]float64

// InventoryMap maps a pair to its current inventory level.
type InventoryMap map[domain.PairKey]domain.InventoryLevel

// BuildVelocityMap turns grouped demand rows into per-day sales velocity
// over the given window. Rows with zero demand contribute a zero rate; the
// query never produces them, but they are not special-cased here.
func BuildVelocityMap(rows []domain.DemandRow, windowDays int) VelocityMap {
	if windowDays <= 0 {
		windowDays = DefaultVelocityLookbackDays
	}

	velocity := make(VelocityMap, len(rows))
	for _, row := range rows {
		key := domain.PairKey{ProductID: row.ProductID, WarehouseID: row.WarehouseID}
		velocity[key] = float64(row.TotalSold) / float64(windowDays)
	}
	return velocity
}

// BuildShipmentTimeMap indexes average transit days by warehouse.
func BuildShipmentTimeMap(rows []domain.ShipmentTimeRow) ShipmentTimeMap {
	times := make(ShipmentTimeMap, len(rows))
	for _, row := range rows {
		times[row.WarehouseID] = row.AvgDays
	}
	return times
}

// BuildInventoryMap indexes inventory levels by pair. Every row is kept,
// including zero and negative available stock.
func BuildInventoryMap(rows []domain.InventoryLevel) InventoryMap {
	inventory := make(InventoryMap, len(rows))
	for _, row := range rows {
		key := domain.PairKey{ProductID: row.ProductID, WarehouseID: row.WarehouseID}
		inventory[key] = row
	}
	return inventory
}
