package analytics

import (
	"sort"

	"github.com/supplysight/backend/internal/domain"
)

const (
	// DemandWindowDays is the trailing window used for the daily demand
	// rate in shortage classification.
	DemandWindowDays = 30

	// defaultDemandRate is the floor applied to pairs with no sales
	// history, so days-of-stock stays finite.
	defaultDemandRate = 0.1

	criticalDaysThreshold = 7
	lowDaysThreshold      = 14

	// maxDaysOfStock caps the unreachable zero-rate branch. The demand
	// floor keeps the rate positive, so this never fires in practice.
	maxDaysOfStock = 999
)

// ClassifyShortages assigns exactly one stock status to every inventory
// row. demand carries units sold per pair over the trailing 30 days;
// pairs absent from it fall back to the 0.1/day floor. Results are ordered
// by warehouse, then status severity, then demand rate descending (product
// id as the final tie-break).
func ClassifyShortages(inventory []domain.InventoryLevel, demand []domain.DemandRow) []domain.Shortage {
	sold := make(map[domain.PairKey]int, len(demand))
	for _, row := range demand {
		sold[domain.PairKey{ProductID: row.ProductID, WarehouseID: row.WarehouseID}] = row.TotalSold
	}

	shortages := make([]domain.Shortage, 0, len(inventory))
	for _, level := range inventory {
		key := domain.PairKey{ProductID: level.ProductID, WarehouseID: level.WarehouseID}
		available := level.Available()

		demand30 := sold[key]
		rate := defaultDemandRate
		if demand30 > 0 {
			rate = float64(demand30) / float64(DemandWindowDays)
		}

		var days float64
		switch {
		case available == 0:
			days = 0
		case rate > 0:
			days = float64(available) / rate
		default:
			days = maxDaysOfStock
		}

		shortages = append(shortages, domain.Shortage{
			WarehouseID:     level.WarehouseID,
			ProductID:       level.ProductID,
			AvailableStock:  available,
			DailyDemandRate: round3(rate),
			DemandLast30:    demand30,
			DaysOfStock:     round1(days),
			Status:          classify(available, days),
		})
	}

	sort.Slice(shortages, func(i, j int) bool {
		a, b := shortages[i], shortages[j]
		if a.WarehouseID != b.WarehouseID {
			return a.WarehouseID < b.WarehouseID
		}
		if a.Status.Priority() != b.Status.Priority() {
			return a.Status.Priority() < b.Status.Priority()
		}
		if a.DailyDemandRate != b.DailyDemandRate {
			return a.DailyDemandRate > b.DailyDemandRate
		}
		return a.ProductID < b.ProductID
	})

	return shortages
}

func classify(available int, days float64) domain.StockStatus {
	switch {
	case available == 0:
		return domain.StockOutOfStock
	case days < criticalDaysThreshold:
		return domain.StockCritical
	case days < lowDaysThreshold:
		return domain.StockLow
	default:
		return domain.StockAdequate
	}
}
