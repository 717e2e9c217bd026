package engine

import (
	"sort"

	"github.com/supplysight/backend/internal/domain"
)

// SummarizeByWarehouse totals recommendations per warehouse, ordered by
// warehouse id.
func SummarizeByWarehouse(recs []domain.Recommendation) []domain.WarehouseRestockSummary {
	totals := make(map[string]*domain.WarehouseRestockSummary)
	for _, rec := range recs {
		s, ok := totals[rec.WarehouseID]
		if !ok {
			s = &domain.WarehouseRestockSummary{WarehouseID: rec.WarehouseID}
			totals[rec.WarehouseID] = s
		}
		s.Products++
		s.TotalUnits += rec.RecommendedQuantity
	}

	summary := make([]domain.WarehouseRestockSummary, 0, len(totals))
	for _, s := range totals {
		summary = append(summary, *s)
	}
	sort.Slice(summary, func(i, j int) bool {
		return summary[i].WarehouseID < summary[j].WarehouseID
	})

	return summary
}
