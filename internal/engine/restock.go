// Package engine computes per-(product, warehouse) restocking
// recommendations from sales velocity, shipment lead time and current
// inventory. All computation is pure and in-memory; inputs are never
// mutated.
package engine

import (
	"math"
	"sort"

	"github.com/supplysight/backend/internal/domain"
)

// RestockCalculator applies a restocking policy to extracted metrics.
type RestockCalculator struct {
	params Params
}

// NewRestockCalculator creates a calculator with normalized parameters.
func NewRestockCalculator(params Params) *RestockCalculator {
	return &RestockCalculator{params: params.Normalize()}
}

// Params returns the normalized policy in effect.
func (rc *RestockCalculator) Params() Params {
	return rc.params
}

// Recommend evaluates every pair present in inventory and returns the
// triggered recommendations sorted by urgency score descending. Ties are
// broken by product id, then warehouse id, so the ordering is stable for
// identical inputs.
func (rc *RestockCalculator) Recommend(inventory InventoryMap, velocity VelocityMap, shipmentTimes ShipmentTimeMap) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0)

	for key, level := range inventory {
		if rec, ok := rc.evaluate(key, level, velocity, shipmentTimes); ok {
			recs = append(recs, rec)
		}
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].UrgencyScore != recs[j].UrgencyScore {
			return recs[i].UrgencyScore > recs[j].UrgencyScore
		}
		if recs[i].ProductID != recs[j].ProductID {
			return recs[i].ProductID < recs[j].ProductID
		}
		return recs[i].WarehouseID < recs[j].WarehouseID
	})

	return recs
}

// evaluate runs the reorder decision for a single pair. The returned bool
// is false when the pair does not need restocking.
func (rc *RestockCalculator) evaluate(key domain.PairKey, level domain.InventoryLevel, velocity VelocityMap, shipmentTimes ShipmentTimeMap) (domain.Recommendation, bool) {
	available := float64(level.Available())

	// 1. Sales velocity, falling back to the configured floor when the
	//    pair has no sales history in the lookback window.
	v, ok := velocity[key]
	if !ok {
		v = rc.params.DefaultVelocity
	}

	// 2. Average shipment time for the warehouse, default when no
	//    delivered shipments exist.
	shipTime, ok := shipmentTimes[key.WarehouseID]
	if !ok {
		shipTime = rc.params.DefaultShipmentTime
	}

	// 3. Safety stock covers demand during lead-time uncertainty.
	safetyStock := v * float64(rc.params.SafetyStockDays)

	// 4. Reorder point: stock level at which a restock must be placed to
	//    cover demand through the next shipment plus the threshold buffer.
	reorderPoint := v * (shipTime + float64(rc.params.RestockThresholdDays))

	// 5. Trigger condition.
	if available > reorderPoint {
		return domain.Recommendation{}, false
	}

	// 6. Target stock after replenishment, floored at one unit.
	targetStock := safetyStock + v*float64(rc.params.ReplenishmentDays)
	recommended := int(math.Round(targetStock - available))
	if recommended < 1 {
		recommended = 1
	}

	// 7. Urgency: percentage shortfall below the reorder point. A zero
	//    reorder point happens only with an explicit zero velocity; such
	//    a pair is fully urgent when it has nothing left and is skipped
	//    otherwise.
	var urgency float64
	switch {
	case reorderPoint > 0:
		urgency = round1((reorderPoint - available) / reorderPoint * 100)
	case available <= 0:
		urgency = 100
	default:
		return domain.Recommendation{}, false
	}

	return domain.Recommendation{
		ProductID:           key.ProductID,
		WarehouseID:         key.WarehouseID,
		RecommendedQuantity: recommended,
		AvailableStock:      level.Available(),
		SalesVelocity:       round2(v),
		AvgShipmentTime:     round1(shipTime),
		ReorderPoint:        round1(reorderPoint),
		SafetyStock:         round1(safetyStock),
		TargetStock:         round1(targetStock),
		UrgencyScore:        urgency,
	}, true
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
