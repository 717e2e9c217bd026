package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/supplysight/backend/internal/domain"
)

// BuildInsights derives the headline figures of the supply-chain insights
// report from the three aggregates. Empty inputs yield an insights value
// with zeroed headlines; that is a valid "nothing to report" outcome, not
// an error.
func BuildInsights(carriers []domain.CarrierPerformance, products []domain.TopProduct, shortages []domain.Shortage, now time.Time) domain.SupplyChainInsights {
	insights := domain.SupplyChainInsights{
		GeneratedAt: now,
		Carriers:    carriers,
		TopProducts: products,
		Shortages:   shortages,
		TopRevenue:  decimal.Zero,
	}

	insights.CarrierOveralls = carrierOveralls(carriers)
	if len(insights.CarrierOveralls) > 0 {
		best, worst := insights.CarrierOveralls[0], insights.CarrierOveralls[0]
		var totalDays float64
		for _, c := range insights.CarrierOveralls {
			if c.OnTimePercentage > best.OnTimePercentage {
				best = c
			}
			if c.OnTimePercentage < worst.OnTimePercentage {
				worst = c
			}
		}
		for _, c := range carriers {
			totalDays += c.AvgDeliveryDays
		}
		insights.BestCarrier = best.CarrierID
		insights.BestOnTime = best.OnTimePercentage
		insights.WorstCarrier = worst.CarrierID
		insights.WorstOnTime = worst.OnTimePercentage
		insights.AvgDeliveryDays = round1(totalDays / float64(len(carriers)))
	}

	for _, p := range products {
		insights.TopRevenue = insights.TopRevenue.Add(p.TotalRevenue)
	}
	insights.TopCategory = modeCategory(products)

	for _, s := range shortages {
		if s.Status == domain.StockOutOfStock || s.Status == domain.StockCritical {
			insights.CriticalShortages++
		}
	}

	return insights
}

// carrierOveralls averages each carrier's per-service-level figures,
// ordered by carrier id.
func carrierOveralls(carriers []domain.CarrierPerformance) []domain.CarrierOverall {
	type agg struct {
		groups    int
		shipments int
		days      float64
		onTime    float64
	}

	byCarrier := make(map[string]*agg)
	for _, c := range carriers {
		a, ok := byCarrier[c.CarrierID]
		if !ok {
			a = &agg{}
			byCarrier[c.CarrierID] = a
		}
		a.groups++
		a.shipments += c.TotalShipments
		a.days += c.AvgDeliveryDays
		a.onTime += c.OnTimePercentage
	}

	overalls := make([]domain.CarrierOverall, 0, len(byCarrier))
	for id, a := range byCarrier {
		overalls = append(overalls, domain.CarrierOverall{
			CarrierID:        id,
			TotalShipments:   a.shipments,
			AvgDeliveryDays:  round1(a.days / float64(a.groups)),
			OnTimePercentage: round1(a.onTime / float64(a.groups)),
		})
	}

	sort.Slice(overalls, func(i, j int) bool {
		return overalls[i].CarrierID < overalls[j].CarrierID
	})

	return overalls
}

// modeCategory returns the most frequent category among the top products,
// alphabetically first on ties.
func modeCategory(products []domain.TopProduct) string {
	if len(products) == 0 {
		return ""
	}

	counts := make(map[string]int)
	for _, p := range products {
		counts[p.Category]++
	}

	var mode string
	var max int
	for category, n := range counts {
		if n > max || (n == max && (mode == "" || category < mode)) {
			mode = category
			max = n
		}
	}
	return mode
}
