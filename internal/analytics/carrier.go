// Package analytics provides pure aggregations over queried supply-chain
// facts: carrier delivery performance, best-selling products and inventory
// shortage classification.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/supplysight/backend/internal/domain"
)

type carrierGroup struct {
	count     int
	totalDays float64
	minDays   float64
	maxDays   float64
	delayDays float64
	onTime    int
}

// CarrierPerformance aggregates delivered shipments by
// (carrier id, service level). A shipment is on time when its actual
// delivery date does not exceed the estimated one. Results are ordered by
// carrier id, then service level.
func CarrierPerformance(shipments []domain.DeliveredShipment) []domain.CarrierPerformance {
	type groupKey struct {
		carrier string
		service string
	}

	groups := make(map[groupKey]*carrierGroup)
	for _, s := range shipments {
		key := groupKey{carrier: s.CarrierID, service: s.ServiceLevel}
		days := daysBetween(s.ShipDate, s.ActualDelivery)
		delay := daysBetween(s.EstimatedDelivery, s.ActualDelivery)

		g, ok := groups[key]
		if !ok {
			g = &carrierGroup{minDays: days, maxDays: days}
			groups[key] = g
		}
		g.count++
		g.totalDays += days
		g.delayDays += delay
		if days < g.minDays {
			g.minDays = days
		}
		if days > g.maxDays {
			g.maxDays = days
		}
		if !s.ActualDelivery.After(s.EstimatedDelivery) {
			g.onTime++
		}
	}

	results := make([]domain.CarrierPerformance, 0, len(groups))
	for key, g := range groups {
		results = append(results, domain.CarrierPerformance{
			CarrierID:        key.carrier,
			ServiceLevel:     key.service,
			TotalShipments:   g.count,
			AvgDeliveryDays:  round2(g.totalDays / float64(g.count)),
			MinDeliveryDays:  round2(g.minDays),
			MaxDeliveryDays:  round2(g.maxDays),
			AvgDelayDays:     round2(g.delayDays / float64(g.count)),
			OnTimePercentage: round2(float64(g.onTime) / float64(g.count) * 100),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].CarrierID != results[j].CarrierID {
			return results[i].CarrierID < results[j].CarrierID
		}
		return results[i].ServiceLevel < results[j].ServiceLevel
	})

	return results
}

// daysBetween returns the elapsed days from a to b, negative when b
// precedes a.
func daysBetween(a, b time.Time) float64 {
	return b.Sub(a).Hours() / 24
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
