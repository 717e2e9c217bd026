// Package report renders plain-text reports from restocking and analytics
// results. Empty result sets render as "nothing to report" sections rather
// than errors.
package report

import (
	"fmt"
	"strings"

	"github.com/supplysight/backend/internal/domain"
)

const (
	wideRule   = 80
	timeLayout = "2006-01-02 15:04:05"

	// topRestocksShown caps the priority list in the restock report; the
	// full set still appears in the warehouse summary.
	topRestocksShown = 10
)

// RenderRestockReport formats a restock report for console output.
func RenderRestockReport(r *domain.RestockReport) string {
	var b strings.Builder

	rule(&b, "=", wideRule)
	b.WriteString("INVENTORY RESTOCKING RECOMMENDATIONS REPORT\n")
	rule(&b, "=", wideRule)
	fmt.Fprintf(&b, "Generated on: %s\n", r.GeneratedAt.Format(timeLayout))
	fmt.Fprintf(&b, "Total recommendations: %d\n\n", len(r.Recommendations))

	if len(r.Recommendations) == 0 {
		b.WriteString("No restocking needed at this time.\n")
		return b.String()
	}

	b.WriteString("TOP PRIORITY RESTOCKS:\n")
	rule(&b, "-", 50)

	shown := r.Recommendations
	if len(shown) > topRestocksShown {
		shown = shown[:topRestocksShown]
	}
	for i, rec := range shown {
		fmt.Fprintf(&b, "%2d. Product: %s | Warehouse: %s\n", i+1, rec.ProductID, rec.WarehouseID)
		fmt.Fprintf(&b, "    Recommended Quantity: %d\n", rec.RecommendedQuantity)
		fmt.Fprintf(&b, "    Current Stock: %d\n", rec.AvailableStock)
		fmt.Fprintf(&b, "    Urgency Score: %.1f%%\n", rec.UrgencyScore)
		fmt.Fprintf(&b, "    Sales Velocity: %.2f/day\n\n", rec.SalesVelocity)
	}

	b.WriteString("SUMMARY BY WAREHOUSE:\n")
	rule(&b, "-", 30)
	for _, s := range r.WarehouseSummary {
		fmt.Fprintf(&b, "%s: %d products, %d total units\n", s.WarehouseID, s.Products, s.TotalUnits)
	}

	return b.String()
}

// RenderInsightsReport formats the supply-chain insights report.
func RenderInsightsReport(ins *domain.SupplyChainInsights) string {
	var b strings.Builder

	rule(&b, "=", wideRule)
	b.WriteString("SUPPLY CHAIN OPTIMIZATION INSIGHTS REPORT\n")
	rule(&b, "=", wideRule)
	fmt.Fprintf(&b, "Generated on: %s\n\n", ins.GeneratedAt.Format(timeLayout))

	b.WriteString("EXECUTIVE SUMMARY\n")
	rule(&b, "-", 30)
	fmt.Fprintf(&b, "- Total revenue from top %d products: $%s\n", len(ins.TopProducts), ins.TopRevenue.StringFixed(2))
	fmt.Fprintf(&b, "- Average delivery time per carrier: %.1f days\n", ins.AvgDeliveryDays)
	fmt.Fprintf(&b, "- Critical inventory shortages identified: %d items\n", ins.CriticalShortages)
	if ins.BestCarrier != "" {
		fmt.Fprintf(&b, "- Best performing carrier: %s\n", ins.BestCarrier)
	}
	b.WriteString("\n")

	renderCarrierSection(&b, ins)
	renderTopProductsSection(&b, ins)
	renderShortageSection(&b, ins)
	renderRecommendationsSection(&b, ins)

	return b.String()
}

func renderCarrierSection(b *strings.Builder, ins *domain.SupplyChainInsights) {
	b.WriteString("CARRIER PERFORMANCE ANALYSIS\n")
	rule(b, "-", 40)

	if len(ins.CarrierOveralls) == 0 {
		b.WriteString("No delivered shipments to report.\n\n")
		return
	}

	byCarrier := make(map[string][]domain.CarrierPerformance)
	for _, c := range ins.Carriers {
		byCarrier[c.CarrierID] = append(byCarrier[c.CarrierID], c)
	}

	for _, overall := range ins.CarrierOveralls {
		fmt.Fprintf(b, "- %s:\n", overall.CarrierID)
		for _, c := range byCarrier[overall.CarrierID] {
			fmt.Fprintf(b, "  - %s: %.1f days avg, %.1f%% on-time, %d shipments\n",
				c.ServiceLevel, c.AvgDeliveryDays, c.OnTimePercentage, c.TotalShipments)
		}
		fmt.Fprintf(b, "  Overall Average: %.1f days, %.1f%% on-time, %d total shipments\n\n",
			overall.AvgDeliveryDays, overall.OnTimePercentage, overall.TotalShipments)
	}
}

func renderTopProductsSection(b *strings.Builder, ins *domain.SupplyChainInsights) {
	fmt.Fprintf(b, "TOP %d BEST-SELLING PRODUCTS (Last 90 Days)\n", len(ins.TopProducts))
	rule(b, "-", 50)

	if len(ins.TopProducts) == 0 {
		b.WriteString("No sales to report.\n\n")
		return
	}

	for i, p := range ins.TopProducts {
		fmt.Fprintf(b, "%d. %s (%s)\n", i+1, p.ProductName, p.Category)
		fmt.Fprintf(b, "   - Units sold: %d\n", p.TotalUnitsSold)
		fmt.Fprintf(b, "   - Revenue: $%s\n", p.TotalRevenue.StringFixed(2))
		fmt.Fprintf(b, "   - Unique customers: %d\n", p.UniqueCustomers)
	}
	b.WriteString("\n")
}

func renderShortageSection(b *strings.Builder, ins *domain.SupplyChainInsights) {
	b.WriteString("INVENTORY SHORTAGE ANALYSIS\n")
	rule(b, "-", 35)

	if len(ins.Shortages) == 0 {
		b.WriteString("No inventory to report.\n\n")
		return
	}

	type statusCounts map[domain.StockStatus]int
	counts := make(map[string]statusCounts)
	var warehouses []string
	for _, s := range ins.Shortages {
		if _, ok := counts[s.WarehouseID]; !ok {
			counts[s.WarehouseID] = make(statusCounts)
			warehouses = append(warehouses, s.WarehouseID)
		}
		counts[s.WarehouseID][s.Status]++
	}

	// Shortages arrive sorted by warehouse, so the iteration order above
	// already matches presentation order.
	for _, w := range warehouses {
		fmt.Fprintf(b, "- %s:\n", w)
		if n := counts[w][domain.StockOutOfStock]; n > 0 {
			fmt.Fprintf(b, "  - Out of stock: %d products\n", n)
		}
		if n := counts[w][domain.StockCritical]; n > 0 {
			fmt.Fprintf(b, "  - Critical (< 7 days): %d products\n", n)
		}
		if n := counts[w][domain.StockLow]; n > 0 {
			fmt.Fprintf(b, "  - Low stock (< 14 days): %d products\n", n)
		}
	}
	b.WriteString("\n")
}

func renderRecommendationsSection(b *strings.Builder, ins *domain.SupplyChainInsights) {
	b.WriteString("KEY RECOMMENDATIONS\n")
	rule(b, "-", 25)

	if ins.BestCarrier != "" {
		b.WriteString("Carrier Optimization:\n")
		fmt.Fprintf(b, "- Consider renegotiating with %s (lowest on-time: %.1f%%)\n",
			ins.WorstCarrier, ins.WorstOnTime)
		fmt.Fprintf(b, "- Leverage %s for critical deliveries (best on-time: %.1f%%)\n",
			ins.BestCarrier, ins.BestOnTime)
	}

	if ins.TopCategory != "" {
		b.WriteString("\nProduct Focus:\n")
		fmt.Fprintf(b, "- Consider expanding %s category\n", ins.TopCategory)
	}

	var outWarehouses []string
	seen := make(map[string]bool)
	for _, s := range ins.Shortages {
		if s.Status == domain.StockOutOfStock && !seen[s.WarehouseID] {
			seen[s.WarehouseID] = true
			outWarehouses = append(outWarehouses, s.WarehouseID)
		}
	}
	if len(outWarehouses) > 0 {
		if len(outWarehouses) > 3 {
			outWarehouses = outWarehouses[:3]
		}
		b.WriteString("\nUrgent Inventory Actions:\n")
		for _, w := range outWarehouses {
			fmt.Fprintf(b, "- Immediate restocking required for %s\n", w)
		}
	}
}

func rule(b *strings.Builder, ch string, n int) {
	b.WriteString(strings.Repeat(ch, n))
	b.WriteString("\n")
}
