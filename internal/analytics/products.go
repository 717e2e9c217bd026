package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/supplysight/backend/internal/domain"
)

// DefaultTopProductsLimit caps the best-sellers ranking.
const DefaultTopProductsLimit = 5

type productGroup struct {
	product   domain.TopProduct
	orders    map[string]struct{}
	customers map[string]struct{}
}

// TopSellingProducts ranks products by total units sold over the supplied
// order lines (already filtered to Shipped/Delivered orders within the
// lookback window). Ties are broken by total revenue descending, then by
// product id ascending, so the ranking is deterministic.
func TopSellingProducts(lines []domain.OrderLine, limit int) []domain.TopProduct {
	if limit <= 0 {
		limit = DefaultTopProductsLimit
	}

	groups := make(map[string]*productGroup)
	for _, line := range lines {
		g, ok := groups[line.ProductID]
		if !ok {
			g = &productGroup{
				product: domain.TopProduct{
					ProductID:    line.ProductID,
					ProductName:  line.ProductName,
					Category:     line.Category,
					UnitPrice:    line.UnitPrice,
					TotalRevenue: decimal.Zero,
				},
				orders:    make(map[string]struct{}),
				customers: make(map[string]struct{}),
			}
			groups[line.ProductID] = g
		}

		g.product.TotalUnitsSold += line.Quantity
		g.product.TotalRevenue = g.product.TotalRevenue.Add(
			line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
		g.orders[line.OrderID] = struct{}{}
		g.customers[line.CustomerID] = struct{}{}
	}

	results := make([]domain.TopProduct, 0, len(groups))
	for _, g := range groups {
		p := g.product
		p.TotalOrders = len(g.orders)
		p.UniqueCustomers = len(g.customers)
		if p.TotalOrders > 0 {
			p.AvgOrderQuantity = round2(float64(p.TotalUnitsSold) / float64(p.TotalOrders))
		}
		p.TotalRevenue = p.TotalRevenue.Round(2)
		results = append(results, p)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].TotalUnitsSold != results[j].TotalUnitsSold {
			return results[i].TotalUnitsSold > results[j].TotalUnitsSold
		}
		if cmp := results[i].TotalRevenue.Cmp(results[j].TotalRevenue); cmp != 0 {
			return cmp > 0
		}
		return results[i].ProductID < results[j].ProductID
	})

	if len(results) > limit {
		results = results[:limit]
	}

	return results
}
