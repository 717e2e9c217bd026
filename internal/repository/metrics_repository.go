// internal/repository/metrics_repository.go
package repository

import (
	"context"
	"time"

	"github.com/supplysight/backend/internal/domain"
)

// MetricsRepository is the read-side data access used by the restocking
// engine and the analytics aggregators. Implementations issue grouped and
// row-level queries over the relational dataset; all aggregation beyond
// grouping happens in memory on top of the returned rows.
type MetricsRepository interface {
	// DemandByPair sums sold quantities per (product, warehouse) for
	// Shipped/Delivered orders placed on or after since.
	DemandByPair(ctx context.Context, since time.Time) ([]domain.DemandRow, error)

	// AvgShipmentTimes averages delivered transit days per warehouse,
	// over shipments with a non-null actual delivery date.
	AvgShipmentTimes(ctx context.Context) ([]domain.ShipmentTimeRow, error)

	// CurrentInventory returns every inventory row, unfiltered.
	CurrentInventory(ctx context.Context) ([]domain.InventoryLevel, error)

	// DeliveredShipments returns per-shipment delivery facts for
	// shipments with a non-null actual delivery date.
	DeliveredShipments(ctx context.Context) ([]domain.DeliveredShipment, error)

	// SoldOrderLines returns Shipped/Delivered order lines joined to
	// their product, for orders placed on or after since.
	SoldOrderLines(ctx context.Context, since time.Time) ([]domain.OrderLine, error)
}
