package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/supplysight/backend/internal/domain"
	"github.com/supplysight/backend/internal/repository"
)

type metricsRepository struct {
	db sqlx.ExtContext
}

// NewMetricsRepository creates the Postgres-backed read repository used by
// the restocking engine and analytics aggregators.
func NewMetricsRepository(db sqlx.ExtContext) repository.MetricsRepository {
	return &metricsRepository{db: db}
}

func (r *metricsRepository) DemandByPair(ctx context.Context, since time.Time) ([]domain.DemandRow, error) {
	query := `
        SELECT
            o.product_id,
            s.warehouse_id,
            SUM(o.quantity) AS total_sold
        FROM orders o
        JOIN shipment s ON o.order_id = s.order_id
        WHERE o.order_date >= $1
          AND o.order_status IN ('Shipped', 'Delivered')
        GROUP BY o.product_id, s.warehouse_id
    `

	var rows []domain.DemandRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, since); err != nil {
		return nil, fmt.Errorf("error querying demand by pair: %w", err)
	}

	log.Debug().Int("pairs", len(rows)).Time("since", since).Msg("metrics: demand fetched")
	return rows, nil
}

func (r *metricsRepository) AvgShipmentTimes(ctx context.Context) ([]domain.ShipmentTimeRow, error) {
	query := `
        SELECT
            warehouse_id,
            AVG(EXTRACT(EPOCH FROM (actual_delivery - ship_date))/86400)::float AS avg_days
        FROM shipment
        WHERE actual_delivery IS NOT NULL
        GROUP BY warehouse_id
    `

	var rows []domain.ShipmentTimeRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query); err != nil {
		return nil, fmt.Errorf("error querying average shipment times: %w", err)
	}

	return rows, nil
}

func (r *metricsRepository) CurrentInventory(ctx context.Context) ([]domain.InventoryLevel, error) {
	query := `
        SELECT
            product_id,
            warehouse_id,
            stock_quantity,
            reserved_quantity
        FROM inventory
    `

	var rows []domain.InventoryLevel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query); err != nil {
		return nil, fmt.Errorf("error querying current inventory: %w", err)
	}

	return rows, nil
}

func (r *metricsRepository) DeliveredShipments(ctx context.Context) ([]domain.DeliveredShipment, error) {
	query := `
        SELECT
            carrier_id,
            service_level,
            ship_date,
            estimated_delivery,
            actual_delivery
        FROM shipment
        WHERE actual_delivery IS NOT NULL
    `

	var rows []domain.DeliveredShipment
	if err := sqlx.SelectContext(ctx, r.db, &rows, query); err != nil {
		return nil, fmt.Errorf("error querying delivered shipments: %w", err)
	}

	log.Debug().Int("shipments", len(rows)).Msg("metrics: delivered shipments fetched")
	return rows, nil
}

func (r *metricsRepository) SoldOrderLines(ctx context.Context, since time.Time) ([]domain.OrderLine, error) {
	query := `
        SELECT
            o.order_id,
            o.customer_id,
            p.product_id,
            p.product_name,
            p.product_category,
            p.unit_price,
            o.quantity
        FROM orders o
        JOIN product p ON o.product_id = p.product_id
        WHERE o.order_date >= $1
          AND o.order_status IN ('Shipped', 'Delivered')
    `

	var rows []domain.OrderLine
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, since); err != nil {
		return nil, fmt.Errorf("error querying sold order lines: %w", err)
	}

	return rows, nil
}
