package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
)

// schemaStatements creates the relational dataset consumed by the engine
// and the analytics aggregators. Statuses and service levels carry CHECK
// constraints matching the domain enums.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS customer (
        customer_id TEXT PRIMARY KEY,
        customer_name TEXT NOT NULL,
        email TEXT UNIQUE NOT NULL,
        registration_date DATE NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS product (
        product_id TEXT PRIMARY KEY,
        product_name TEXT NOT NULL,
        product_category TEXT NOT NULL,
        unit_price NUMERIC(10,2) NOT NULL CHECK (unit_price >= 0)
    )`,
	`CREATE TABLE IF NOT EXISTS warehouse (
        warehouse_id TEXT PRIMARY KEY,
        warehouse_name TEXT NOT NULL,
        location TEXT NOT NULL,
        capacity INTEGER NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS carrier (
        carrier_id TEXT NOT NULL,
        service_level TEXT NOT NULL CHECK (service_level IN ('Standard', 'Express', 'Overnight')),
        avg_delivery_time INTEGER NOT NULL,
        PRIMARY KEY (carrier_id, service_level)
    )`,
	`CREATE TABLE IF NOT EXISTS orders (
        order_id TEXT PRIMARY KEY,
        customer_id TEXT NOT NULL REFERENCES customer(customer_id),
        product_id TEXT NOT NULL REFERENCES product(product_id),
        order_date DATE NOT NULL,
        order_status TEXT NOT NULL CHECK (order_status IN ('Pending', 'Shipped', 'Delivered', 'Canceled')),
        quantity INTEGER NOT NULL CHECK (quantity > 0)
    )`,
	`CREATE TABLE IF NOT EXISTS inventory (
        product_id TEXT NOT NULL REFERENCES product(product_id),
        warehouse_id TEXT NOT NULL REFERENCES warehouse(warehouse_id),
        stock_quantity INTEGER NOT NULL,
        reserved_quantity INTEGER NOT NULL,
        last_updated TIMESTAMP NOT NULL DEFAULT NOW(),
        PRIMARY KEY (product_id, warehouse_id)
    )`,
	`CREATE TABLE IF NOT EXISTS shipment (
        shipment_id TEXT PRIMARY KEY,
        order_id TEXT NOT NULL REFERENCES orders(order_id),
        warehouse_id TEXT NOT NULL REFERENCES warehouse(warehouse_id),
        carrier_id TEXT NOT NULL,
        service_level TEXT NOT NULL CHECK (service_level IN ('Standard', 'Express', 'Overnight')),
        shipment_status TEXT NOT NULL CHECK (shipment_status IN ('In Transit', 'Delivered', 'Delayed')),
        ship_date DATE NOT NULL,
        estimated_delivery DATE NOT NULL,
        actual_delivery DATE,
        tracking_number TEXT UNIQUE NOT NULL
    )`,
	`CREATE INDEX IF NOT EXISTS idx_orders_status_date ON orders (order_status, order_date)`,
	`CREATE INDEX IF NOT EXISTS idx_shipment_warehouse ON shipment (warehouse_id)`,
	`CREATE INDEX IF NOT EXISTS idx_shipment_carrier ON shipment (carrier_id, service_level)`,
}

// Migrate applies the schema inside a single transaction: either every
// statement lands or none do. Statements are idempotent, so re-running is
// safe.
func (db *DB) Migrate(ctx context.Context) error {
	err := db.WithTx(ctx, func(tx *sql.Tx) error {
		for _, stmt := range schemaStatements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("error applying schema statement: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Int("statements", len(schemaStatements)).Msg("schema migration applied")
	return nil
}
