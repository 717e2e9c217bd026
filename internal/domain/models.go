// internal/domain/models.go

// Package domain holds the row types bound by the metrics queries and the
// result types produced by the engine and the analytics aggregators. The
// entity tables themselves live only in the schema; the queries project
// straight into these shapes.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PairKey identifies a (product, warehouse) combination.
type PairKey struct {
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id"`
}

// InventoryLevel holds current stock figures for a product at a warehouse.
type InventoryLevel struct {
	ProductID        string `json:"product_id" db:"product_id"`
	WarehouseID      string `json:"warehouse_id" db:"warehouse_id"`
	StockQuantity    int    `json:"stock_quantity" db:"stock_quantity"`
	ReservedQuantity int    `json:"reserved_quantity" db:"reserved_quantity"`
}

// Available returns stock minus reservations. It may be negative in dirty
// data; callers classify rather than reject such rows.
func (l InventoryLevel) Available() int {
	return l.StockQuantity - l.ReservedQuantity
}

// DemandRow is the grouped demand for a pair over a trailing window:
// SUM(quantity) of Shipped/Delivered orders joined to their shipment's
// warehouse.
type DemandRow struct {
	ProductID   string `db:"product_id"`
	WarehouseID string `db:"warehouse_id"`
	TotalSold   int    `db:"total_sold"`
}

// ShipmentTimeRow is the average delivered transit time for a warehouse.
type ShipmentTimeRow struct {
	WarehouseID string  `db:"warehouse_id"`
	AvgDays     float64 `db:"avg_days"`
}

// DeliveredShipment is a delivered-shipment fact used by carrier analytics.
type DeliveredShipment struct {
	CarrierID         string    `db:"carrier_id"`
	ServiceLevel      string    `db:"service_level"`
	ShipDate          time.Time `db:"ship_date"`
	EstimatedDelivery time.Time `db:"estimated_delivery"`
	ActualDelivery    time.Time `db:"actual_delivery"`
}

// OrderLine is a sold order joined to its product, used by the
// top-products aggregation.
type OrderLine struct {
	OrderID     string          `db:"order_id"`
	CustomerID  string          `db:"customer_id"`
	ProductID   string          `db:"product_id"`
	ProductName string          `db:"product_name"`
	Category    string          `db:"product_category"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Quantity    int             `db:"quantity"`
}

// Recommendation is a per-pair restocking decision.
type Recommendation struct {
	ProductID           string  `json:"product_id"`
	WarehouseID         string  `json:"warehouse_id"`
	RecommendedQuantity int     `json:"recommended_restock_quantity"`
	AvailableStock      int     `json:"current_available_stock"`
	SalesVelocity       float64 `json:"sales_velocity_per_day"`
	AvgShipmentTime     float64 `json:"avg_shipment_time_days"`
	ReorderPoint        float64 `json:"reorder_point"`
	SafetyStock         float64 `json:"safety_stock"`
	TargetStock         float64 `json:"target_stock"`
	UrgencyScore        float64 `json:"urgency_score"`
}

// CarrierPerformance summarizes delivered shipments for one
// (carrier, service level) group. Day figures are rounded to 2 decimals.
type CarrierPerformance struct {
	CarrierID        string  `json:"carrier_id"`
	ServiceLevel     string  `json:"service_level"`
	TotalShipments   int     `json:"total_shipments"`
	AvgDeliveryDays  float64 `json:"avg_delivery_days"`
	MinDeliveryDays  float64 `json:"min_delivery_days"`
	MaxDeliveryDays  float64 `json:"max_delivery_days"`
	AvgDelayDays     float64 `json:"avg_delay_days"`
	OnTimePercentage float64 `json:"on_time_percentage"`
}

// TopProduct is one entry of the best-sellers ranking.
type TopProduct struct {
	ProductID        string          `json:"product_id"`
	ProductName      string          `json:"product_name"`
	Category         string          `json:"product_category"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	TotalUnitsSold   int             `json:"total_units_sold"`
	TotalOrders      int             `json:"total_orders"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	AvgOrderQuantity float64         `json:"avg_order_quantity"`
	UniqueCustomers  int             `json:"unique_customers"`
}

// Shortage classifies the stock position of one pair.
type Shortage struct {
	WarehouseID     string      `json:"warehouse_id"`
	ProductID       string      `json:"product_id"`
	AvailableStock  int         `json:"available_stock"`
	DailyDemandRate float64     `json:"daily_demand_rate"`
	DemandLast30    int         `json:"demand_last_30days"`
	DaysOfStock     float64     `json:"days_of_stock"`
	Status          StockStatus `json:"stock_status"`
}
