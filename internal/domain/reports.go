package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WarehouseRestockSummary totals the recommendations for one warehouse.
type WarehouseRestockSummary struct {
	WarehouseID string `json:"warehouse_id"`
	Products    int    `json:"products"`
	TotalUnits  int    `json:"total_units"`
}

// RestockReport is the full output of a recommendation run.
type RestockReport struct {
	GeneratedAt      time.Time                 `json:"generated_at"`
	Recommendations  []Recommendation          `json:"recommendations"`
	WarehouseSummary []WarehouseRestockSummary `json:"warehouse_summary"`
}

// CarrierOverall averages a carrier's figures across its service levels.
type CarrierOverall struct {
	CarrierID        string  `json:"carrier_id"`
	TotalShipments   int     `json:"total_shipments"`
	AvgDeliveryDays  float64 `json:"avg_delivery_days"`
	OnTimePercentage float64 `json:"on_time_percentage"`
}

// SupplyChainInsights combines the three analytics aggregates with the
// derived headline figures of the insights report.
type SupplyChainInsights struct {
	GeneratedAt       time.Time            `json:"generated_at"`
	Carriers          []CarrierPerformance `json:"carriers"`
	CarrierOveralls   []CarrierOverall     `json:"carrier_overalls"`
	TopProducts       []TopProduct         `json:"top_products"`
	Shortages         []Shortage           `json:"shortages"`
	TopRevenue        decimal.Decimal      `json:"top_products_revenue"`
	AvgDeliveryDays   float64              `json:"avg_delivery_days"`
	CriticalShortages int                  `json:"critical_shortages"`
	BestCarrier       string               `json:"best_carrier"`
	BestOnTime        float64              `json:"best_carrier_on_time"`
	WorstCarrier      string               `json:"worst_carrier"`
	WorstOnTime       float64              `json:"worst_carrier_on_time"`
	TopCategory       string               `json:"top_category"`
}
