package domain

import "strings"

// Order statuses. Only Shipped and Delivered orders count as demand.
const (
	OrderPending   = "Pending"
	OrderShipped   = "Shipped"
	OrderDelivered = "Delivered"
	OrderCanceled  = "Canceled"
)

// Shipment statuses.
const (
	ShipmentInTransit = "In Transit"
	ShipmentDelivered = "Delivered"
	ShipmentDelayed   = "Delayed"
)

// Service levels.
const (
	ServiceStandard  = "Standard"
	ServiceExpress   = "Express"
	ServiceOvernight = "Overnight"
)

// StockStatus classifies how close a pair is to running out.
type StockStatus string

const (
	StockOutOfStock StockStatus = "OUT_OF_STOCK"
	StockCritical   StockStatus = "CRITICAL"
	StockLow        StockStatus = "LOW"
	StockAdequate   StockStatus = "ADEQUATE"
)

var stockStatusPriority = map[StockStatus]int{
	StockOutOfStock: 1,
	StockCritical:   2,
	StockLow:        3,
	StockAdequate:   4,
}

// Priority returns the presentation rank of a status, lower is more severe.
func (s StockStatus) Priority() int {
	if p, ok := stockStatusPriority[s]; ok {
		return p
	}

	return len(stockStatusPriority) + 1
}

// IsShortage reports whether the status represents an actionable shortage.
func (s StockStatus) IsShortage() bool {
	return s == StockOutOfStock || s == StockCritical || s == StockLow
}

// ParseStockStatus returns the status for a given label (case-insensitive).
func ParseStockStatus(label string) (StockStatus, bool) {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case string(StockOutOfStock):
		return StockOutOfStock, true
	case string(StockCritical):
		return StockCritical, true
	case string(StockLow):
		return StockLow, true
	case string(StockAdequate):
		return StockAdequate, true
	}

	return "", false
}

// CountsAsDemand reports whether an order status contributes to sales
// velocity and demand aggregation.
func CountsAsDemand(orderStatus string) bool {
	return orderStatus == OrderShipped || orderStatus == OrderDelivered
}
