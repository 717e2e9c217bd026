package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockStatusPriorityOrder(t *testing.T) {
	assert.Less(t, StockOutOfStock.Priority(), StockCritical.Priority())
	assert.Less(t, StockCritical.Priority(), StockLow.Priority())
	assert.Less(t, StockLow.Priority(), StockAdequate.Priority())
	assert.Greater(t, StockStatus("UNKNOWN").Priority(), StockAdequate.Priority())
}

func TestStockStatusIsShortage(t *testing.T) {
	assert.True(t, StockOutOfStock.IsShortage())
	assert.True(t, StockCritical.IsShortage())
	assert.True(t, StockLow.IsShortage())
	assert.False(t, StockAdequate.IsShortage())
}

func TestParseStockStatus(t *testing.T) {
	s, ok := ParseStockStatus("critical")
	assert.True(t, ok)
	assert.Equal(t, StockCritical, s)

	s, ok = ParseStockStatus("  OUT_OF_STOCK ")
	assert.True(t, ok)
	assert.Equal(t, StockOutOfStock, s)

	_, ok = ParseStockStatus("backordered")
	assert.False(t, ok)
}

func TestCountsAsDemand(t *testing.T) {
	assert.True(t, CountsAsDemand(OrderShipped))
	assert.True(t, CountsAsDemand(OrderDelivered))
	assert.False(t, CountsAsDemand(OrderPending))
	assert.False(t, CountsAsDemand(OrderCanceled))
}

func TestInventoryLevelAvailable(t *testing.T) {
	assert.Equal(t, 7, InventoryLevel{StockQuantity: 10, ReservedQuantity: 3}.Available())
	assert.Equal(t, -5, InventoryLevel{ReservedQuantity: 5}.Available())
}
