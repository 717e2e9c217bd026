package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/supplysight/backend/internal/domain"
)

func TestBuildVelocityMap(t *testing.T) {
	rows := []domain.DemandRow{
		{ProductID: "P001", WarehouseID: "W001", TotalSold: 60},
		{ProductID: "P002", WarehouseID: "W001", TotalSold: 15},
		{ProductID: "P001", WarehouseID: "W002", TotalSold: 0},
	}

	velocity := BuildVelocityMap(rows, 30)

	assert.Len(t, velocity, 3)
	assert.Equal(t, 2.0, velocity[pair("P001", "W001")])
	assert.Equal(t, 0.5, velocity[pair("P002", "W001")])
	assert.Equal(t, 0.0, velocity[pair("P001", "W002")])
}

func TestBuildVelocityMapZeroWindowUsesDefault(t *testing.T) {
	rows := []domain.DemandRow{
		{ProductID: "P001", WarehouseID: "W001", TotalSold: 30},
	}

	velocity := BuildVelocityMap(rows, 0)
	assert.Equal(t, 1.0, velocity[pair("P001", "W001")])
}

func TestBuildShipmentTimeMap(t *testing.T) {
	rows := []domain.ShipmentTimeRow{
		{WarehouseID: "W001", AvgDays: 3.5},
		{WarehouseID: "W002", AvgDays: 6.25},
	}

	times := BuildShipmentTimeMap(rows)
	assert.Equal(t, 3.5, times["W001"])
	assert.Equal(t, 6.25, times["W002"])
	_, ok := times["W003"]
	assert.False(t, ok)
}

func TestBuildInventoryMapKeepsEveryRow(t *testing.T) {
	rows := []domain.InventoryLevel{
		{ProductID: "P001", WarehouseID: "W001", StockQuantity: 10, ReservedQuantity: 3},
		{ProductID: "P002", WarehouseID: "W001", StockQuantity: 0, ReservedQuantity: 5},
	}

	inventory := BuildInventoryMap(rows)
	assert.Len(t, inventory, 2)
	assert.Equal(t, 7, inventory[pair("P001", "W001")].Available())
	assert.Equal(t, -5, inventory[pair("P002", "W001")].Available())
}
