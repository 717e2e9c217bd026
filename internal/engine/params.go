package engine

// Defaults for the restocking policy. These mirror the tunables exposed
// through config and the recommendation API.
const (
	DefaultSafetyStockDays      = 14
	DefaultRestockThresholdDays = 7
	DefaultReplenishmentDays    = 30
	DefaultVelocityLookbackDays = 30
	DefaultVelocity             = 0.1
	DefaultShipmentTimeDays     = 5.0
)

// Params controls the restocking decision per (product, warehouse) pair.
type Params struct {
	SafetyStockDays      int     `json:"safety_stock_days"`
	RestockThresholdDays int     `json:"restock_threshold_days"`
	ReplenishmentDays    int     `json:"replenishment_period_days"`
	VelocityLookbackDays int     `json:"velocity_lookback_days"`
	DefaultVelocity      float64 `json:"default_velocity"`
	DefaultShipmentTime  float64 `json:"default_shipment_time"`
}

// DefaultParams returns the standard restocking policy.
func DefaultParams() Params {
	return Params{
		SafetyStockDays:      DefaultSafetyStockDays,
		RestockThresholdDays: DefaultRestockThresholdDays,
		ReplenishmentDays:    DefaultReplenishmentDays,
		VelocityLookbackDays: DefaultVelocityLookbackDays,
		DefaultVelocity:      DefaultVelocity,
		DefaultShipmentTime:  DefaultShipmentTimeDays,
	}
}

// Normalize fills zero-valued fields with defaults so partially populated
// parameter sets (e.g. from query strings) behave predictably.
func (p Params) Normalize() Params {
	d := DefaultParams()
	if p.SafetyStockDays <= 0 {
		p.SafetyStockDays = d.SafetyStockDays
	}
	if p.RestockThresholdDays <= 0 {
		p.RestockThresholdDays = d.RestockThresholdDays
	}
	if p.ReplenishmentDays <= 0 {
		p.ReplenishmentDays = d.ReplenishmentDays
	}
	if p.VelocityLookbackDays <= 0 {
		p.VelocityLookbackDays = d.VelocityLookbackDays
	}
	if p.DefaultVelocity <= 0 {
		p.DefaultVelocity = d.DefaultVelocity
	}
	if p.DefaultShipmentTime <= 0 {
		p.DefaultShipmentTime = d.DefaultShipmentTime
	}
	return p
}
