package services

import "fuelgo/internal/order-service/core/domain/model"

// Amounts are in KES. Flat amounts are placeholders agreed with ops:
// mechanic covers the diagnosis visit only, vehicle is the daily-rate
// baseline regardless of the requested class.
const (
	FuelPricePerLiter    = 185.0
	BatteryServicePrice  = 15000.0
	MechanicServicePrice = 2000.0
	VehicleRentalPrice   = 50000.0
)

// Price computes the order amount for a detail variant. Pure and
// deterministic; input validation happens before pricing is invoked.
// An unknown variant prices to 0, request validation never lets one through.
func Price(details model.ServiceDetails) float64 {
	switch d := details.(type) {
	case model.FuelDetails:
		return d.Liters * FuelPricePerLiter
	case model.BatteryDetails:
		return BatteryServicePrice
	case model.MechanicDetails:
		return MechanicServicePrice
	case model.VehicleDetails:
		return VehicleRentalPrice
	default:
		return 0
	}
}
