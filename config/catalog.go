package config

import (
	"fmt"

	"github.com/SimranYelave/Car-Rental-System/core/model"
)

// CatalogConfig is the seed catalog loaded at startup.
type CatalogConfig struct {
	Vehicles []VehicleConfig `json:"vehicles"`
}

// VehicleConfig describes one catalog entry. The class-specific fields are
// only read for the matching class.
type VehicleConfig struct {
	ID              string  `json:"id"`
	Brand           string  `json:"brand"`
	Model           string  `json:"model"`
	Class           string  `json:"class"`
	BasePricePerDay float64 `json:"base_price_per_day"`

	FuelEfficiencyKmL float64 `json:"fuel_efficiency_kml"`
	GPS               bool    `json:"gps"`
	Sunroof           bool    `json:"sunroof"`
	LeatherSeats      bool    `json:"leather_seats"`
	Seats             int     `json:"seats"`
	FourWheelDrive    bool    `json:"four_wheel_drive"`
}

// Validate checks every entry for a usable id, class and price.
func (c CatalogConfig) Validate() error {
	seen := map[string]bool{}
	for i, vc := range c.Vehicles {
		if vc.ID == "" {
			return fmt.Errorf("catalog entry %d: id is required", i)
		}
		if seen[vc.ID] {
			return fmt.Errorf("catalog entry %d: duplicate id %s", i, vc.ID)
		}
		seen[vc.ID] = true
		if !model.VehicleClass(vc.Class).Valid() {
			return fmt.Errorf("catalog entry %s: unknown class %q", vc.ID, vc.Class)
		}
		if vc.BasePricePerDay <= 0 {
			return fmt.Errorf("catalog entry %s: base_price_per_day must be positive", vc.ID)
		}
	}
	return nil
}

// Vehicle converts the entry to a catalog unit.
func (vc VehicleConfig) Vehicle() *model.Vehicle {
	return &model.Vehicle{
		ID:                vc.ID,
		Brand:             vc.Brand,
		Model:             vc.Model,
		Class:             model.VehicleClass(vc.Class),
		BasePricePerDay:   vc.BasePricePerDay,
		FuelEfficiencyKmL: vc.FuelEfficiencyKmL,
		GPS:               vc.GPS,
		Sunroof:           vc.Sunroof,
		LeatherSeats:      vc.LeatherSeats,
		Seats:             vc.Seats,
		FourWheelDrive:    vc.FourWheelDrive,
	}
}
