package model

import "fmt"

// VehicleClass identifies the pricing class of a catalog unit.
type VehicleClass string

const (
	ClassEconomy VehicleClass = "economy"
	ClassLuxury  VehicleClass = "luxury"
	ClassSUV     VehicleClass = "suv"
)

// Valid reports whether the class has registered pricing rules.
func (c VehicleClass) Valid() bool {
	_, ok := classRules[c]
	return ok
}

// Vehicle represents a single catalog unit. Class selects the pricing rules;
// the class-specific fields are only meaningful for the matching class.
type Vehicle struct {
	ID              string
	Brand           string
	Model           string
	BasePricePerDay float64
	Available       bool
	Class           VehicleClass

	// Economy
	FuelEfficiencyKmL float64
	// Luxury
	GPS          bool
	Sunroof      bool
	LeatherSeats bool
	// SUV
	Seats          int
	FourWheelDrive bool
}

// InsurancePlan describes the optional insurance a vehicle class offers.
type InsurancePlan struct {
	PerDay float64
	Label  string
}

// Cost returns the insurance cost for the given number of days.
func (p InsurancePlan) Cost(days int) float64 {
	return p.PerDay * float64(days)
}

// rules bundles the per-class behavior. One entry per class keeps the rule
// set closed while a new class only adds an entry.
type rules struct {
	price         func(v *Vehicle, days int) float64
	lateFeePerDay float64
	insurance     *InsurancePlan
	info          func(v *Vehicle) string
}

const (
	economyLongTermDays     = 7
	economyLongTermDiscount = 0.10

	luxuryGPSFee           = 10
	luxurySunroofFee       = 15
	luxuryLeatherFee       = 20
	luxuryLongTermDays     = 14
	luxuryLongTermDiscount = 0.05

	suvFourWheelDrivePerDay = 25
)

var classRules = map[VehicleClass]rules{
	ClassEconomy: {
		price: func(v *Vehicle, days int) float64 {
			total := v.BasePricePerDay * float64(days)
			if days > economyLongTermDays {
				total *= 1 - economyLongTermDiscount
			}
			return total
		},
		lateFeePerDay: 20,
		insurance:     &InsurancePlan{PerDay: 5, Label: "Basic Insurance"},
		info: func(v *Vehicle) string {
			return fmt.Sprintf("Economy Car: %s %s (Fuel Efficiency: %.1f km/l)", v.Brand, v.Model, v.FuelEfficiencyKmL)
		},
	},
	ClassLuxury: {
		price: func(v *Vehicle, days int) float64 {
			total := (v.BasePricePerDay + v.FeatureSurcharge()) * float64(days)
			if days > luxuryLongTermDays {
				total *= 1 - luxuryLongTermDiscount
			}
			return total
		},
		lateFeePerDay: 50,
		insurance:     &InsurancePlan{PerDay: 15, Label: "Premium Insurance"},
		info: func(v *Vehicle) string {
			return fmt.Sprintf("Luxury Car: %s %s (GPS: %s, Sunroof: %s, Leather: %s)",
				v.Brand, v.Model, yesNo(v.GPS), yesNo(v.Sunroof), yesNo(v.LeatherSeats))
		},
	},
	ClassSUV: {
		price: func(v *Vehicle, days int) float64 {
			total := v.BasePricePerDay * float64(days)
			if v.FourWheelDrive {
				total += suvFourWheelDrivePerDay * float64(days)
			}
			return total
		},
		lateFeePerDay: 35,
		insurance:     &InsurancePlan{PerDay: 10, Label: "Standard Insurance"},
		info: func(v *Vehicle) string {
			return fmt.Sprintf("SUV: %s %s (%d seats, 4WD: %s)", v.Brand, v.Model, v.Seats, yesNo(v.FourWheelDrive))
		},
	},
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// Price returns the rental price for the given positive day count.
// Day count validation is the caller's responsibility; pricing has no side
// effects.
func (v *Vehicle) Price(days int) float64 {
	r, ok := classRules[v.Class]
	if !ok {
		return 0
	}
	return r.price(v, days)
}

// FeatureSurcharge sums the per-day fees of the enabled luxury features.
func (v *Vehicle) FeatureSurcharge() float64 {
	var fee float64
	if v.GPS {
		fee += luxuryGPSFee
	}
	if v.Sunroof {
		fee += luxurySunroofFee
	}
	if v.LeatherSeats {
		fee += luxuryLeatherFee
	}
	return fee
}

// LateFeePerDay returns the flat fee charged per late day.
func (v *Vehicle) LateFeePerDay() float64 {
	return classRules[v.Class].lateFeePerDay
}

// Insurance returns the class insurance plan and whether the class offers
// one. Callers must check the second return before charging insurance.
func (v *Vehicle) Insurance() (InsurancePlan, bool) {
	r, ok := classRules[v.Class]
	if !ok || r.insurance == nil {
		return InsurancePlan{}, false
	}
	return *r.insurance, true
}

// Info returns a one-line human readable description of the vehicle.
func (v *Vehicle) Info() string {
	r, ok := classRules[v.Class]
	if !ok {
		return fmt.Sprintf("%s %s", v.Brand, v.Model)
	}
	return r.info(v)
}
