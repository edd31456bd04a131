// Package events defines the rental lifecycle events published on the bus.
package events

import "time"

// VehicleRented is published after a successful rent transaction.
type VehicleRented struct {
	VehicleID  string
	CustomerID string
	Days       int
	TotalCost  float64
	StartDate  time.Time
}

// VehicleReturned is published after a vehicle comes back, whether or not a
// late fee applies.
type VehicleReturned struct {
	VehicleID  string
	CustomerID string
	LateDays   int
	LateFee    float64
	ReturnedAt time.Time
}
