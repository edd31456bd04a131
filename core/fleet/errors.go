package fleet

import "errors"

// Reported business outcomes. None of these indicate a fault; a failed
// transaction leaves all ledger state unchanged.
var (
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrVehicleUnavailable = errors.New("vehicle is not available")
	ErrRentalTooLong      = errors.New("rental period exceeds customer limit")
	ErrNotRented          = errors.New("vehicle is not currently rented")
	ErrDuplicateVehicle   = errors.New("vehicle id already in catalog")
	ErrDuplicateCustomer  = errors.New("customer id already in roster")
)
