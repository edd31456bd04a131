package model

import (
	"errors"
	"time"
)

// ErrInvalidDays is returned when a rental duration is not a positive
// integer. The boundary layer validates input first; the core re-validates
// in case it is called directly.
var ErrInvalidDays = errors.New("rental days must be a positive integer")

// Quote is the cost breakdown of a rental before or at creation.
// InsuranceApplied is false when insurance was requested on a class that
// offers none; the request is a reported no-op, never an error.
type Quote struct {
	BaseCost         float64
	Discount         float64
	InsuranceCost    float64
	InsuranceLabel   string
	InsuranceApplied bool
	TotalCost        float64
}

// QuoteRental prices a hypothetical rental without mutating any state.
func QuoteRental(v *Vehicle, c *Customer, days int, withInsurance bool) (Quote, error) {
	if days <= 0 {
		return Quote{}, ErrInvalidDays
	}
	q := Quote{BaseCost: v.Price(days)}
	q.Discount = c.DiscountRate() * q.BaseCost
	q.TotalCost = q.BaseCost - q.Discount
	if withInsurance {
		if plan, ok := v.Insurance(); ok {
			q.InsuranceCost = plan.Cost(days)
			q.InsuranceLabel = plan.Label
			q.InsuranceApplied = true
			q.TotalCost += q.InsuranceCost
		}
	}
	return q, nil
}

// Rental binds one vehicle to one customer for a fixed duration. The cost is
// computed once at construction and never recomputed, even if rate tables
// change afterwards.
type Rental struct {
	Vehicle           *Vehicle
	Customer          *Customer
	Days              int
	StartDate         time.Time
	ExpectedReturn    time.Time
	ActualReturn      time.Time // zero until the vehicle comes back
	Cost              Quote
	InsuranceIncluded bool
}

// NewRental constructs a rental starting at the given date.
func NewRental(v *Vehicle, c *Customer, days int, withInsurance bool, start time.Time) (*Rental, error) {
	q, err := QuoteRental(v, c, days, withInsurance)
	if err != nil {
		return nil, err
	}
	return &Rental{
		Vehicle:           v,
		Customer:          c,
		Days:              days,
		StartDate:         start,
		ExpectedReturn:    start.AddDate(0, 0, days),
		Cost:              q,
		InsuranceIncluded: withInsurance && q.InsuranceApplied,
	}, nil
}

// Returned reports whether the actual return date has been stamped.
func (r *Rental) Returned() bool {
	return !r.ActualReturn.IsZero()
}

// MarkReturned stamps the actual return date.
func (r *Rental) MarkReturned(at time.Time) {
	r.ActualReturn = at
}

// LateDays returns the number of whole calendar days the return is overdue.
// Both dates are floored to midnight before differencing, so a late return
// on the expected calendar day counts as zero late days.
func (r *Rental) LateDays() int {
	if !r.Returned() {
		return 0
	}
	late := int(midnight(r.ActualReturn).Sub(midnight(r.ExpectedReturn)) / (24 * time.Hour))
	if late < 0 {
		return 0
	}
	return late
}

// LateFee returns the fee owed for an overdue return, zero otherwise.
func (r *Rental) LateFee() float64 {
	return float64(r.LateDays()) * r.Vehicle.LateFeePerDay()
}

func midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
