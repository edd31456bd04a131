package metrics

import "time"

// RentalRecord describes a completed rent transaction for observability.
type RentalRecord struct {
	VehicleID string
	Class     string
	Tier      string
	Days      int
	TotalCost float64
	Insurance bool
	StartedAt time.Time
}

// ReturnRecord describes a completed return transaction.
type ReturnRecord struct {
	VehicleID  string
	Class      string
	LateDays   int
	LateFee    float64
	ReturnedAt time.Time
}

// MetricsSink records rental transactions for observability purposes.
type MetricsSink interface {
	RecordRental(RentalRecord) error
	RecordReturn(ReturnRecord) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordRental(RentalRecord) error { return nil }
func (NopSink) RecordReturn(ReturnRecord) error { return nil }
