package metrics

import coremetrics "github.com/SimranYelave/Car-Rental-System/core/metrics"

// MultiSink fans rental records out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordRental forwards the record to all sinks, returning the first error.
func (m *MultiSink) RecordRental(r coremetrics.RentalRecord) error {
	for _, s := range m.Sinks {
		if err := s.RecordRental(r); err != nil {
			return err
		}
	}
	return nil
}

// RecordReturn forwards the record to all sinks, returning the first error.
func (m *MultiSink) RecordReturn(r coremetrics.ReturnRecord) error {
	for _, s := range m.Sinks {
		if err := s.RecordReturn(r); err != nil {
			return err
		}
	}
	return nil
}
