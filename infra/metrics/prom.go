package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/SimranYelave/Car-Rental-System/core/metrics"
)

// PromSink records rental transactions in Prometheus metrics.
type PromSink struct {
	rentals  *prometheus.CounterVec
	returns  *prometheus.CounterVec
	revenue  *prometheus.CounterVec
	lateFees *prometheus.CounterVec
}

// NewPromSink registers rental metrics on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. Collectors that
// are already registered are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	rentals := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rental_events_total",
		Help: "Total number of successful rent transactions",
	}, []string{"class", "tier", "insurance"})
	returns := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "return_events_total",
		Help: "Total number of vehicle returns",
	}, []string{"class", "late"})
	revenue := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rental_revenue_total",
		Help: "Sum of rental costs charged at creation",
	}, []string{"class"})
	lateFees := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "late_fees_total",
		Help: "Sum of late fees charged on return",
	}, []string{"class"})

	s := &PromSink{rentals: rentals, returns: returns, revenue: revenue, lateFees: lateFees}
	for _, c := range []**prometheus.CounterVec{&s.rentals, &s.returns, &s.revenue, &s.lateFees} {
		if err := reg.Register(*c); err != nil {
			if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
				*c = are.ExistingCollector.(*prometheus.CounterVec)
			} else {
				return nil, err
			}
		}
	}
	return s, nil
}

// RecordRental increments the rental counters.
func (s *PromSink) RecordRental(r coremetrics.RentalRecord) error {
	s.rentals.WithLabelValues(r.Class, r.Tier, strconv.FormatBool(r.Insurance)).Inc()
	s.revenue.WithLabelValues(r.Class).Add(r.TotalCost)
	return nil
}

// RecordReturn increments the return counters.
func (s *PromSink) RecordReturn(r coremetrics.ReturnRecord) error {
	s.returns.WithLabelValues(r.Class, strconv.FormatBool(r.LateDays > 0)).Inc()
	if r.LateFee > 0 {
		s.lateFees.WithLabelValues(r.Class).Add(r.LateFee)
	}
	return nil
}
