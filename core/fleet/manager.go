package fleet

import (
	"fmt"
	"iter"
	"sync"
	"time"

	"github.com/SimranYelave/Car-Rental-System/core/events"
	"github.com/SimranYelave/Car-Rental-System/core/logger"
	"github.com/SimranYelave/Car-Rental-System/core/metrics"
	"github.com/SimranYelave/Car-Rental-System/core/model"
	"github.com/SimranYelave/Car-Rental-System/internal/eventbus"
)

// Manager owns the catalog, the customer roster and the set of open rentals.
// It is the sole mutator of vehicle availability: a vehicle is available iff
// it has no open rental. All transactions run under a single lock so the
// one-open-rental-per-vehicle invariant holds even if callers add
// goroutines.
type Manager struct {
	mu        sync.Mutex
	vehicles  []*model.Vehicle
	byID      map[string]*model.Vehicle
	customers map[string]*model.Customer
	open      map[string]*model.Rental // keyed by vehicle id

	log     logger.Logger
	metrics metrics.MetricsSink
	bus     eventbus.EventBus
	now     func() time.Time
}

// NewManager creates a ledger. The metrics sink and event bus may be nil.
func NewManager(log logger.Logger, sink metrics.MetricsSink, bus eventbus.EventBus) *Manager {
	if log == nil {
		log = logger.NopLogger{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Manager{
		byID:      map[string]*model.Vehicle{},
		customers: map[string]*model.Customer{},
		open:      map[string]*model.Rental{},
		log:       log,
		metrics:   sink,
		bus:       bus,
		now:       time.Now,
	}
}

// SetClock overrides the time source. Intended for tests.
func (m *Manager) SetClock(now func() time.Time) {
	m.mu.Lock()
	m.now = now
	m.mu.Unlock()
}

// AddVehicle appends a vehicle to the catalog and marks it available.
func (m *Manager) AddVehicle(v *model.Vehicle) error {
	if !v.Class.Valid() {
		return fmt.Errorf("vehicle %s: unknown class %q", v.ID, v.Class)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[v.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateVehicle, v.ID)
	}
	v.Available = true
	m.vehicles = append(m.vehicles, v)
	m.byID[v.ID] = v
	return nil
}

// AddCustomer registers a customer in the roster. Customers are never
// removed for the lifetime of the session.
func (m *Manager) AddCustomer(c *model.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[c.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCustomer, c.ID)
	}
	m.customers[c.ID] = c
	return nil
}

// Vehicle looks up a catalog entry by id.
func (m *Manager) Vehicle(id string) (*model.Vehicle, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.byID[id]
	return v, ok
}

// Customer looks up a roster entry by id.
func (m *Manager) Customer(id string) (*model.Customer, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.customers[id]
	return c, ok
}

// Available yields the currently available vehicles in catalog insertion
// order. The sequence is restartable; each range re-reads the ledger.
func (m *Manager) Available() iter.Seq[*model.Vehicle] {
	return func(yield func(*model.Vehicle) bool) {
		m.mu.Lock()
		snapshot := make([]*model.Vehicle, 0, len(m.vehicles))
		for _, v := range m.vehicles {
			if v.Available {
				snapshot = append(snapshot, v)
			}
		}
		m.mu.Unlock()
		for _, v := range snapshot {
			if !yield(v) {
				return
			}
		}
	}
}

// Quote prices a rental for display without touching any state.
func (m *Manager) Quote(vehicleID string, c *model.Customer, days int, withInsurance bool) (model.Quote, error) {
	v, ok := m.Vehicle(vehicleID)
	if !ok {
		return model.Quote{}, fmt.Errorf("%w: %s", ErrVehicleNotFound, vehicleID)
	}
	return model.QuoteRental(v, c, days, withInsurance)
}

// Rent creates an open rental for the vehicle. Preconditions: the vehicle is
// available and the duration fits the customer's tier limit. On failure no
// state changes. On success the vehicle becomes unavailable, premium
// customers earn one loyalty point per day, and the transaction is logged,
// published and recorded.
func (m *Manager) Rent(vehicleID string, c *model.Customer, days int, withInsurance bool) (*model.Rental, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.byID[vehicleID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVehicleNotFound, vehicleID)
	}
	if !v.Available {
		return nil, fmt.Errorf("%w: %s", ErrVehicleUnavailable, vehicleID)
	}
	if days > c.MaxRentalDays() {
		return nil, fmt.Errorf("%w: %d days > %d", ErrRentalTooLong, days, c.MaxRentalDays())
	}
	r, err := model.NewRental(v, c, days, withInsurance, m.now())
	if err != nil {
		return nil, err
	}
	if _, ok := m.customers[c.ID]; !ok {
		m.customers[c.ID] = c
	}

	v.Available = false
	m.open[v.ID] = r
	c.AddLoyaltyPoints(days)

	m.log.Infof("rented %s to %s for %d days (total %.2f)", v.ID, c.ID, days, r.Cost.TotalCost)
	if m.bus != nil {
		m.bus.Publish(events.VehicleRented{
			VehicleID:  v.ID,
			CustomerID: c.ID,
			Days:       days,
			TotalCost:  r.Cost.TotalCost,
			StartDate:  r.StartDate,
		})
	}
	if err := m.metrics.RecordRental(metrics.RentalRecord{
		VehicleID: v.ID,
		Class:     string(v.Class),
		Tier:      string(c.Tier),
		Days:      days,
		TotalCost: r.Cost.TotalCost,
		Insurance: r.InsuranceIncluded,
		StartedAt: r.StartDate,
	}); err != nil {
		m.log.Warnf("record rental metrics: %v", err)
	}
	return r, nil
}

// Return closes the open rental of the vehicle. The current date is stamped
// as the actual return date, the late fee is computed from it, the rental
// leaves the open set and the vehicle becomes available again. The closed
// rental and the fee (zero or positive) are returned.
func (m *Manager) Return(vehicleID string) (*model.Rental, float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.byID[vehicleID]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s", ErrVehicleNotFound, vehicleID)
	}
	r, ok := m.open[v.ID]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s", ErrNotRented, vehicleID)
	}

	r.MarkReturned(m.now())
	fee := r.LateFee()
	delete(m.open, v.ID)
	v.Available = true

	m.log.Infof("returned %s (late fee %.2f)", v.ID, fee)
	if m.bus != nil {
		m.bus.Publish(events.VehicleReturned{
			VehicleID:  v.ID,
			CustomerID: r.Customer.ID,
			LateDays:   r.LateDays(),
			LateFee:    fee,
			ReturnedAt: r.ActualReturn,
		})
	}
	if err := m.metrics.RecordReturn(metrics.ReturnRecord{
		VehicleID:  v.ID,
		Class:      string(v.Class),
		LateDays:   r.LateDays(),
		LateFee:    fee,
		ReturnedAt: r.ActualReturn,
	}); err != nil {
		m.log.Warnf("record return metrics: %v", err)
	}
	return r, fee, nil
}

// OpenRental returns the open rental bound to the vehicle, if any.
func (m *Manager) OpenRental(vehicleID string) (*model.Rental, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.open[vehicleID]
	return r, ok
}

// OpenCount returns the number of currently open rentals.
func (m *Manager) OpenCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.open)
}
