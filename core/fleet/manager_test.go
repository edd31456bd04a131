package fleet

import (
	"errors"
	"testing"
	"time"

	"github.com/SimranYelave/Car-Rental-System/core/events"
	"github.com/SimranYelave/Car-Rental-System/core/model"
	"github.com/SimranYelave/Car-Rental-System/internal/eventbus"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager(nil, nil, nil)
	vehicles := []*model.Vehicle{
		{ID: "E001", Brand: "Toyota", Model: "Corolla", BasePricePerDay: 45, Class: model.ClassEconomy, FuelEfficiencyKmL: 18.5},
		{ID: "L001", Brand: "BMW", Model: "X5", BasePricePerDay: 120, Class: model.ClassLuxury, GPS: true, Sunroof: true, LeatherSeats: true},
		{ID: "S001", Brand: "Ford", Model: "Explorer", BasePricePerDay: 85, Class: model.ClassSUV, Seats: 7, FourWheelDrive: true},
	}
	for _, v := range vehicles {
		if err := m.AddVehicle(v); err != nil {
			t.Fatalf("add vehicle %s: %v", v.ID, err)
		}
	}
	return m
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestRentReturnRoundTrip(t *testing.T) {
	m := newTestManager(t)
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	m.SetClock(fixedClock(start))

	c := &model.Customer{ID: "c1", Name: "Alice", Tier: model.TierRegular}
	v, _ := m.Vehicle("E001")
	if !v.Available {
		t.Fatalf("vehicle should start available")
	}

	r, err := m.Rent("E001", c, 3, false)
	if err != nil {
		t.Fatalf("rent: %v", err)
	}
	if v.Available {
		t.Fatalf("vehicle must be unavailable while rented")
	}
	if r.Cost.TotalCost != 45*3 {
		t.Fatalf("expected %v got %v", 45*3, r.Cost.TotalCost)
	}
	if m.OpenCount() != 1 {
		t.Fatalf("expected 1 open rental got %d", m.OpenCount())
	}

	// Return exactly on the expected date: no fee.
	m.SetClock(fixedClock(start.AddDate(0, 0, 3)))
	_, fee, err := m.Return("E001")
	if err != nil {
		t.Fatalf("return: %v", err)
	}
	if fee != 0 {
		t.Fatalf("expected zero late fee got %v", fee)
	}
	if !v.Available {
		t.Fatalf("vehicle must be available after return")
	}
	if m.OpenCount() != 0 {
		t.Fatalf("open rental not removed")
	}
}

func TestLateReturnCharged(t *testing.T) {
	m := newTestManager(t)
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	m.SetClock(fixedClock(start))

	c := &model.Customer{ID: "c1", Tier: model.TierRegular}
	if _, err := m.Rent("S001", c, 5, false); err != nil {
		t.Fatalf("rent: %v", err)
	}
	// Two whole days past the expected return.
	m.SetClock(fixedClock(start.AddDate(0, 0, 7)))
	_, fee, err := m.Return("S001")
	if err != nil {
		t.Fatalf("return: %v", err)
	}
	if fee != 2*35 {
		t.Fatalf("expected %v got %v", 2*35, fee)
	}
}

func TestRentUnavailableVehicle(t *testing.T) {
	m := newTestManager(t)
	a := &model.Customer{ID: "a", Tier: model.TierRegular}
	b := &model.Customer{ID: "b", Tier: model.TierRegular}
	if _, err := m.Rent("L001", a, 2, false); err != nil {
		t.Fatalf("rent: %v", err)
	}
	if _, err := m.Rent("L001", b, 2, false); !errors.Is(err, ErrVehicleUnavailable) {
		t.Fatalf("expected ErrVehicleUnavailable got %v", err)
	}
	if m.OpenCount() != 1 {
		t.Fatalf("failed rent must not add a rental")
	}
}

func TestRentExceedsTierLimit(t *testing.T) {
	m := newTestManager(t)
	c := &model.Customer{ID: "c1", Tier: model.TierRegular}
	_, err := m.Rent("E001", c, 31, false)
	if !errors.Is(err, ErrRentalTooLong) {
		t.Fatalf("expected ErrRentalTooLong got %v", err)
	}
	v, _ := m.Vehicle("E001")
	if !v.Available {
		t.Fatalf("failed rent must leave availability unchanged")
	}

	prem := &model.Customer{ID: "c2", Tier: model.TierPremium}
	if _, err := m.Rent("E001", prem, 31, false); err != nil {
		t.Fatalf("premium 31 days should succeed: %v", err)
	}
}

func TestRentInvalidDays(t *testing.T) {
	m := newTestManager(t)
	c := &model.Customer{ID: "c1", Tier: model.TierRegular}
	if _, err := m.Rent("E001", c, 0, false); !errors.Is(err, model.ErrInvalidDays) {
		t.Fatalf("expected ErrInvalidDays got %v", err)
	}
	v, _ := m.Vehicle("E001")
	if !v.Available || m.OpenCount() != 0 {
		t.Fatalf("failed rent must leave state unchanged")
	}
}

func TestReturnNotRented(t *testing.T) {
	m := newTestManager(t)
	if _, _, err := m.Return("E001"); !errors.Is(err, ErrNotRented) {
		t.Fatalf("expected ErrNotRented got %v", err)
	}
	if _, _, err := m.Return("nope"); !errors.Is(err, ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound got %v", err)
	}
}

func TestLoyaltyPoints(t *testing.T) {
	m := newTestManager(t)
	c := &model.Customer{ID: "p1", Tier: model.TierPremium}

	if _, err := m.Rent("E001", c, 4, false); err != nil {
		t.Fatalf("rent: %v", err)
	}
	if c.LoyaltyPoints != 4 {
		t.Fatalf("expected 4 points got %d", c.LoyaltyPoints)
	}
	// Failed attempts and returns leave the counter alone.
	if _, err := m.Rent("E001", c, 2, false); err == nil {
		t.Fatalf("expected failure on rented vehicle")
	}
	if _, _, err := m.Return("E001"); err != nil {
		t.Fatalf("return: %v", err)
	}
	if c.LoyaltyPoints != 4 {
		t.Fatalf("points must be unaffected by failures and returns, got %d", c.LoyaltyPoints)
	}
	if _, err := m.Rent("L001", c, 3, true); err != nil {
		t.Fatalf("rent: %v", err)
	}
	if c.LoyaltyPoints != 7 {
		t.Fatalf("expected 7 points got %d", c.LoyaltyPoints)
	}
}

func TestAvailableInsertionOrder(t *testing.T) {
	m := newTestManager(t)
	c := &model.Customer{ID: "c1", Tier: model.TierRegular}
	if _, err := m.Rent("L001", c, 1, false); err != nil {
		t.Fatalf("rent: %v", err)
	}

	var ids []string
	for v := range m.Available() {
		ids = append(ids, v.ID)
	}
	if len(ids) != 2 || ids[0] != "E001" || ids[1] != "S001" {
		t.Fatalf("unexpected available set %v", ids)
	}

	// The sequence is restartable and reflects later state.
	if _, _, err := m.Return("L001"); err != nil {
		t.Fatalf("return: %v", err)
	}
	ids = ids[:0]
	for v := range m.Available() {
		ids = append(ids, v.ID)
	}
	if len(ids) != 3 || ids[1] != "L001" {
		t.Fatalf("unexpected available set after return %v", ids)
	}
}

func TestAvailableEarlyBreak(t *testing.T) {
	m := newTestManager(t)
	count := 0
	for range m.Available() {
		count++
		break
	}
	if count != 1 {
		t.Fatalf("expected early break after 1 got %d", count)
	}
}

func TestQuoteIsPure(t *testing.T) {
	m := newTestManager(t)
	c := &model.Customer{ID: "c1", Tier: model.TierPremium}
	q, err := m.Quote("L001", c, 10, true)
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	base := (120.0 + 45.0) * 10
	if q.BaseCost != base || q.Discount != base*0.10 {
		t.Fatalf("unexpected quote %+v", q)
	}
	if q.InsuranceCost != 150 || !q.InsuranceApplied {
		t.Fatalf("unexpected insurance %+v", q)
	}
	if q.TotalCost != base-base*0.10+150 {
		t.Fatalf("unexpected total %v", q.TotalCost)
	}
	v, _ := m.Vehicle("L001")
	if !v.Available || m.OpenCount() != 0 || c.LoyaltyPoints != 0 {
		t.Fatalf("quote must not mutate state")
	}
}

func TestRentPublishesEvents(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	m := NewManager(nil, nil, bus)
	if err := m.AddVehicle(&model.Vehicle{ID: "E001", BasePricePerDay: 45, Class: model.ClassEconomy}); err != nil {
		t.Fatalf("add vehicle: %v", err)
	}
	ch := bus.Subscribe()

	c := &model.Customer{ID: "c1", Tier: model.TierRegular}
	if _, err := m.Rent("E001", c, 2, false); err != nil {
		t.Fatalf("rent: %v", err)
	}
	ev := <-ch
	rented, ok := ev.(events.VehicleRented)
	if !ok || rented.VehicleID != "E001" || rented.Days != 2 {
		t.Fatalf("unexpected event %#v", ev)
	}

	if _, _, err := m.Return("E001"); err != nil {
		t.Fatalf("return: %v", err)
	}
	ev = <-ch
	returned, ok := ev.(events.VehicleReturned)
	if !ok || returned.VehicleID != "E001" || returned.CustomerID != "c1" {
		t.Fatalf("unexpected event %#v", ev)
	}
}

func TestDuplicateIDs(t *testing.T) {
	m := newTestManager(t)
	err := m.AddVehicle(&model.Vehicle{ID: "E001", Class: model.ClassEconomy})
	if !errors.Is(err, ErrDuplicateVehicle) {
		t.Fatalf("expected ErrDuplicateVehicle got %v", err)
	}
	if err := m.AddCustomer(&model.Customer{ID: "c1", Tier: model.TierRegular}); err != nil {
		t.Fatalf("add customer: %v", err)
	}
	if err := m.AddCustomer(&model.Customer{ID: "c1", Tier: model.TierPremium}); !errors.Is(err, ErrDuplicateCustomer) {
		t.Fatalf("expected ErrDuplicateCustomer got %v", err)
	}
}

func TestAddVehicleUnknownClass(t *testing.T) {
	m := NewManager(nil, nil, nil)
	if err := m.AddVehicle(&model.Vehicle{ID: "X001", Class: model.VehicleClass("hovercraft")}); err == nil {
		t.Fatalf("expected error for unknown class")
	}
}

func TestRentRegistersNewCustomer(t *testing.T) {
	m := newTestManager(t)
	c := &model.Customer{ID: "fresh", Tier: model.TierRegular}
	if _, err := m.Rent("E001", c, 1, false); err != nil {
		t.Fatalf("rent: %v", err)
	}
	if _, ok := m.Customer("fresh"); !ok {
		t.Fatalf("customer should join the roster on first rental")
	}
	// Roster entries survive the rental.
	if _, _, err := m.Return("E001"); err != nil {
		t.Fatalf("return: %v", err)
	}
	if _, ok := m.Customer("fresh"); !ok {
		t.Fatalf("customer must persist after return")
	}
}
