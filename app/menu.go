package app

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/SimranYelave/Car-Rental-System/core/fleet"
	"github.com/SimranYelave/Car-Rental-System/core/model"
)

// Menu is the interactive text boundary over the ledger. It validates the
// primitive shape of every input and generates ids for new customers; all
// business decisions stay in the core.
type Menu struct {
	mgr   *fleet.Manager
	in    *bufio.Scanner
	out   io.Writer
	newID func() string
}

// NewMenu creates a menu reading commands from in and writing to out.
func NewMenu(mgr *fleet.Manager, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		mgr:   mgr,
		in:    bufio.NewScanner(in),
		out:   out,
		newID: func() string { return "CUS-" + uuid.NewString()[:8] },
	}
}

// Run loops until the user exits or input ends.
func (m *Menu) Run() error {
	for {
		fmt.Fprintln(m.out, "\n==== Car Rental System ====")
		fmt.Fprintln(m.out, "1. Rent a Vehicle")
		fmt.Fprintln(m.out, "2. Return a Vehicle")
		fmt.Fprintln(m.out, "3. View Available Vehicles")
		fmt.Fprintln(m.out, "4. Quote a Rental")
		fmt.Fprintln(m.out, "5. Exit")
		choice, ok := m.prompt("Enter your choice: ")
		if !ok {
			return nil
		}
		switch strings.TrimSpace(choice) {
		case "1":
			if !m.rentFlow() {
				return nil
			}
		case "2":
			if !m.returnFlow() {
				return nil
			}
		case "3":
			m.listAvailable()
		case "4":
			if !m.quoteFlow() {
				return nil
			}
		case "5":
			fmt.Fprintln(m.out, "Thank you for using the Car Rental System!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
	}
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

func (m *Menu) promptPositiveInt(label string) (int, bool) {
	for {
		raw, ok := m.prompt(label)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n <= 0 {
			fmt.Fprintln(m.out, "Please enter a positive whole number.")
			continue
		}
		return n, true
	}
}

func (m *Menu) promptYesNo(label string) (bool, bool) {
	raw, ok := m.prompt(label)
	if !ok {
		return false, false
	}
	return strings.EqualFold(strings.TrimSpace(raw), "y"), true
}

func (m *Menu) listAvailable() {
	fmt.Fprintln(m.out, "\nAvailable Vehicles:")
	for v := range m.mgr.Available() {
		fmt.Fprintf(m.out, "%s - %s\n", v.ID, v.Info())
	}
}

func (m *Menu) readCustomer() (*model.Customer, bool) {
	name, ok := m.prompt("Enter your name: ")
	if !ok {
		return nil, false
	}
	email, ok := m.prompt("Enter your email: ")
	if !ok {
		return nil, false
	}
	tierChoice, ok := m.prompt("Customer type (1-Regular, 2-Premium): ")
	if !ok {
		return nil, false
	}
	tier := model.TierRegular
	if strings.TrimSpace(tierChoice) == "2" {
		tier = model.TierPremium
	}
	return &model.Customer{
		ID:    m.newID(),
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
		Tier:  tier,
	}, true
}

func (m *Menu) readRentalRequest() (*model.Customer, string, int, bool, bool) {
	customer, ok := m.readCustomer()
	if !ok {
		return nil, "", 0, false, false
	}
	m.listAvailable()
	vehicleID, ok := m.prompt("\nEnter the vehicle ID: ")
	if !ok {
		return nil, "", 0, false, false
	}
	days, ok := m.promptPositiveInt("Enter the number of rental days: ")
	if !ok {
		return nil, "", 0, false, false
	}
	insurance, ok := m.promptYesNo("Include insurance? (Y/N): ")
	if !ok {
		return nil, "", 0, false, false
	}
	return customer, strings.TrimSpace(vehicleID), days, insurance, true
}

func (m *Menu) printQuote(q model.Quote, insuranceRequested bool) {
	fmt.Fprintf(m.out, "Base Cost: $%.2f\n", q.BaseCost)
	if q.Discount > 0 {
		fmt.Fprintf(m.out, "Discount: -$%.2f\n", q.Discount)
	}
	if q.InsuranceApplied {
		fmt.Fprintf(m.out, "Insurance (%s): +$%.2f\n", q.InsuranceLabel, q.InsuranceCost)
	} else if insuranceRequested {
		fmt.Fprintln(m.out, "Insurance is not offered for this vehicle and was not charged.")
	}
	fmt.Fprintf(m.out, "Total Cost: $%.2f\n", q.TotalCost)
}

func (m *Menu) rentFlow() bool {
	fmt.Fprintln(m.out, "\n== Rent a Vehicle ==")
	customer, vehicleID, days, insurance, ok := m.readRentalRequest()
	if !ok {
		return false
	}

	q, err := m.mgr.Quote(vehicleID, customer, days, insurance)
	if err != nil {
		fmt.Fprintf(m.out, "Cannot rent: %v\n", err)
		return true
	}
	fmt.Fprintln(m.out, "\n== Rental Information ==")
	fmt.Fprintf(m.out, "Customer: %s (%s)\n", customer.Name, customer.Tier)
	if v, found := m.mgr.Vehicle(vehicleID); found {
		fmt.Fprintf(m.out, "Vehicle: %s\n", v.Info())
	}
	fmt.Fprintf(m.out, "Rental Days: %d\n", days)
	m.printQuote(q, insurance)

	confirm, ok := m.promptYesNo("\nConfirm rental (Y/N): ")
	if !ok {
		return false
	}
	if !confirm {
		fmt.Fprintln(m.out, "Rental cancelled.")
		return true
	}
	if _, err := m.mgr.Rent(vehicleID, customer, days, insurance); err != nil {
		fmt.Fprintf(m.out, "Cannot rent: %v\n", err)
		return true
	}
	fmt.Fprintln(m.out, "Vehicle rented successfully!")
	return true
}

func (m *Menu) returnFlow() bool {
	fmt.Fprintln(m.out, "\n== Return a Vehicle ==")
	vehicleID, ok := m.prompt("Enter the vehicle ID to return: ")
	if !ok {
		return false
	}
	_, fee, err := m.mgr.Return(strings.TrimSpace(vehicleID))
	if err != nil {
		fmt.Fprintf(m.out, "Cannot return: %v\n", err)
		return true
	}
	fmt.Fprintln(m.out, "Vehicle returned successfully.")
	if fee > 0 {
		fmt.Fprintf(m.out, "Late fee charged: $%.2f\n", fee)
	}
	return true
}

func (m *Menu) quoteFlow() bool {
	fmt.Fprintln(m.out, "\n== Quote a Rental ==")
	customer, vehicleID, days, insurance, ok := m.readRentalRequest()
	if !ok {
		return false
	}
	q, err := m.mgr.Quote(vehicleID, customer, days, insurance)
	if err != nil {
		fmt.Fprintf(m.out, "Cannot quote: %v\n", err)
		return true
	}
	fmt.Fprintln(m.out)
	m.printQuote(q, insurance)
	return true
}
