package model

// CustomerTier identifies the discount and eligibility tier of a customer.
type CustomerTier string

const (
	TierRegular CustomerTier = "regular"
	TierPremium CustomerTier = "premium"
)

// Valid reports whether the tier has registered rules.
func (t CustomerTier) Valid() bool {
	_, ok := tierRules[t]
	return ok
}

// Customer is one roster entry. LoyaltyPoints is only maintained for the
// premium tier; it is a running total with no cap or redemption.
type Customer struct {
	ID            string
	Name          string
	Email         string
	Tier          CustomerTier
	LoyaltyPoints int
}

// tierBehavior holds the per-tier rules. New tiers only add table entries.
type tierBehavior struct {
	discountRate  float64
	maxRentalDays int
	earnsLoyalty  bool
}

var tierRules = map[CustomerTier]tierBehavior{
	TierRegular: {discountRate: 0, maxRentalDays: 30},
	TierPremium: {discountRate: 0.10, maxRentalDays: 60, earnsLoyalty: true},
}

// DiscountRate returns the flat discount fraction applied to the base cost.
func (c *Customer) DiscountRate() float64 {
	return tierRules[c.Tier].discountRate
}

// MaxRentalDays returns the longest rental duration the tier allows.
func (c *Customer) MaxRentalDays() int {
	return tierRules[c.Tier].maxRentalDays
}

// EarnsLoyalty reports whether successful rentals accrue loyalty points.
func (c *Customer) EarnsLoyalty() bool {
	return tierRules[c.Tier].earnsLoyalty
}

// AddLoyaltyPoints credits points for a completed transaction. It is a no-op
// for tiers that do not accrue loyalty.
func (c *Customer) AddLoyaltyPoints(points int) {
	if !c.EarnsLoyalty() {
		return
	}
	c.LoyaltyPoints += points
}
