package model

import "testing"

func TestTierRules(t *testing.T) {
	reg := Customer{ID: "c1", Tier: TierRegular}
	if reg.DiscountRate() != 0 || reg.MaxRentalDays() != 30 {
		t.Fatalf("unexpected regular rules: %v %v", reg.DiscountRate(), reg.MaxRentalDays())
	}
	prem := Customer{ID: "c2", Tier: TierPremium}
	if prem.DiscountRate() != 0.10 || prem.MaxRentalDays() != 60 {
		t.Fatalf("unexpected premium rules: %v %v", prem.DiscountRate(), prem.MaxRentalDays())
	}
}

func TestLoyaltyAccrual(t *testing.T) {
	prem := Customer{Tier: TierPremium}
	prem.AddLoyaltyPoints(5)
	prem.AddLoyaltyPoints(3)
	if prem.LoyaltyPoints != 8 {
		t.Fatalf("expected 8 points got %d", prem.LoyaltyPoints)
	}
	reg := Customer{Tier: TierRegular}
	reg.AddLoyaltyPoints(5)
	if reg.LoyaltyPoints != 0 {
		t.Fatalf("regular customers must not accrue points, got %d", reg.LoyaltyPoints)
	}
}
