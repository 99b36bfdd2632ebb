package discounts

import (
	"testing"
	"time"

	"mercato/models"
)

func sampleDiscount() models.Discount {
	return models.Discount{
		DiscountID: "d1",
		Code:       "SUMMER20",
		Percentage: 20,
		ValidFrom:  time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil: time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC),
		UsageLimit: 100,
		UsedCount:  0,
		IsActive:   true,
	}
}

func TestRedeemableInsideWindow(t *testing.T) {
	d := sampleDiscount()
	now := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
	if !Redeemable(d, now) {
		t.Fatal("active discount inside window should be redeemable")
	}
}

func TestRedeemableInactive(t *testing.T) {
	d := sampleDiscount()
	d.IsActive = false
	now := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
	if Redeemable(d, now) {
		t.Fatal("inactive discount must not be redeemable")
	}
}

func TestRedeemableOutsideWindow(t *testing.T) {
	d := sampleDiscount()
	before := d.ValidFrom.Add(-time.Hour)
	after := d.ValidUntil.Add(time.Hour)
	if Redeemable(d, before) {
		t.Error("discount before validFrom must not be redeemable")
	}
	if Redeemable(d, after) {
		t.Error("discount after validUntil must not be redeemable")
	}
}

func TestRedeemableUsedUp(t *testing.T) {
	d := sampleDiscount()
	d.UsedCount = d.UsageLimit
	now := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
	if Redeemable(d, now) {
		t.Fatal("exhausted discount must not be redeemable")
	}

	d.UsedCount = d.UsageLimit - 1
	if !Redeemable(d, now) {
		t.Fatal("one remaining use should still be redeemable")
	}
}
