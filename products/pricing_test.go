package products

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSalePrice(t *testing.T) {
	tests := []struct {
		name   string
		base   float64
		onSale bool
		pct    float64
		want   float64
	}{
		{"not on sale", 100, false, 50, 100},
		{"not on sale ignores percentage", 80, false, 100, 80},
		{"quarter off", 100, true, 25, 75},
		{"zero percent", 100, true, 0, 100},
		{"full discount", 100, true, 100, 0},
		{"fractional", 19.99, true, 10, 17.991},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SalePrice(tt.base, tt.onSale, tt.pct)
			if !almostEqual(got, tt.want) {
				t.Errorf("SalePrice(%v, %v, %v) = %v, want %v", tt.base, tt.onSale, tt.pct, got, tt.want)
			}
		})
	}
}

func TestNextRating(t *testing.T) {
	rating, count := NextRating(0, 0, 4)
	if !almostEqual(rating, 4) || count != 1 {
		t.Fatalf("first review: got (%v, %d), want (4, 1)", rating, count)
	}

	rating, count = NextRating(4, 1, 2)
	if !almostEqual(rating, 3) || count != 2 {
		t.Fatalf("second review: got (%v, %d), want (3, 2)", rating, count)
	}

	rating, count = NextRating(3, 2, 5)
	if !almostEqual(rating, 11.0/3.0) || count != 3 {
		t.Fatalf("third review: got (%v, %d), want (3.666..., 3)", rating, count)
	}
}

func TestRatingAfterRemoval(t *testing.T) {
	rating, count := RatingAfterRemoval(3, 2, 2)
	if !almostEqual(rating, 4) || count != 1 {
		t.Fatalf("got (%v, %d), want (4, 1)", rating, count)
	}

	rating, count = RatingAfterRemoval(4, 1, 4)
	if rating != 0 || count != 0 {
		t.Fatalf("last review removed: got (%v, %d), want (0, 0)", rating, count)
	}

	// removing from an already-empty aggregate stays at zero
	rating, count = RatingAfterRemoval(0, 0, 3)
	if rating != 0 || count != 0 {
		t.Fatalf("empty aggregate: got (%v, %d), want (0, 0)", rating, count)
	}
}

func TestRatingRoundTrip(t *testing.T) {
	// adding then removing the same rating restores the mean
	ratings := []int{5, 3, 1, 4}
	var mean float64
	var count int
	for _, r := range ratings {
		mean, count = NextRating(mean, count, r)
	}

	before := mean
	mean, count = NextRating(mean, count, 2)
	mean, count = RatingAfterRemoval(mean, count, 2)
	if !almostEqual(mean, before) || count != len(ratings) {
		t.Fatalf("round trip drifted: got (%v, %d), want (%v, %d)", mean, count, before, len(ratings))
	}
}
