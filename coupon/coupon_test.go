package coupon

import (
	"testing"
	"time"
)

func TestCheck(t *testing.T) {
	future := time.Now().Add(time.Hour)
	past := time.Now().Add(-time.Hour)

	cases := []struct {
		name     string
		c        Coupon
		subtotal float64
		want     bool
	}{
		{"active percentage", Coupon{Kind: KindPercentage, Value: 10, ExpiresAt: future, Active: true}, 50, true},
		{"inactive", Coupon{Kind: KindPercentage, Value: 10, ExpiresAt: future, Active: false}, 50, false},
		{"expired", Coupon{Kind: KindFixed, Value: 5, ExpiresAt: past, Active: true}, 50, false},
		{"below min spend", Coupon{Kind: KindFixed, Value: 5, MinSpend: 100, ExpiresAt: future, Active: true}, 50, false},
		{"unknown kind", Coupon{Kind: "bogus", Value: 5, ExpiresAt: future, Active: true}, 50, false},
	}

	for _, tc := range cases {
		if got, _ := tc.c.Check(tc.subtotal); got != tc.want {
			t.Errorf("%s: Check = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDiscountFor(t *testing.T) {
	pct := Coupon{Kind: KindPercentage, Value: 20}
	if got := pct.DiscountFor(80); got != 16 {
		t.Fatalf("20%% of 80 = %v, want 16", got)
	}

	fixed := Coupon{Kind: KindFixed, Value: 10}
	if got := fixed.DiscountFor(100); got != 10 {
		t.Fatalf("fixed discount = %v, want 10", got)
	}

	// A fixed coupon larger than the cart is capped at the subtotal.
	if got := fixed.DiscountFor(6); got != 6 {
		t.Fatalf("capped discount = %v, want 6", got)
	}
}
