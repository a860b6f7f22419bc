package coupon

import (
	"testing"
	"time"
)

type memStorage struct {
	data map[string]string
}

func newMemStorage() *memStorage {
	return &memStorage{data: make(map[string]string)}
}

func (m *memStorage) Get(key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *memStorage) Set(key, value string) { m.data[key] = value }
func (m *memStorage) Delete(key string)     { delete(m.data, key) }

func TestCacheRoundTrip(t *testing.T) {
	storage := newMemStorage()

	first := NewCheckoutCache(storage, "u1")
	applied := &Coupon{
		Code:      "summer10",
		Kind:      KindPercentage,
		Value:     10,
		ExpiresAt: time.Now().Add(24 * time.Hour),
		Active:    true,
	}
	first.SetAppliedCoupon(applied)
	first.SetPointsToUse(250)
	first.SetDiscount(4.75)

	// Fresh init from the same storage simulates a page reload.
	second := NewCheckoutCache(storage, "u1")

	got := second.AppliedCoupon()
	if got == nil || got.Code != "summer10" || got.Kind != KindPercentage || got.Value != 10 {
		t.Fatalf("coupon did not survive rehydration: %+v", got)
	}
	if second.PointsToUse() != 250 {
		t.Fatalf("pointsToUse = %d, want 250", second.PointsToUse())
	}
	if second.Discount() != 4.75 {
		t.Fatalf("discount = %v, want 4.75", second.Discount())
	}
}

func TestClearCouponLeavesNumericFields(t *testing.T) {
	storage := newMemStorage()

	cache := NewCheckoutCache(storage, "u1")
	cache.SetAppliedCoupon(&Coupon{Code: "x", Kind: KindFixed, Value: 5, Active: true})
	cache.SetPointsToUse(100)
	cache.SetDiscount(5)

	cache.SetAppliedCoupon(nil)

	if _, ok := storage.Get(keyCoupon + "u1"); ok {
		t.Fatal("coupon storage entry should be removed")
	}
	if _, ok := storage.Get(keyPoints + "u1"); !ok {
		t.Fatal("points storage entry must survive coupon clear")
	}
	if _, ok := storage.Get(keyDiscount + "u1"); !ok {
		t.Fatal("discount storage entry must survive coupon clear")
	}

	// Rehydrated state mirrors the decoupling: no coupon, values intact.
	reloaded := NewCheckoutCache(storage, "u1")
	if reloaded.AppliedCoupon() != nil {
		t.Fatal("coupon should be unset after clear")
	}
	if reloaded.PointsToUse() != 100 || reloaded.Discount() != 5 {
		t.Fatalf("numeric fields lost: points=%d discount=%v", reloaded.PointsToUse(), reloaded.Discount())
	}
}

func TestZeroValuesAreWritten(t *testing.T) {
	storage := newMemStorage()

	cache := NewCheckoutCache(storage, "u1")
	cache.SetPointsToUse(0)
	cache.SetDiscount(0)

	if v, ok := storage.Get(keyPoints + "u1"); !ok || v != "0" {
		t.Fatalf("points zero not written, got %q ok=%v", v, ok)
	}
	if v, ok := storage.Get(keyDiscount + "u1"); !ok || v != "0" {
		t.Fatalf("discount zero not written, got %q ok=%v", v, ok)
	}
}

func TestMalformedCouponLeavesOtherFields(t *testing.T) {
	storage := newMemStorage()
	storage.Set(keyCoupon+"u1", "{not json")
	storage.Set(keyPoints+"u1", "42")
	storage.Set(keyDiscount+"u1", "3.5")

	cache := NewCheckoutCache(storage, "u1")

	if cache.AppliedCoupon() != nil {
		t.Fatal("malformed coupon must leave coupon unset")
	}
	if cache.PointsToUse() != 42 {
		t.Fatalf("pointsToUse = %d, want 42", cache.PointsToUse())
	}
	if cache.Discount() != 3.5 {
		t.Fatalf("discount = %v, want 3.5", cache.Discount())
	}
}
