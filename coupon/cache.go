package coupon

import (
	"encoding/json"
	"log"
	"strconv"

	"nutriva/rdx"
)

// Storage is the string key-value store backing the checkout cache. Redis in
// production, a map in tests.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

const (
	keyCoupon   = "checkout:coupon:"
	keyPoints   = "checkout:points:"
	keyDiscount = "checkout:discount:"
)

// CheckoutCache holds one user's in-progress discount selection across a
// checkout session. It is a dumb store: nothing here ties discount to the
// applied coupon's terms or to the points conversion rate; the order
// placement path revalidates server-side.
type CheckoutCache struct {
	storage Storage
	userID  string

	applied     *Coupon
	pointsToUse int
	discount    float64
}

// NewCheckoutCache rehydrates each field independently from storage. A
// malformed coupon payload is logged and leaves the coupon unset without
// touching points or discount.
func NewCheckoutCache(storage Storage, userID string) *CheckoutCache {
	c := &CheckoutCache{storage: storage, userID: userID}

	if raw, ok := storage.Get(keyCoupon + userID); ok {
		var applied Coupon
		if err := json.Unmarshal([]byte(raw), &applied); err != nil {
			log.Println("checkout cache: bad coupon payload:", err)
		} else {
			c.applied = &applied
		}
	}
	if raw, ok := storage.Get(keyPoints + userID); ok {
		if n, err := strconv.Atoi(raw); err == nil {
			c.pointsToUse = n
		}
	}
	if raw, ok := storage.Get(keyDiscount + userID); ok {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			c.discount = f
		}
	}
	return c
}

// SetAppliedCoupon mirrors the coupon to storage; nil removes the storage
// entry but leaves points and discount alone.
func (c *CheckoutCache) SetAppliedCoupon(applied *Coupon) {
	c.applied = applied
	if applied == nil {
		c.storage.Delete(keyCoupon + c.userID)
		return
	}
	data, err := json.Marshal(applied)
	if err != nil {
		log.Println("checkout cache: marshal coupon:", err)
		return
	}
	c.storage.Set(keyCoupon+c.userID, string(data))
}

// SetPointsToUse always writes, including zero.
func (c *CheckoutCache) SetPointsToUse(points int) {
	if points < 0 {
		points = 0
	}
	c.pointsToUse = points
	c.storage.Set(keyPoints+c.userID, strconv.Itoa(points))
}

// SetDiscount always writes, including zero.
func (c *CheckoutCache) SetDiscount(discount float64) {
	if discount < 0 {
		discount = 0
	}
	c.discount = discount
	c.storage.Set(keyDiscount+c.userID, strconv.FormatFloat(discount, 'f', -1, 64))
}

func (c *CheckoutCache) AppliedCoupon() *Coupon { return c.applied }
func (c *CheckoutCache) PointsToUse() int       { return c.pointsToUse }
func (c *CheckoutCache) Discount() float64      { return c.discount }

// Clear drops all three entries, used after an order is placed.
func (c *CheckoutCache) Clear() {
	c.applied = nil
	c.pointsToUse = 0
	c.discount = 0
	c.storage.Delete(keyCoupon + c.userID)
	c.storage.Delete(keyPoints + c.userID)
	c.storage.Delete(keyDiscount + c.userID)
}

// redisStorage adapts the shared redis connection to Storage.
type redisStorage struct{}

func NewRedisStorage() Storage { return redisStorage{} }

func (redisStorage) Get(key string) (string, bool) {
	val, err := rdx.RdxGet(key)
	if err != nil {
		return "", false
	}
	return val, true
}

func (redisStorage) Set(key, value string) {
	if err := rdx.RdxSet(key, value); err != nil {
		log.Println("checkout cache: redis set failed:", err)
	}
}

func (redisStorage) Delete(key string) {
	if err := rdx.RdxDel(key); err != nil {
		log.Println("checkout cache: redis del failed:", err)
	}
}
