package coupon

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"nutriva/db"
	"nutriva/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

type Kind string

const (
	KindPercentage Kind = "percentage"
	KindFixed      Kind = "fixed"
)

// Coupon is the validated discount variant: absence of a coupon is a nil
// *Coupon, presence always carries code, kind and value.
type Coupon struct {
	Code      string    `json:"code" bson:"code"`
	Kind      Kind      `json:"kind" bson:"kind"`
	Value     float64   `json:"value" bson:"value"`
	MinSpend  float64   `json:"minSpend,omitempty" bson:"minSpend,omitempty"`
	ExpiresAt time.Time `json:"expiresAt" bson:"expiresAt"`
	Active    bool      `json:"active" bson:"active"`
}

// Check reports whether the coupon can be applied to a cart subtotal.
func (c Coupon) Check(subtotal float64) (bool, string) {
	switch c.Kind {
	case KindPercentage, KindFixed:
	default:
		return false, "Unknown coupon kind"
	}
	if !c.Active {
		return false, "Coupon inactive"
	}
	if time.Now().After(c.ExpiresAt) {
		return false, "Coupon expired"
	}
	if subtotal < c.MinSpend {
		return false, "Cart below minimum spend"
	}
	return true, ""
}

// DiscountFor converts the coupon terms into an absolute currency amount,
// capped at the subtotal so a fixed coupon never goes negative.
func (c Coupon) DiscountFor(subtotal float64) float64 {
	var d float64
	switch c.Kind {
	case KindPercentage:
		d = subtotal * c.Value / 100
	case KindFixed:
		d = c.Value
	}
	if d > subtotal {
		d = subtotal
	}
	if d < 0 {
		d = 0
	}
	return d
}

type ValidateRequest struct {
	Code string  `json:"code"`
	Cart float64 `json:"cart"` // cart subtotal, for min spend rules
}

type ValidateResponse struct {
	Valid    bool    `json:"valid"`
	Discount float64 `json:"discount"` // absolute amount
	Message  string  `json:"message"`
	Coupon   *Coupon `json:"coupon,omitempty"`
}

// ValidateCoupon checks a code against the coupons collection and returns
// the absolute discount for the given subtotal.
func ValidateCoupon(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	code := strings.TrimSpace(strings.ToLower(req.Code))
	if code == "" {
		utils.RespondWithJSON(w, http.StatusOK, ValidateResponse{Valid: false, Message: "No coupon provided"})
		return
	}

	var c Coupon
	err := db.CouponCollection.FindOne(context.TODO(), bson.M{"code": code}).Decode(&c)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusOK, ValidateResponse{Valid: false, Message: "Coupon not found"})
		return
	}

	if ok, reason := c.Check(req.Cart); !ok {
		utils.RespondWithJSON(w, http.StatusOK, ValidateResponse{Valid: false, Message: reason})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, ValidateResponse{
		Valid:    true,
		Discount: c.DiscountFor(req.Cart),
		Message:  "Coupon applied successfully",
		Coupon:   &c,
	})
}

// Lookup fetches a coupon by code for order placement.
func Lookup(ctx context.Context, code string) (*Coupon, error) {
	var c Coupon
	err := db.CouponCollection.FindOne(ctx, bson.M{"code": strings.ToLower(code)}).Decode(&c)
	if err != nil {
		log.Println("coupon lookup failed:", err)
		return nil, err
	}
	return &c, nil
}
