package coupon

import (
	"encoding/json"
	"net/http"

	"nutriva/utils"

	"github.com/julienschmidt/httprouter"
)

type selectionView struct {
	AppliedCoupon *Coupon `json:"appliedCoupon"`
	PointsToUse   int     `json:"pointsToUse"`
	Discount      float64 `json:"discount"`
}

func cacheForRequest(w http.ResponseWriter, r *http.Request) (*CheckoutCache, bool) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil, false
	}
	return NewCheckoutCache(NewRedisStorage(), userID), true
}

func respondWithSelection(w http.ResponseWriter, c *CheckoutCache) {
	utils.RespondWithJSON(w, http.StatusOK, selectionView{
		AppliedCoupon: c.AppliedCoupon(),
		PointsToUse:   c.PointsToUse(),
		Discount:      c.Discount(),
	})
}

// GetSelection returns the persisted checkout discount selection.
func GetSelection(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cache, ok := cacheForRequest(w, r)
	if !ok {
		return
	}
	respondWithSelection(w, cache)
}

// ApplySelection updates any of the three fields; a null coupon clears it.
func ApplySelection(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload struct {
		AppliedCoupon *Coupon  `json:"appliedCoupon"`
		ClearCoupon   bool     `json:"clearCoupon,omitempty"`
		PointsToUse   *int     `json:"pointsToUse,omitempty"`
		Discount      *float64 `json:"discount,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	cache, ok := cacheForRequest(w, r)
	if !ok {
		return
	}

	if payload.ClearCoupon {
		cache.SetAppliedCoupon(nil)
	} else if payload.AppliedCoupon != nil {
		cache.SetAppliedCoupon(payload.AppliedCoupon)
	}
	if payload.PointsToUse != nil {
		cache.SetPointsToUse(*payload.PointsToUse)
	}
	if payload.Discount != nil {
		cache.SetDiscount(*payload.Discount)
	}

	respondWithSelection(w, cache)
}
