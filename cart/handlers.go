package cart

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"nutriva/utils"

	"github.com/julienschmidt/httprouter"
)

// cartView is what the storefront renders: the joined lines plus the derived
// totals, recomputed on every response.
type cartView struct {
	Items      interface{} `json:"items"`
	TotalItems int         `json:"totalItems"`
	TotalPrice float64     `json:"totalPrice"`
}

func storeForRequest(ctx context.Context, r *http.Request) (*Store, bool) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		return nil, false
	}
	store := NewStore(NewMongoRemote(), userID)
	store.Load(ctx)
	return store, true
}

func respondWithCart(w http.ResponseWriter, store *Store) {
	items := store.Items()
	utils.RespondWithJSON(w, http.StatusOK, cartView{
		Items:      items,
		TotalItems: store.TotalItems(),
		TotalPrice: store.TotalPrice(),
	})
}

// GetCart returns the user's cart lines with derived totals.
func GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	store, ok := storeForRequest(ctx, r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	respondWithCart(w, store)
}

// AddToCart accumulates quantity: the store's upsert overwrites on conflict,
// so the handler reads the current quantity first and sends the sum.
func AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("AddToCart decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if payload.ProductID == "" {
		http.Error(w, "Missing productId", http.StatusBadRequest)
		return
	}
	if payload.Quantity < 1 {
		payload.Quantity = 1
	}

	store, ok := storeForRequest(ctx, r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	current := 0
	for _, line := range store.Items() {
		if line.ProductID == payload.ProductID {
			current = line.Quantity
			break
		}
	}
	store.Add(ctx, payload.ProductID, current+payload.Quantity)

	respondWithCart(w, store)
}

// UpdateCartItem sets an exact quantity; zero or less removes the row.
func UpdateCartItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("UpdateCartItem decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	store, ok := storeForRequest(ctx, r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	store.UpdateQuantity(ctx, ps.ByName("productid"), payload.Quantity)
	respondWithCart(w, store)
}

func RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	store, ok := storeForRequest(ctx, r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	store.Remove(ctx, ps.ByName("productid"))
	respondWithCart(w, store)
}

func ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	store, ok := storeForRequest(ctx, r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	store.Clear(ctx)
	respondWithCart(w, store)
}
