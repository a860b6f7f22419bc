package orders

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"nutriva/cart"
	"nutriva/coupon"
	"nutriva/db"
	"nutriva/models"
	"nutriva/mq"
	"nutriva/rewards"
	"nutriva/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PlaceOrder drains the cart into a finalized order. The coupon and points
// from the checkout cache are revalidated server-side here; whatever the
// client cached is advisory only.
func PlaceOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		AddressID string `json:"addressId"`
		PaymentID string `json:"paymentId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	remote := cart.NewMongoRemote()
	lines, err := remote.Fetch(ctx, userID)
	if err != nil {
		log.Println("PlaceOrder cart fetch error:", err)
		http.Error(w, "Could not read cart", http.StatusInternalServerError)
		return
	}
	if len(lines) == 0 {
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	}

	items := make([]models.OrderItem, 0, len(lines))
	subtotal := 0.0
	for _, line := range lines {
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Product.Price,
			Product:   line.Product,
		})
		subtotal += line.Product.Price * float64(line.Quantity)
	}

	order := models.Order{
		OrderID:   uuid.NewString(),
		UserID:    userID,
		Items:     items,
		Subtotal:  subtotal,
		Status:    "pending",
		CreatedAt: time.Now(),
	}

	// Checkout cache holds the client's selection; terms are re-checked
	// against the coupons collection before anything is discounted.
	cache := coupon.NewCheckoutCache(coupon.NewRedisStorage(), userID)
	discount := 0.0
	if applied := cache.AppliedCoupon(); applied != nil {
		if fresh, err := coupon.Lookup(ctx, applied.Code); err == nil {
			if ok, _ := fresh.Check(subtotal); ok {
				discount = fresh.DiscountFor(subtotal)
				order.CouponCode = fresh.Code
			}
		}
	}

	pointsUsed := cache.PointsToUse()
	if balance := rewards.Balance(ctx, userID); pointsUsed > balance {
		pointsUsed = balance
	}
	pointsValue := float64(pointsUsed) * rewards.PointValue
	if pointsValue > subtotal-discount {
		pointsValue = subtotal - discount
		pointsUsed = rewards.PointsForValue(pointsValue)
	}

	order.Discount = discount + pointsValue
	order.PointsUsed = pointsUsed
	order.TotalAmount = subtotal - order.Discount
	if order.TotalAmount < 0 {
		order.TotalAmount = 0
	}

	if payload.AddressID != "" {
		var addr models.Address
		err := db.AddressCollection.FindOne(ctx, bson.M{"addressId": payload.AddressID, "userId": userID}).Decode(&addr)
		if err != nil {
			http.Error(w, "Address not found", http.StatusBadRequest)
			return
		}
		order.ShippingAddress = &addr
	}
	if payload.PaymentID != "" {
		var pm models.PaymentMethod
		err := db.PaymentCollection.FindOne(ctx, bson.M{"paymentId": payload.PaymentID, "userId": userID}).Decode(&pm)
		if err != nil {
			http.Error(w, "Payment method not found", http.StatusBadRequest)
			return
		}
		order.PaymentMethod = pm.Brand + " •••• " + pm.Last4
	}

	if _, err := db.OrderCollection.InsertOne(ctx, order); err != nil {
		log.Println("PlaceOrder InsertOne error:", err)
		http.Error(w, "Order creation failed", http.StatusInternalServerError)
		return
	}

	if err := rewards.Redeem(ctx, userID, pointsUsed); err != nil {
		log.Println("PlaceOrder points redemption error:", err)
	}
	if err := remote.DeleteAll(ctx, userID); err != nil {
		log.Println("PlaceOrder cart cleanup error:", err)
	}
	cache.Clear()

	mq.EmitOrderPlaced(ctx, mq.OrderEvent{
		OrderID:   order.OrderID,
		UserID:    order.UserID,
		Total:     order.TotalAmount,
		CreatedAt: order.CreatedAt,
	})

	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// GetOrders lists the caller's orders, newest first.
func GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := db.OrderCollection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		log.Println("GetOrders Find error:", err)
		http.Error(w, "Could not retrieve orders", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var list []models.Order
	if err := cursor.All(ctx, &list); err != nil {
		http.Error(w, "Error reading orders", http.StatusInternalServerError)
		return
	}
	if len(list) == 0 {
		list = []models.Order{}
	}

	utils.RespondWithJSON(w, http.StatusOK, list)
}

func GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var order models.Order
	err := db.OrderCollection.FindOne(ctx, bson.M{"orderId": ps.ByName("orderid"), "userId": userID}).Decode(&order)
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, order)
}

var validStatuses = map[string]bool{
	"pending": true, "paid": true, "shipped": true, "delivered": true, "cancelled": true,
}

// UpdateOrderStatus is admin-only (enforced at the route).
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || !validStatuses[payload.Status] {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	res, err := db.OrderCollection.UpdateOne(ctx,
		bson.M{"orderId": ps.ByName("orderid")},
		bson.M{"$set": bson.M{"status": payload.Status}},
	)
	if err != nil {
		log.Println("UpdateOrderStatus error:", err)
		http.Error(w, "Failed to update order", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": payload.Status})
}
