package admin

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"nutriva/db"
	"nutriva/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// GrantAdminRole is the privileged role-grant operation. It adds "admin" to
// the target user's role set; granting twice is a no-op thanks to $addToSet.
func GrantAdminRole(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		UserID string `json:"userid"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.UserID == "" {
		http.Error(w, "userid is required", http.StatusBadRequest)
		return
	}

	res, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": payload.UserID},
		bson.M{"$addToSet": bson.M{"role": "admin"}},
	)
	if err != nil {
		log.Println("GrantAdminRole error:", err)
		http.Error(w, "Failed to grant role", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "granted"})
}

// RevokeAdminRole removes the admin role from a user.
func RevokeAdminRole(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		UserID string `json:"userid"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.UserID == "" {
		http.Error(w, "userid is required", http.StatusBadRequest)
		return
	}

	res, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": payload.UserID},
		bson.M{"$pull": bson.M{"role": "admin"}},
	)
	if err != nil {
		log.Println("RevokeAdminRole error:", err)
		http.Error(w, "Failed to revoke role", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "revoked"})
}

// GetDashboardStats gives the admin console its landing numbers.
func GetDashboardStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orders, err := db.OrderCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Println("GetDashboardStats orders count error:", err)
	}
	products, _ := db.ProductCollection.CountDocuments(ctx, bson.M{})
	users, _ := db.UserCollection.CountDocuments(ctx, bson.M{})
	pending, _ := db.ContactCollection.CountDocuments(ctx, bson.M{"status": "new"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]int64{
		"orders":         orders,
		"products":       products,
		"users":          users,
		"newSubmissions": pending,
	})
}

// timestamp helper shared by the seeders
func daysAgo(n int) time.Time {
	return time.Now().AddDate(0, 0, -n)
}
