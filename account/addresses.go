package account

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"nutriva/db"
	"nutriva/models"
	"nutriva/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

func GetAddresses(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	cursor, err := db.AddressCollection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		log.Println("GetAddresses Find error:", err)
		http.Error(w, "Could not retrieve addresses", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var addresses []models.Address
	if err := cursor.All(ctx, &addresses); err != nil {
		http.Error(w, "Error reading addresses", http.StatusInternalServerError)
		return
	}
	if len(addresses) == 0 {
		addresses = []models.Address{}
	}

	utils.RespondWithJSON(w, http.StatusOK, addresses)
}

func CreateAddress(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var addr models.Address
	if err := json.NewDecoder(r.Body).Decode(&addr); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if addr.Name == "" || addr.Line1 == "" || addr.City == "" || addr.PostalCode == "" || addr.Country == "" {
		http.Error(w, "Missing required address fields", http.StatusBadRequest)
		return
	}

	addr.AddressID = uuid.NewString()
	addr.UserID = userID

	if addr.IsDefault {
		clearDefaultAddress(ctx, userID)
	}

	if _, err := db.AddressCollection.InsertOne(ctx, addr); err != nil {
		log.Println("CreateAddress InsertOne error:", err)
		http.Error(w, "Failed to save address", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, addr)
}

func UpdateAddress(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var addr models.Address
	if err := json.NewDecoder(r.Body).Decode(&addr); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if addr.IsDefault {
		clearDefaultAddress(ctx, userID)
	}

	res, err := db.AddressCollection.UpdateOne(ctx,
		bson.M{"addressId": ps.ByName("addressid"), "userId": userID},
		bson.M{"$set": bson.M{
			"name": addr.Name, "line1": addr.Line1, "line2": addr.Line2,
			"city": addr.City, "state": addr.State, "postalCode": addr.PostalCode,
			"country": addr.Country, "phone": addr.Phone, "isDefault": addr.IsDefault,
		}},
	)
	if err != nil {
		log.Println("UpdateAddress error:", err)
		http.Error(w, "Failed to update address", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Address not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func DeleteAddress(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	res, err := db.AddressCollection.DeleteOne(ctx, bson.M{"addressId": ps.ByName("addressid"), "userId": userID})
	if err != nil {
		log.Println("DeleteAddress error:", err)
		http.Error(w, "Failed to delete address", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Address not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func clearDefaultAddress(ctx context.Context, userID string) {
	_, err := db.AddressCollection.UpdateMany(ctx,
		bson.M{"userId": userID, "isDefault": true},
		bson.M{"$set": bson.M{"isDefault": false}},
	)
	if err != nil {
		log.Println("clearDefaultAddress error:", err)
	}
}
