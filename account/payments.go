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

func GetPaymentMethods(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	cursor, err := db.PaymentCollection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		log.Println("GetPaymentMethods Find error:", err)
		http.Error(w, "Could not retrieve payment methods", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var methods []models.PaymentMethod
	if err := cursor.All(ctx, &methods); err != nil {
		http.Error(w, "Error reading payment methods", http.StatusInternalServerError)
		return
	}
	if len(methods) == 0 {
		methods = []models.PaymentMethod{}
	}

	utils.RespondWithJSON(w, http.StatusOK, methods)
}

func CreatePaymentMethod(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var pm models.PaymentMethod
	if err := json.NewDecoder(r.Body).Decode(&pm); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if pm.Brand == "" || len(pm.Last4) != 4 || pm.ExpMonth < 1 || pm.ExpMonth > 12 {
		http.Error(w, "Missing or invalid card fields", http.StatusBadRequest)
		return
	}

	pm.PaymentID = uuid.NewString()
	pm.UserID = userID
	pm.CreatedAt = time.Now()

	if pm.IsDefault {
		_, err := db.PaymentCollection.UpdateMany(ctx,
			bson.M{"userId": userID, "isDefault": true},
			bson.M{"$set": bson.M{"isDefault": false}},
		)
		if err != nil {
			log.Println("CreatePaymentMethod default reset error:", err)
		}
	}

	if _, err := db.PaymentCollection.InsertOne(ctx, pm); err != nil {
		log.Println("CreatePaymentMethod InsertOne error:", err)
		http.Error(w, "Failed to save payment method", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, pm)
}

func DeletePaymentMethod(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	res, err := db.PaymentCollection.DeleteOne(ctx, bson.M{"paymentId": ps.ByName("paymentid"), "userId": userID})
	if err != nil {
		log.Println("DeletePaymentMethod error:", err)
		http.Error(w, "Failed to delete payment method", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Payment method not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
