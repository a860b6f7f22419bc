package invoice

import (
	"context"
	"log"
	"net/http"
	"time"

	"nutriva/db"
	"nutriva/models"
	"nutriva/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// DownloadInvoice renders the caller's order as a PDF attachment.
func DownloadInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var order models.Order
	err := db.OrderCollection.FindOne(ctx, bson.M{
		"orderId": ps.ByName("orderid"),
		"userId":  userID,
	}).Decode(&order)
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	// Email on the invoice is optional; a missing user record just leaves it blank.
	email := ""
	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user); err == nil {
		email = user.Email
	}

	pdfBytes, filename, err := Render(order, email)
	if err != nil {
		log.Println("DownloadInvoice render error:", err)
		http.Error(w, "Failed to generate invoice", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
