package admin

import (
	"context"
	"log"
	"net/http"
	"time"

	"nutriva/coupon"
	"nutriva/db"
	"nutriva/models"
	"nutriva/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

var sampleProducts = []models.Product{
	{Name: "Whey Protein Isolate 1kg", Category: "protein", Price: 34.99, Stock: 120, Featured: true,
		Description: "Fast-absorbing whey isolate, 27g protein per serving."},
	{Name: "Creatine Monohydrate 500g", Category: "performance", Price: 18.50, Stock: 200,
		Description: "Micronized creatine monohydrate, unflavoured."},
	{Name: "Omega-3 Fish Oil 120 caps", Category: "vitamins", Price: 12.00, Stock: 80,
		Description: "1000mg fish oil softgels with EPA and DHA."},
	{Name: "Vitamin D3 4000IU", Category: "vitamins", Price: 8.75, Stock: 150,
		Description: "High-strength D3 for immune and bone support."},
	{Name: "Pre-Workout Citrus Blast", Category: "performance", Price: 24.99, Stock: 60, Featured: true,
		Description: "Caffeine, beta-alanine and citrulline blend."},
	{Name: "Magnesium Glycinate 90 caps", Category: "vitamins", Price: 11.25, Stock: 95,
		Description: "Gentle, highly bioavailable magnesium."},
}

// SeedProducts loads the sample catalog. Existing products keep their data;
// seeding is an upsert by name so reruns are safe.
func SeedProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	seeded := 0
	for i, p := range sampleProducts {
		count, err := db.ProductCollection.CountDocuments(ctx, bson.M{"name": p.Name})
		if err != nil {
			log.Println("SeedProducts count error:", err)
			http.Error(w, "Seeding failed", http.StatusInternalServerError)
			return
		}
		if count > 0 {
			continue
		}

		p.ProductID = uuid.NewString()
		p.CreatedAt = daysAgo(len(sampleProducts) - i)
		if _, err := db.ProductCollection.InsertOne(ctx, p); err != nil {
			log.Println("SeedProducts insert error:", err)
			http.Error(w, "Seeding failed", http.StatusInternalServerError)
			return
		}
		seeded++
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]int{"seeded": seeded})
}

var sampleCoupons = []coupon.Coupon{
	{Code: "welcome10", Kind: coupon.KindPercentage, Value: 10, Active: true},
	{Code: "bulk5", Kind: coupon.KindFixed, Value: 5, MinSpend: 50, Active: true},
	{Code: "summer20", Kind: coupon.KindPercentage, Value: 20, MinSpend: 75, Active: true},
}

// SeedCoupons loads sample coupon codes, all expiring 90 days out.
func SeedCoupons(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	seeded := 0
	for _, c := range sampleCoupons {
		count, err := db.CouponCollection.CountDocuments(ctx, bson.M{"code": c.Code})
		if err != nil {
			log.Println("SeedCoupons count error:", err)
			http.Error(w, "Seeding failed", http.StatusInternalServerError)
			return
		}
		if count > 0 {
			continue
		}

		c.ExpiresAt = time.Now().AddDate(0, 0, 90)
		if _, err := db.CouponCollection.InsertOne(ctx, c); err != nil {
			log.Println("SeedCoupons insert error:", err)
			http.Error(w, "Seeding failed", http.StatusInternalServerError)
			return
		}
		seeded++
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]int{"seeded": seeded})
}
