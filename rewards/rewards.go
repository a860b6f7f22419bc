package rewards

import (
	"context"
	"log"
	"math"
	"net/http"
	"time"

	"nutriva/db"
	"nutriva/models"
	"nutriva/mq"
	"nutriva/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PointValue is the currency value of one loyalty point at redemption.
const PointValue = 0.01

// PointsForValue converts a currency amount back into whole points. Rounds
// rather than truncates so float error in value/PointValue cannot drop a
// point (0.29/0.01 evaluates just below 29).
func PointsForValue(value float64) int {
	return int(math.Round(value / PointValue))
}

// GetBalance returns the caller's points balance; a missing row is zero.
func GetBalance(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var reward models.Reward
	err := db.RewardCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&reward)
	if err == mongo.ErrNoDocuments {
		reward = models.Reward{UserID: userID, Points: 0}
	} else if err != nil {
		log.Println("GetBalance error:", err)
		http.Error(w, "Could not retrieve rewards", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, reward)
}

// Balance reads the points balance for order placement.
func Balance(ctx context.Context, userID string) int {
	var reward models.Reward
	err := db.RewardCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&reward)
	if err != nil {
		return 0
	}
	return reward.Points
}

// Redeem deducts spent points. Caller is responsible for capping the amount
// against the current balance first.
func Redeem(ctx context.Context, userID string, points int) error {
	if points <= 0 {
		return nil
	}
	_, err := db.RewardCollection.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{
			"$inc": bson.M{"points": -points},
			"$set": bson.M{"updatedAt": time.Now()},
		},
	)
	return err
}

// StartAccrualWorker consumes order events and credits one point per whole
// currency unit spent. Runs until ctx is cancelled.
func StartAccrualWorker(ctx context.Context) {
	log.Println("[rewards] accrual worker listening for order events")
	for event := range mq.SubscribeOrders(ctx) {
		earned := int(event.Total)
		if earned <= 0 {
			continue
		}
		opts := options.Update().SetUpsert(true)
		_, err := db.RewardCollection.UpdateOne(ctx,
			bson.M{"userId": event.UserID},
			bson.M{
				"$inc": bson.M{"points": earned},
				"$set": bson.M{"updatedAt": time.Now()},
			},
			opts,
		)
		if err != nil {
			log.Printf("[rewards] accrual failed for order %s: %v", event.OrderID, err)
			continue
		}
		log.Printf("[rewards] credited %d points to %s for order %s", earned, event.UserID, event.OrderID)
	}
}
