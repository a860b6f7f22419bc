package models

import "time"

// Reward is one balance row per user. Points accrue from placed orders and
// are spent through the checkout pointsToUse field.
type Reward struct {
	UserID    string    `json:"userId" bson:"userId"`
	Points    int       `json:"points" bson:"points"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
