package models

import "time"

// CartItem is one row in the cart collection, unique per (userId, productId).
type CartItem struct {
	UserID    string    `json:"userId" bson:"userId"`
	ProductID string    `json:"productId" bson:"productId"`
	Quantity  int       `json:"quantity" bson:"quantity"`
	AddedAt   time.Time `json:"addedAt" bson:"addedAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// CartLine is a cart row joined with its product snapshot at read time.
type CartLine struct {
	ProductID string          `json:"productId" bson:"productId"`
	Quantity  int             `json:"quantity" bson:"quantity"`
	Product   ProductSnapshot `json:"product" bson:"product"`
}
