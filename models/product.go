package models

import "time"

// Product is a catalog entry. The cart and orders only ever hold snapshots
// of these fields; a live price edit does not rewrite existing snapshots.
type Product struct {
	ProductID   string    `json:"productId" bson:"productId"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Category    string    `json:"category,omitempty" bson:"category,omitempty"` // e.g. "protein", "vitamins", "pre-workout"
	Price       float64   `json:"price" bson:"price"`
	ImageURL    string    `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Stock       int       `json:"stock" bson:"stock"`
	Featured    bool      `json:"featured,omitempty" bson:"featured,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// ProductSnapshot is the subset of product fields carried inside cart lines.
type ProductSnapshot struct {
	ProductID string  `json:"productId" bson:"productId"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	ImageURL  string  `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
}
