package models

import "time"

// PaymentMethod stores only display data. Card numbers never touch this
// service; the payment provider keeps the vaulted token.
type PaymentMethod struct {
	PaymentID string    `json:"paymentId" bson:"paymentId"`
	UserID    string    `json:"userId" bson:"userId"`
	Brand     string    `json:"brand" bson:"brand"` // visa, mastercard, amex
	Last4     string    `json:"last4" bson:"last4"`
	ExpMonth  int       `json:"expMonth" bson:"expMonth"`
	ExpYear   int       `json:"expYear" bson:"expYear"`
	IsDefault bool      `json:"isDefault,omitempty" bson:"isDefault,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
