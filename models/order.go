package models

import "time"

type OrderItem struct {
	ProductID string          `json:"productId" bson:"productId"`
	Quantity  int             `json:"quantity" bson:"quantity"`
	Price     float64         `json:"price" bson:"price"` // unit price at purchase time
	Product   ProductSnapshot `json:"product" bson:"product"`
}

// Order is a finalized order. TotalAmount is stored as computed at placement
// time; the invoice renderer re-sums items for its subtotal line.
type Order struct {
	OrderID         string      `json:"orderId" bson:"orderId"`
	UserID          string      `json:"userId" bson:"userId"`
	Items           []OrderItem `json:"items" bson:"items"`
	Subtotal        float64     `json:"subtotal" bson:"subtotal"`
	Discount        float64     `json:"discount,omitempty" bson:"discount,omitempty"`
	PointsUsed      int         `json:"pointsUsed,omitempty" bson:"pointsUsed,omitempty"`
	TotalAmount     float64     `json:"totalAmount" bson:"totalAmount"`
	Status          string      `json:"status" bson:"status"` // pending, paid, shipped, delivered, cancelled
	CouponCode      string      `json:"couponCode,omitempty" bson:"couponCode,omitempty"`
	PaymentMethod   string      `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	ShippingAddress *Address    `json:"shippingAddress,omitempty" bson:"shippingAddress,omitempty"`
	CreatedAt       time.Time   `json:"createdAt" bson:"createdAt"`
}
