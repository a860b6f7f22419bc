package models

type Address struct {
	AddressID  string `json:"addressId" bson:"addressId"`
	UserID     string `json:"userId" bson:"userId"`
	Name       string `json:"name" bson:"name"`
	Line1      string `json:"line1" bson:"line1"`
	Line2      string `json:"line2,omitempty" bson:"line2,omitempty"`
	City       string `json:"city" bson:"city"`
	State      string `json:"state,omitempty" bson:"state,omitempty"`
	PostalCode string `json:"postalCode" bson:"postalCode"`
	Country    string `json:"country" bson:"country"`
	Phone      string `json:"phone,omitempty" bson:"phone,omitempty"`
	IsDefault  bool   `json:"isDefault,omitempty" bson:"isDefault,omitempty"`
}
