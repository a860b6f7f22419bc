package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection    *mongo.Collection
	ProductCollection *mongo.Collection
	CartCollection    *mongo.Collection
	OrderCollection   *mongo.Collection
	AddressCollection *mongo.Collection
	PaymentCollection *mongo.Collection
	JournalCollection *mongo.Collection
	ContactCollection *mongo.Collection
	RewardCollection  *mongo.Collection
	CouponCollection  *mongo.Collection
	Client            *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	store := Client.Database("storedb")
	UserCollection = store.Collection("users")
	ProductCollection = store.Collection("products")
	CartCollection = store.Collection("cartitems")
	OrderCollection = store.Collection("orders")
	AddressCollection = store.Collection("addresses")
	PaymentCollection = store.Collection("paymentmethods")
	JournalCollection = store.Collection("journalposts")
	ContactCollection = store.Collection("contactsubmissions")
	RewardCollection = store.Collection("rewards")
	CouponCollection = store.Collection("coupons")
}
