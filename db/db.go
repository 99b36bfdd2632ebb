package db

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection      *mongo.Collection
	AdminCollection     *mongo.Collection
	ProductCollection   *mongo.Collection
	CategoryCollection  *mongo.Collection
	CartCollection      *mongo.Collection
	OrderCollection     *mongo.Collection
	PaymentCollection   *mongo.Collection
	ShippingCollection  *mongo.Collection
	DiscountCollection  *mongo.Collection
	ReviewsCollection   *mongo.Collection
	InventoryCollection *mongo.Collection
	SliderCollection    *mongo.Collection
	Client              *mongo.Client
)

// Init connects to MongoDB and binds the per-resource collections.
func Init() {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	Client, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("shopdb")
	UserCollection = database.Collection("users")
	AdminCollection = database.Collection("admins")
	ProductCollection = database.Collection("products")
	CategoryCollection = database.Collection("categories")
	CartCollection = database.Collection("carts")
	OrderCollection = database.Collection("orders")
	PaymentCollection = database.Collection("payments")
	ShippingCollection = database.Collection("shippings")
	DiscountCollection = database.Collection("discounts")
	ReviewsCollection = database.Collection("reviews")
	InventoryCollection = database.Collection("inventory")
	SliderCollection = database.Collection("sliders")

	ensureIndexes(ctx)
}

// ensureIndexes backs the invariants handlers rely on: one cart per
// user and one review per user per product.
func ensureIndexes(ctx context.Context) {
	_, err := CartCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("cart index: %v", err)
	}

	_, err = ReviewsCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "product", Value: 1}, {Key: "user", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("review index: %v", err)
	}
}
