package cart

import (
	"context"
	"time"

	"nutriva/db"
	"nutriva/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoRemote implements Remote on the shared cart collection.
type mongoRemote struct {
	carts    *mongo.Collection
	products *mongo.Collection
}

func NewMongoRemote() Remote {
	return &mongoRemote{carts: db.CartCollection, products: db.ProductCollection}
}

// Fetch joins cart rows with current product attributes. The snapshot is
// whatever the catalog holds at read time, not at add time.
func (m *mongoRemote) Fetch(ctx context.Context, userID string) ([]models.CartLine, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userID}}},
		{{Key: "$sort", Value: bson.M{"addedAt": 1}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "products",
			"localField":   "productId",
			"foreignField": "productId",
			"as":           "product",
		}}},
		{{Key: "$unwind", Value: "$product"}},
		{{Key: "$project", Value: bson.M{
			"productId": 1,
			"quantity":  1,
			"product": bson.M{
				"productId": "$product.productId",
				"name":      "$product.name",
				"price":     "$product.price",
				"imageUrl":  "$product.imageUrl",
			},
		}}},
	}

	cursor, err := m.carts.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var lines []models.CartLine
	if err := cursor.All(ctx, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Upsert overwrites quantity on conflict rather than incrementing it.
func (m *mongoRemote) Upsert(ctx context.Context, userID, productID string, quantity int) error {
	filter := bson.M{"userId": userID, "productId": productID}
	update := bson.M{
		"$set":         bson.M{"quantity": quantity, "updatedAt": time.Now()},
		"$setOnInsert": bson.M{"addedAt": time.Now()},
	}
	opts := options.Update().SetUpsert(true)
	_, err := m.carts.UpdateOne(ctx, filter, update, opts)
	return err
}

func (m *mongoRemote) Update(ctx context.Context, userID, productID string, quantity int) error {
	filter := bson.M{"userId": userID, "productId": productID}
	update := bson.M{"$set": bson.M{"quantity": quantity, "updatedAt": time.Now()}}
	_, err := m.carts.UpdateOne(ctx, filter, update)
	return err
}

func (m *mongoRemote) Delete(ctx context.Context, userID, productID string) error {
	_, err := m.carts.DeleteOne(ctx, bson.M{"userId": userID, "productId": productID})
	return err
}

func (m *mongoRemote) DeleteAll(ctx context.Context, userID string) error {
	_, err := m.carts.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}
