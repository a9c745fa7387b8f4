// Package database owns the MongoDB connection and collection handles.
//
// Connect is called once at boot; it verifies the connection with a ping and
// creates the indexes the mutation engines rely on. The unique index on
// carts.user_id / wishlists.user_id is what makes lazy per-user document
// creation safe under concurrent upserts.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/vastra/config"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

// Collection names, kept in one place so repositories and seeders agree.
const (
	ColUsers      = "users"
	ColAddresses  = "addresses"
	ColProducts   = "products"
	ColCategories = "categories"
	ColImages     = "product_images"
	ColReviews    = "reviews"
	ColCarts      = "carts"
	ColWishlists  = "wishlists"
	ColOrders     = "orders"
)

// Connect opens the MongoDB connection and ensures indexes.
// Returns an error instead of calling log.Fatal so the caller can shut down
// gracefully.
func Connect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(config.MongoURI()).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(25)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return fmt.Errorf("database: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("database: ping: %w", err)
	}

	Client = client
	DB = client.Database(config.MongoDatabase())

	if err := ensureIndexes(ctx); err != nil {
		return err
	}

	return nil
}

// Disconnect closes the client. Safe to call with a nil client.
func Disconnect(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}

// Collection returns a handle on the named collection.
func Collection(name string) *mongo.Collection {
	return DB.Collection(name)
}

func ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		ColUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		ColAddresses: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
		},
		ColProducts: {
			{Keys: bson.D{{Key: "code", Value: 1}}},
			{Keys: bson.D{{Key: "price", Value: 1}}},
		},
		ColCarts: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: unique},
		},
		ColWishlists: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: unique},
		},
		ColReviews: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "product_id", Value: 1}}},
		},
		ColOrders: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
		},
	}

	for col, models := range indexes {
		if _, err := DB.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("database: ensure indexes on %s: %w", col, err)
		}
	}
	return nil
}
