package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/database"
	"github.com/shashiranjanraj/vastra/pkg/metrics"
)

// MongoCartRepository implements CartRepository on the carts collection.
//
// The unique index on user_id (created at boot) is load-bearing: it turns
// the lazy-create race between two concurrent upserts into a duplicate-key
// error that InsertItem reports as ErrItemExists, and the merge loop in the
// cart service retries as an increment.
type MongoCartRepository struct{}

func NewCartRepository() *MongoCartRepository {
	return &MongoCartRepository{}
}

func (r *MongoCartRepository) col() *mongo.Collection {
	return database.Collection(database.ColCarts)
}

func (r *MongoCartRepository) Get(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := r.col().FindOne(ctx, bson.M{"user_id": userID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Carts are lazily created on first mutation; an absent document
		// reads as an empty cart.
		return &models.Cart{UserID: userID, Products: []models.CartItem{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("carts: find: %w", err)
	}
	return &cart, nil
}

func (r *MongoCartRepository) IncrementItem(ctx context.Context, userID, productID primitive.ObjectID, by int) (bool, error) {
	defer metrics.ObserveStoreOp(database.ColCarts, "update", time.Now())
	res, err := r.col().UpdateOne(ctx,
		bson.M{"user_id": userID, "products.product_id": productID},
		bson.M{"$inc": bson.M{"products.$.quantity": by}},
	)
	if err != nil {
		return false, fmt.Errorf("carts: increment item: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoCartRepository) InsertItem(ctx context.Context, userID, productID primitive.ObjectID, quantity int) error {
	// The $ne guard keeps this from appending a second line item for the
	// same product; if the item exists the filter matches nothing, the
	// upsert attempts an insert, and the unique user_id index rejects it.
	defer metrics.ObserveStoreOp(database.ColCarts, "update", time.Now())
	_, err := r.col().UpdateOne(ctx,
		bson.M{"user_id": userID, "products.product_id": bson.M{"$ne": productID}},
		bson.M{
			"$push":        bson.M{"products": models.CartItem{ProductID: productID, Quantity: quantity}},
			"$setOnInsert": bson.M{"user_id": userID},
		},
		options.Update().SetUpsert(true),
	)
	if mongo.IsDuplicateKeyError(err) {
		return ErrItemExists
	}
	if err != nil {
		return fmt.Errorf("carts: insert item: %w", err)
	}
	return nil
}

func (r *MongoCartRepository) RemoveItem(ctx context.Context, userID, productID primitive.ObjectID) error {
	_, err := r.col().UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$pull": bson.M{"products": bson.M{"product_id": productID}}},
	)
	if err != nil {
		return fmt.Errorf("carts: remove item: %w", err)
	}
	return nil
}

func (r *MongoCartRepository) Clear(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.col().UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"products": []models.CartItem{}}},
	)
	if err != nil {
		return fmt.Errorf("carts: clear: %w", err)
	}
	return nil
}
