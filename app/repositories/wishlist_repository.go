package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/database"
)

// MongoWishlistRepository implements WishlistRepository on the wishlists
// collection. Adds use $addToSet so repeated adds stay idempotent.
type MongoWishlistRepository struct{}

func NewWishlistRepository() *MongoWishlistRepository {
	return &MongoWishlistRepository{}
}

func (r *MongoWishlistRepository) col() *mongo.Collection {
	return database.Collection(database.ColWishlists)
}

func (r *MongoWishlistRepository) Get(ctx context.Context, userID primitive.ObjectID) (*models.Wishlist, error) {
	var list models.Wishlist
	err := r.col().FindOne(ctx, bson.M{"user_id": userID}).Decode(&list)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &models.Wishlist{UserID: userID, Products: []primitive.ObjectID{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("wishlists: find: %w", err)
	}
	return &list, nil
}

func (r *MongoWishlistRepository) Add(ctx context.Context, userID, productID primitive.ObjectID) error {
	_, err := r.col().UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$addToSet": bson.M{"products": productID}},
		options.Update().SetUpsert(true),
	)
	if mongo.IsDuplicateKeyError(err) {
		// Lost a lazy-create race; the document now exists, retry once.
		_, err = r.col().UpdateOne(ctx,
			bson.M{"user_id": userID},
			bson.M{"$addToSet": bson.M{"products": productID}},
		)
	}
	if err != nil {
		return fmt.Errorf("wishlists: add: %w", err)
	}
	return nil
}

func (r *MongoWishlistRepository) Remove(ctx context.Context, userID, productID primitive.ObjectID) error {
	_, err := r.col().UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$pull": bson.M{"products": productID}},
	)
	if err != nil {
		return fmt.Errorf("wishlists: remove: %w", err)
	}
	return nil
}
