package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/database"
)

// MongoReviewRepository implements ReviewRepository on the reviews
// collection. The (user_id, product_id) uniqueness is enforced by the upsert
// predicate, so create and overwrite are the same single atomic write.
type MongoReviewRepository struct{}

func NewReviewRepository() *MongoReviewRepository {
	return &MongoReviewRepository{}
}

func (r *MongoReviewRepository) col() *mongo.Collection {
	return database.Collection(database.ColReviews)
}

func (r *MongoReviewRepository) Upsert(ctx context.Context, review models.Review) (*models.Review, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var out models.Review
	err := r.col().FindOneAndUpdate(ctx,
		bson.M{"user_id": review.UserID, "product_id": review.ProductID},
		bson.M{"$set": bson.M{"review": review.Review, "score": review.Score}},
		opts,
	).Decode(&out)
	if err != nil {
		return nil, fmt.Errorf("reviews: upsert: %w", err)
	}
	return &out, nil
}

func (r *MongoReviewRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Review, error) {
	return findByIDs[models.Review](ctx, r.col(), ids)
}

func (r *MongoReviewRepository) FindByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.Review, error) {
	cursor, err := r.col().Find(ctx, bson.M{"product_id": productID})
	if err != nil {
		return nil, fmt.Errorf("reviews: find by product: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("reviews: decode: %w", err)
	}
	return reviews, nil
}
