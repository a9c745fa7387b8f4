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

	"github.com/shashiranjanraj/vastra/app/catalog"
	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/apperr"
	"github.com/shashiranjanraj/vastra/pkg/database"
	"github.com/shashiranjanraj/vastra/pkg/metrics"
)

// MongoProductRepository implements ProductRepository on the products
// collection.
type MongoProductRepository struct{}

func NewProductRepository() *MongoProductRepository {
	return &MongoProductRepository{}
}

func (r *MongoProductRepository) col() *mongo.Collection {
	return database.Collection(database.ColProducts)
}

func (r *MongoProductRepository) Find(ctx context.Context, predicate bson.M, params catalog.FindParams) ([]models.Product, error) {
	defer metrics.ObserveStoreOp(database.ColProducts, "find", time.Now())
	opts := options.Find().SetLimit(params.Limit).SetSkip(params.Offset)
	if params.Sort != nil {
		opts.SetSort(params.Sort)
	}

	cursor, err := r.col().Find(ctx, predicate, opts)
	if err != nil {
		return nil, fmt.Errorf("products: find: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("products: decode: %w", err)
	}
	return products, nil
}

func (r *MongoProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var p models.Product
	err := r.col().FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("product", id.Hex())
	}
	if err != nil {
		return nil, fmt.Errorf("products: find one: %w", err)
	}
	return &p, nil
}

func (r *MongoProductRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	return findByIDs[models.Product](ctx, r.col(), ids)
}

func (r *MongoProductRepository) Insert(ctx context.Context, p *models.Product) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	res, err := r.col().InsertOne(ctx, p)
	if err != nil {
		return fmt.Errorf("products: insert: %w", err)
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoProductRepository) AppendImage(ctx context.Context, productID, imageID primitive.ObjectID) error {
	return r.appendRef(ctx, productID, "image_ids", imageID)
}

func (r *MongoProductRepository) AppendReview(ctx context.Context, productID, reviewID primitive.ObjectID) error {
	return r.appendRef(ctx, productID, "review_ids", reviewID)
}

func (r *MongoProductRepository) appendRef(ctx context.Context, productID primitive.ObjectID, field string, ref primitive.ObjectID) error {
	defer metrics.ObserveStoreOp(database.ColProducts, "update", time.Now())
	res, err := r.col().UpdateOne(ctx,
		bson.M{"_id": productID},
		bson.M{"$addToSet": bson.M{field: ref}},
	)
	if err != nil {
		return fmt.Errorf("products: append %s: %w", field, err)
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("product", productID.Hex())
	}
	return nil
}

// findByIDs batch-reads documents by _id. Missing ids are skipped, never an
// error — relation expansion relies on that.
func findByIDs[T any](ctx context.Context, col *mongo.Collection, ids []primitive.ObjectID) ([]T, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("%s: find by ids: %w", col.Name(), err)
	}
	defer cursor.Close(ctx)

	var out []T
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", col.Name(), err)
	}
	return out, nil
}
