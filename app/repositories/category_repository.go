package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/database"
)

// MongoCategoryRepository implements CategoryRepository.
type MongoCategoryRepository struct{}

func NewCategoryRepository() *MongoCategoryRepository {
	return &MongoCategoryRepository{}
}

func (r *MongoCategoryRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Category, error) {
	return findByIDs[models.Category](ctx, database.Collection(database.ColCategories), ids)
}

// MongoImageRepository implements ImageRepository.
type MongoImageRepository struct{}

func NewImageRepository() *MongoImageRepository {
	return &MongoImageRepository{}
}

func (r *MongoImageRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.ProductImage, error) {
	return findByIDs[models.ProductImage](ctx, database.Collection(database.ColImages), ids)
}

func (r *MongoImageRepository) Insert(ctx context.Context, img *models.ProductImage) error {
	res, err := database.Collection(database.ColImages).InsertOne(ctx, img)
	if err != nil {
		return fmt.Errorf("images: insert: %w", err)
	}
	img.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}
