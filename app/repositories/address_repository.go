package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/apperr"
	"github.com/shashiranjanraj/vastra/pkg/database"
)

// MongoAddressRepository implements AddressRepository on the addresses
// collection.
type MongoAddressRepository struct{}

func NewAddressRepository() *MongoAddressRepository {
	return &MongoAddressRepository{}
}

func (r *MongoAddressRepository) col() *mongo.Collection {
	return database.Collection(database.ColAddresses)
}

func (r *MongoAddressRepository) Insert(ctx context.Context, a *models.Address) error {
	res, err := r.col().InsertOne(ctx, a)
	if err != nil {
		return fmt.Errorf("addresses: insert: %w", err)
	}
	a.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoAddressRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Address, error) {
	var a models.Address
	err := r.col().FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("address", id.Hex())
	}
	if err != nil {
		return nil, fmt.Errorf("addresses: find one: %w", err)
	}
	return &a, nil
}

func (r *MongoAddressRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Address, error) {
	cursor, err := r.col().Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("addresses: list: %w", err)
	}
	defer cursor.Close(ctx)

	var addresses []models.Address
	if err := cursor.All(ctx, &addresses); err != nil {
		return nil, fmt.Errorf("addresses: decode: %w", err)
	}
	return addresses, nil
}

func (r *MongoAddressRepository) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	// Scoped by user_id so one user can never delete another's address.
	_, err := r.col().DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("addresses: delete: %w", err)
	}
	return nil
}
