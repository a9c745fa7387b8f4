package seeders

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/vastra/pkg/auth"
	"github.com/shashiranjanraj/vastra/pkg/database"
)

func init() {
	Register("users", SeedUsers)
}

// SeedUsers creates the internal catalogue-management account. The password
// is for local development only.
func SeedUsers(ctx context.Context, db *mongo.Database) error {
	hash, err := auth.HashPassword("vastra-admin")
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = db.Collection(database.ColUsers).UpdateOne(ctx,
		bson.M{"email": "admin@vastra.local"},
		bson.M{"$setOnInsert": bson.M{
			"name":        "Catalogue Admin",
			"email":       "admin@vastra.local",
			"password":    hash,
			"is_internal": true,
			"created_at":  time.Now().UTC(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("admin user: %w", err)
	}
	return nil
}
