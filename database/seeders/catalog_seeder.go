package seeders

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/database"
)

func init() {
	Register("categories", SeedCategories)
	Register("products", SeedProducts)
}

var seedCategories = []models.Category{
	{Name: "Sarees", Slug: "sarees"},
	{Name: "Kurtas", Slug: "kurtas"},
	{Name: "Lehengas", Slug: "lehengas"},
	{Name: "Dupattas", Slug: "dupattas"},
}

// SeedCategories upserts the base categories by slug, so reseeding never
// duplicates them.
func SeedCategories(ctx context.Context, db *mongo.Database) error {
	col := db.Collection(database.ColCategories)
	for _, c := range seedCategories {
		_, err := col.UpdateOne(ctx,
			bson.M{"slug": c.Slug},
			bson.M{"$set": bson.M{"name": c.Name}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("category %s: %w", c.Slug, err)
		}
	}
	return nil
}

// SeedProducts inserts a demo catalogue keyed by product code.
func SeedProducts(ctx context.Context, db *mongo.Database) error {
	categories := db.Collection(database.ColCategories)
	products := db.Collection(database.ColProducts)

	categoryBySlug := map[string]models.Category{}
	cursor, err := categories.Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	var all []models.Category
	if err := cursor.All(ctx, &all); err != nil {
		return fmt.Errorf("decode categories: %w", err)
	}
	for _, c := range all {
		categoryBySlug[c.Slug] = c
	}

	demo := []struct {
		product models.Product
		slugs   []string
	}{
		{models.Product{Name: "Banarasi Silk Saree", Code: "BSS-001", Size: "Free", Color: "Red", Price: 120, Keywords: []string{"saree", "silk", "banarasi"}}, []string{"sarees"}},
		{models.Product{Name: "Chanderi Cotton Kurta", Code: "CCK-014", Size: "M", Color: "White", Price: 42, Keywords: []string{"kurta", "cotton"}}, []string{"kurtas"}},
		{models.Product{Name: "Bridal Lehenga Set", Code: "BLS-210", Size: "S", Color: "Maroon", Price: 380, Keywords: []string{"lehenga", "bridal"}}, []string{"lehengas", "dupattas"}},
		{models.Product{Name: "Phulkari Dupatta", Code: "PHD-033", Size: "Free", Color: "Yellow", Price: 25, Keywords: []string{"dupatta", "phulkari"}}, []string{"dupattas"}},
	}

	for _, d := range demo {
		p := d.product
		p.CreatedAt = time.Now().UTC()
		for _, slug := range d.slugs {
			if c, ok := categoryBySlug[slug]; ok {
				p.CategoryIDs = append(p.CategoryIDs, c.ID)
			}
		}
		_, err := products.UpdateOne(ctx,
			bson.M{"code": p.Code},
			bson.M{"$setOnInsert": p},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("product %s: %w", p.Code, err)
		}
	}
	return nil
}
