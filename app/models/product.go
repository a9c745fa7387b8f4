package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalogue entry. Categories, images and reviews are stored as
// ObjectID references and expanded by the catalog service on read.
type Product struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"name"`
	Code        string               `bson:"code" json:"code"`
	Size        string               `bson:"size,omitempty" json:"size,omitempty"`
	Color       string               `bson:"color,omitempty" json:"color,omitempty"`
	Price       float64              `bson:"price" json:"price"`
	CategoryIDs []primitive.ObjectID `bson:"category_ids,omitempty" json:"-"`
	Keywords    []string             `bson:"keywords,omitempty" json:"keywords,omitempty"`
	ImageIDs    []primitive.ObjectID `bson:"image_ids,omitempty" json:"-"`
	ReviewIDs   []primitive.ObjectID `bson:"review_ids,omitempty" json:"-"`
	CreatedAt   time.Time            `bson:"created_at" json:"created_at"`
}

// Category groups products for browsing.
type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
	Slug string             `bson:"slug" json:"slug"`
}

// ProductImage references a stored image by storage key. The public URL is
// resolved through the storage manager when the product is served.
type ProductImage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID primitive.ObjectID `bson:"product_id" json:"product_id"`
	Key       string             `bson:"key" json:"-"`
	Alt       string             `bson:"alt,omitempty" json:"alt,omitempty"`
	URL       string             `bson:"-" json:"url"`
}

// ExpandedProduct is a product with its relations resolved. A referenced id
// with no target simply leaves the relation empty; expansion never fails the
// read.
type ExpandedProduct struct {
	Product    `bson:",inline"`
	Categories []Category       `bson:"-" json:"categories"`
	Images     []ProductImage   `bson:"-" json:"product_images"`
	Reviews    []ExpandedReview `bson:"-" json:"reviews"`
}
