// Package repositories is the document store gateway. Interfaces here are
// what the services program against; the Mongo-backed implementations live
// alongside. Every write on carts, wishlists and reviews is atomic at
// single-document granularity — no multi-document transactions.
package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/catalog"
	"github.com/shashiranjanraj/vastra/app/models"
)

// ErrItemExists is returned by CartRepository.InsertItem when a line item for
// the product already exists (including a concurrent insert losing the race
// on the unique user_id index). Callers retry with IncrementItem.
var ErrItemExists = errors.New("cart line item already exists")

// ProductRepository reads the product catalogue.
type ProductRepository interface {
	// Find runs a compiled predicate with pagination and ordering.
	Find(ctx context.Context, predicate bson.M, params catalog.FindParams) ([]models.Product, error)

	// FindByID returns one product, or ErrNotFound.
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)

	// FindByIDs batch-reads products; missing ids are silently skipped.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)

	// Insert stores a new product, assigning its id.
	Insert(ctx context.Context, p *models.Product) error

	// AppendImage links an image to the product ($addToSet, idempotent).
	AppendImage(ctx context.Context, productID, imageID primitive.ObjectID) error

	// AppendReview links a review to the product ($addToSet, idempotent —
	// the review upsert calls this on every write).
	AppendReview(ctx context.Context, productID, reviewID primitive.ObjectID) error
}

// CategoryRepository batch-reads categories for relation expansion.
type CategoryRepository interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Category, error)
}

// ImageRepository stores product image documents; the blobs themselves live
// behind pkg/storage.
type ImageRepository interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.ProductImage, error)
	Insert(ctx context.Context, img *models.ProductImage) error
}

// UserRepository handles account documents.
type UserRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, u *models.User) error
}

// CartRepository exposes the atomic per-field primitives the cart merge
// engine is built on. The naive load-whole-document/mutate/save cycle is
// deliberately absent: it loses increments under concurrency.
type CartRepository interface {
	// Get returns the user's cart, or an empty cart value when none exists
	// yet. The empty value is not persisted.
	Get(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error)

	// IncrementItem atomically adds by to the quantity of an existing line
	// item. Returns false when no such line item matched.
	IncrementItem(ctx context.Context, userID, productID primitive.ObjectID, by int) (bool, error)

	// InsertItem atomically appends a new line item, creating the cart
	// document if needed. Returns ErrItemExists when a line item for the
	// product is already present.
	InsertItem(ctx context.Context, userID, productID primitive.ObjectID, quantity int) error

	// RemoveItem strips any line item matching productID. A no-op when the
	// product is not in the cart.
	RemoveItem(ctx context.Context, userID, productID primitive.ObjectID) error

	// Clear empties the cart, used when an order snapshots it.
	Clear(ctx context.Context, userID primitive.ObjectID) error
}

// WishlistRepository applies set-semantics membership updates.
type WishlistRepository interface {
	// Get returns the user's wishlist, or an empty value when none exists.
	Get(ctx context.Context, userID primitive.ObjectID) (*models.Wishlist, error)

	// Add appends productID if absent (idempotent), creating the document
	// if needed.
	Add(ctx context.Context, userID, productID primitive.ObjectID) error

	// Remove strips all occurrences of productID. A no-op when absent.
	Remove(ctx context.Context, userID, productID primitive.ObjectID) error
}

// ReviewRepository enforces at-most-one review per (user, product).
type ReviewRepository interface {
	// Upsert creates the review or overwrites review text and score in
	// place, returning the resulting document.
	Upsert(ctx context.Context, r models.Review) (*models.Review, error)

	// FindByIDs batch-reads reviews for relation expansion.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Review, error)

	// FindByProduct lists reviews for one product.
	FindByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.Review, error)
}

// AddressRepository handles the user's address book.
type AddressRepository interface {
	Insert(ctx context.Context, a *models.Address) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Address, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Address, error)
	Delete(ctx context.Context, userID, id primitive.ObjectID) error
}

// OrderRepository stores cart snapshots created at checkout.
type OrderRepository interface {
	Insert(ctx context.Context, o *models.Order) error
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
}
