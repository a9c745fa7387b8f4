package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Wishlist is the per-user singleton wishlist document. Products is a set:
// adds go through $addToSet, so repeated adds are idempotent.
type Wishlist struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserID   primitive.ObjectID   `bson:"user_id" json:"user_id"`
	Products []primitive.ObjectID `bson:"products" json:"products"`
}

// Contains reports whether productID is on the list.
func (w *Wishlist) Contains(productID primitive.ObjectID) bool {
	for _, id := range w.Products {
		if id == productID {
			return true
		}
	}
	return false
}
