package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is one line in a cart. Quantity is always a positive integer; the
// cart service rejects zero/negative amounts before any write.
type CartItem struct {
	ProductID primitive.ObjectID `bson:"product_id" json:"product_id"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// Cart is the per-user singleton cart document. At most one line item exists
// per distinct product; merges happen via atomic in-place increments, never
// load-mutate-save.
type Cart struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   primitive.ObjectID `bson:"user_id" json:"user_id"`
	Products []CartItem         `bson:"products" json:"products"`
}

// Item returns the line for productID, or nil.
func (c *Cart) Item(productID primitive.ObjectID) *CartItem {
	for i := range c.Products {
		if c.Products[i].ProductID == productID {
			return &c.Products[i]
		}
	}
	return nil
}
