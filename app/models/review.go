package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review holds one user's review of one product. The review upsert keeps at
// most one document per (user_id, product_id) pair.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	ProductID primitive.ObjectID `bson:"product_id" json:"product_id"`
	Review    string             `bson:"review" json:"review"`
	Score     float64            `bson:"score" json:"score"`
}

// ExpandedReview is a review with its author attached. Author stays nil when
// the referenced user no longer exists.
type ExpandedReview struct {
	Review `bson:",inline"`
	Author *User `bson:"-" json:"user,omitempty"`
}
