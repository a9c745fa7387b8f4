package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the account model.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password" json:"-"` // bcrypt hash, never serialised
	IsInternal   bool               `bson:"is_internal" json:"is_internal"`
	ProfileImage string             `bson:"profile_image,omitempty" json:"profile_image,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
