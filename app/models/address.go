package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Address is a delivery address owned by a single user.
type Address struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"user_id" json:"user_id"`
	Name         string             `bson:"name" json:"name"`
	AddressLine1 string             `bson:"address_line_1" json:"address_line_1"`
	AddressLine2 string             `bson:"address_line_2,omitempty" json:"address_line_2,omitempty"`
	City         string             `bson:"city" json:"city"`
	Pincode      string             `bson:"pincode" json:"pincode"`
	State        string             `bson:"state" json:"state"`
	Country      string             `bson:"country" json:"country"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
	PhoneNumber  string             `bson:"phone_number" json:"phone_number"`
}
