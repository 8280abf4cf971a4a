package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Banner is a promotional image shown on the storefront. Admin-owned.
type Banner struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title string             `bson:"title" json:"title"`
	Image string             `bson:"image" json:"image"`
}
