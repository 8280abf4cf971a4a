package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is a pending purchase line created by a customer. It is removed
// on settlement or cancellation; its ObjectID timestamp doubles as the
// day bucket for the sales charts.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CustomerEmail string             `bson:"customer_email" json:"customer_email"`
	SellerEmail   string             `bson:"seller_email" json:"seller_email"`
	Name          string             `bson:"name" json:"name"`
	Quantity      int                `bson:"quantity" json:"quantity"`
	Address       string             `bson:"address" json:"address"`
	Phone         string             `bson:"phone" json:"phone"`
	Price         float64            `bson:"price" json:"price"`
}

// OrderListEntry is an append-only snapshot of an order taken when the
// customer submits it to the order list. No update or delete is exposed.
type OrderListEntry struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CustomerEmail string             `bson:"customer_email" json:"customer_email"`
	SellerEmail   string             `bson:"seller_email" json:"seller_email"`
	Name          string             `bson:"name" json:"name"`
	Quantity      int                `bson:"quantity" json:"quantity"`
	Address       string             `bson:"address" json:"address"`
	Phone         string             `bson:"phone" json:"phone"`
	Price         float64            `bson:"price" json:"price"`
	SubmittedAt   time.Time          `bson:"submitted_at" json:"submitted_at"`
}
