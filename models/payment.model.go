package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a settled checkout: who paid, how much, and which
// orders the payment covered.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Price         float64            `bson:"price" json:"price"`
	TransactionID string             `bson:"transaction_id" json:"transactionId"`
	OrderIDs      []string           `bson:"order_ids" json:"orderIds"`
	PaidAt        time.Time          `bson:"paid_at" json:"paid_at"`
}
