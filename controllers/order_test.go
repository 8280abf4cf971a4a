package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestOrderUpdateIsPartial(t *testing.T) {
	qty := 3
	set := orderUpdate(orderUpdateRequest{Quantity: &qty, Phone: "555-0101"})
	assert.Equal(t, bson.M{"quantity": 3, "phone": "555-0101"}, set)

	assert.Empty(t, orderUpdate(orderUpdateRequest{}))

	// An explicit zero quantity is still an update.
	zero := 0
	set = orderUpdate(orderUpdateRequest{Quantity: &zero})
	assert.Equal(t, bson.M{"quantity": 0}, set)
}
