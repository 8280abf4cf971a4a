package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildProductFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, buildProductFilter("", ""))

	filter := buildProductFilter("asp", "")
	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 2)
	assert.Equal(t, bson.M{"$regex": "asp", "$options": "i"}, or[0]["name"])
	assert.Equal(t, bson.M{"$regex": "asp", "$options": "i"}, or[1]["company"])

	filter = buildProductFilter("", "syrup")
	assert.Equal(t, bson.M{"category": "syrup"}, filter)

	filter = buildProductFilter("asp", "syrup")
	assert.Contains(t, filter, "$or")
	assert.Equal(t, "syrup", filter["category"])
}

// The two list routes paginate differently on purpose: the generic list
// counts pages from zero, the category route from one.
func TestPaginationOffsets(t *testing.T) {
	assert.Equal(t, int64(0), listSkip(0, 10))
	assert.Equal(t, int64(20), listSkip(2, 10))
	assert.Equal(t, int64(0), listSkip(-3, 10), "negative page must not reach the driver as a negative skip")

	assert.Equal(t, int64(0), categorySkip(1, 10))
	assert.Equal(t, int64(20), categorySkip(3, 10))
}

func TestProductUpdateIsPartial(t *testing.T) {
	set := productUpdate(productUpdateRequest{Name: "Aspirin", Company: "Bayer"})
	assert.Equal(t, bson.M{"name": "Aspirin", "company": "Bayer"}, set)

	assert.Empty(t, productUpdate(productUpdateRequest{}))

	// Explicit zeros are updates: price 0 and quantity 0 are valid states.
	price := 0.0
	quantity := 0
	set = productUpdate(productUpdateRequest{Price: &price, Quantity: &quantity})
	assert.Equal(t, bson.M{"price": 0.0, "quantity": 0}, set)
}

func TestQuantityDelta(t *testing.T) {
	assert.Equal(t, -5, quantityDelta("decrease", 5))
	assert.Equal(t, 5, quantityDelta("increase", 5))
	assert.Equal(t, 5, quantityDelta("", 5))
	assert.Equal(t, 7, quantityDelta("anything-else", 7))
}
