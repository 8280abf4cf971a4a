package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestDailySalesPipelineShape(t *testing.T) {
	pipeline := dailySalesPipeline(nil)
	require.Len(t, pipeline, 4)

	addFields := pipeline[0]
	require.Equal(t, "$addFields", addFields[0].Key)

	group := pipeline[1]
	require.Equal(t, "$group", group[0].Key)
	groupDoc, ok := group[0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, "_id", groupDoc[0].Key)
	assert.Equal(t, "$date", groupDoc[0].Value)
	assert.Equal(t, "order", groupDoc[1].Key)
	assert.Equal(t, "quantity", groupDoc[2].Key)
	assert.Equal(t, "price", groupDoc[3].Key)

	project := pipeline[2]
	require.Equal(t, "$project", project[0].Key)

	sort := pipeline[3]
	require.Equal(t, "$sort", sort[0].Key)
	sortDoc, ok := sort[0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, "date", sortDoc[0].Key)
	assert.Equal(t, -1, sortDoc[0].Value)
}

func TestDailySalesPipelineSellerMatchFirst(t *testing.T) {
	match := bson.D{{Key: "seller_email", Value: "seller@example.com"}}
	pipeline := dailySalesPipeline(match)
	require.Len(t, pipeline, 5)

	first := pipeline[0]
	require.Equal(t, "$match", first[0].Key)
	matchDoc, ok := first[0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, "seller_email", matchDoc[0].Key)
	assert.Equal(t, "seller@example.com", matchDoc[0].Value)
}
