// controllers/chart.go
package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ChartController produces the daily sales series for dashboards
type ChartController struct {
	OrderCollection *mongo.Collection
}

// NewChartController creates a new ChartController
func NewChartController(client *mongo.Client) *ChartController {
	return &ChartController{
		OrderCollection: client.Database("mediHub-store").Collection("orders"),
	}
}

// dailySalesPipeline groups orders into calendar-day buckets derived from
// the ObjectID timestamp and emits per-day order count and quantity/price
// sums, newest day first. A non-nil match is prepended to scope the series.
func dailySalesPipeline(match bson.D) mongo.Pipeline {
	pipeline := mongo.Pipeline{}
	if match != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "date", Value: bson.D{{Key: "$dateToString", Value: bson.D{
				{Key: "format", Value: "%Y-%m-%d"},
				{Key: "date", Value: bson.D{{Key: "$toDate", Value: "$_id"}}},
			}}}},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$date"},
			{Key: "order", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "quantity", Value: bson.D{{Key: "$sum", Value: "$quantity"}}},
			{Key: "price", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "date", Value: "$_id"},
			{Key: "order", Value: 1},
			{Key: "quantity", Value: 1},
			{Key: "price", Value: 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "date", Value: -1}}}},
	)
	return pipeline
}

func (cc *ChartController) runPipeline(w http.ResponseWriter, pipeline mongo.Pipeline) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cursor, err := cc.OrderCollection.Aggregate(ctx, pipeline)
	if err != nil {
		http.Error(w, "Error aggregating orders", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var results []bson.M
	if err := cursor.All(ctx, &results); err != nil {
		http.Error(w, "Error reading aggregation", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

// AdminChart returns the daily sales series over all orders (Admin only)
func (cc *ChartController) AdminChart(w http.ResponseWriter, r *http.Request) {
	cc.runPipeline(w, dailySalesPipeline(nil))
}

// SellerChart returns the daily sales series for one seller (Seller only)
func (cc *ChartController) SellerChart(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	match := bson.D{{Key: "seller_email", Value: params["email"]}}
	cc.runPipeline(w, dailySalesPipeline(match))
}
