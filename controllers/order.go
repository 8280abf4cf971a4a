// controllers/order.go
package controllers

import (
	"context"
	"encoding/json"
	"medihub-api/models"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrderController handles order and order-list requests
type OrderController struct {
	OrderCollection     *mongo.Collection
	OrderListCollection *mongo.Collection
}

// NewOrderController creates a new OrderController
func NewOrderController(client *mongo.Client) *OrderController {
	db := client.Database("mediHub-store")
	return &OrderController{
		OrderCollection:     db.Collection("orders"),
		OrderListCollection: db.Collection("orderList"),
	}
}

// CreateOrder inserts a new order line
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var order models.Order
	err := json.NewDecoder(r.Body).Decode(&order)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := oc.OrderCollection.InsertOne(ctx, order)
	if err != nil {
		http.Error(w, "Error creating order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// GetOrders retrieves a customer's orders
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	cursor, err := oc.OrderCollection.Find(ctx, bson.M{"customer_email": params["email"]})
	if err != nil {
		http.Error(w, "Error fetching orders", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	for cursor.Next(ctx) {
		var order models.Order
		if err := cursor.Decode(&order); err != nil {
			http.Error(w, "Error decoding order", http.StatusInternalServerError)
			return
		}
		orders = append(orders, order)
	}
	if err := cursor.Err(); err != nil {
		http.Error(w, "Error reading orders", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// GetSellerOrders retrieves a seller's incoming orders (Seller only)
func (oc *OrderController) GetSellerOrders(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	cursor, err := oc.OrderCollection.Find(ctx, bson.M{"seller_email": params["email"]})
	if err != nil {
		http.Error(w, "Error fetching orders", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	for cursor.Next(ctx) {
		var order models.Order
		if err := cursor.Decode(&order); err != nil {
			http.Error(w, "Error decoding order", http.StatusInternalServerError)
			return
		}
		orders = append(orders, order)
	}
	if err := cursor.Err(); err != nil {
		http.Error(w, "Error reading orders", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// orderUpdateRequest carries the patchable order line fields. Quantity is
// a pointer so an explicit zero can be distinguished from an omission.
type orderUpdateRequest struct {
	Name     string `json:"name"`
	Quantity *int   `json:"quantity"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

// orderUpdate builds the partial $set document for an order patch.
func orderUpdate(req orderUpdateRequest) bson.M {
	set := bson.M{}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Quantity != nil {
		set["quantity"] = *req.Quantity
	}
	if req.Address != "" {
		set["address"] = req.Address
	}
	if req.Phone != "" {
		set["phone"] = req.Phone
	}
	return set
}

// UpdateOrder patches an order's line fields
func (oc *OrderController) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	var req orderUpdateRequest
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	set := orderUpdate(req)
	if len(set) == 0 {
		http.Error(w, "No updatable fields provided", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := oc.OrderCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		http.Error(w, "Error updating order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// DeleteOrder cancels an order by removing it
func (oc *OrderController) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := oc.OrderCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		http.Error(w, "Error deleting order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// CreateOrderListEntry appends an order snapshot to the order list
func (oc *OrderController) CreateOrderListEntry(w http.ResponseWriter, r *http.Request) {
	var entry models.OrderListEntry
	err := json.NewDecoder(r.Body).Decode(&entry)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	entry.SubmittedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := oc.OrderListCollection.InsertOne(ctx, entry)
	if err != nil {
		http.Error(w, "Error creating order list entry", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// GetOrderList retrieves a customer's order list snapshots
func (oc *OrderController) GetOrderList(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	cursor, err := oc.OrderListCollection.Find(ctx, bson.M{"customer_email": params["email"]})
	if err != nil {
		http.Error(w, "Error fetching order list", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var entries []models.OrderListEntry
	for cursor.Next(ctx) {
		var entry models.OrderListEntry
		if err := cursor.Decode(&entry); err != nil {
			http.Error(w, "Error decoding order list entry", http.StatusInternalServerError)
			return
		}
		entries = append(entries, entry)
	}
	if err := cursor.Err(); err != nil {
		http.Error(w, "Error reading order list", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}
