package controllers

import (
	"context"
	"encoding/json"
	"medihub-api/models"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductController handles product-related requests
type ProductController struct {
	Collection *mongo.Collection
}

// NewProductController creates a new ProductController
func NewProductController(client *mongo.Client) *ProductController {
	collection := client.Database("mediHub-store").Collection("products")
	return &ProductController{
		Collection: collection,
	}
}

// buildProductFilter assembles the list filter from the optional search
// term (case-insensitive substring over name and company) and category.
func buildProductFilter(search, category string) bson.M {
	filter := bson.M{}
	if search != "" {
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": search, "$options": "i"}},
			{"company": bson.M{"$regex": search, "$options": "i"}},
		}
	}
	if category != "" {
		filter["category"] = category
	}
	return filter
}

// listSkip is the generic product-list offset. Pages are zero-based here;
// the category route counts from one. The two formulas intentionally
// differ to stay compatible with existing clients. A negative page is
// treated as the first.
func listSkip(page, size int64) int64 {
	if page < 0 {
		page = 0
	}
	return page * size
}

// categorySkip is the category-route offset with one-based pages.
func categorySkip(page, size int64) int64 {
	return (page - 1) * size
}

// quantityDelta maps an adjustment request onto a signed increment.
// "decrease" subtracts; any other status adds. No floor is applied.
func quantityDelta(status string, quantity int) int {
	if status == "decrease" {
		return -quantity
	}
	return quantity
}

// CreateProduct handles adding a new product (Seller only)
func (pc *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	err := json.NewDecoder(r.Body).Decode(&product)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := pc.Collection.InsertOne(ctx, product)
	if err != nil {
		http.Error(w, "Error creating product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// GetProducts retrieves products with optional search, category filter,
// price sort and pagination
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	size, _ := strconv.ParseInt(q.Get("size"), 10, 64)
	if size <= 0 {
		size = 10
	}

	filter := buildProductFilter(q.Get("search"), q.Get("category"))
	opts := options.Find().SetSkip(listSkip(page, size)).SetLimit(size)
	switch q.Get("sort") {
	case "asc":
		opts.SetSort(bson.M{"price": 1})
	case "desc":
		opts.SetSort(bson.M{"price": -1})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	total, err := pc.Collection.CountDocuments(ctx, filter)
	if err != nil {
		http.Error(w, "Error counting products", http.StatusInternalServerError)
		return
	}

	cursor, err := pc.Collection.Find(ctx, filter, opts)
	if err != nil {
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var products []models.Product
	for cursor.Next(ctx) {
		var product models.Product
		if err := cursor.Decode(&product); err != nil {
			http.Error(w, "Error decoding product", http.StatusInternalServerError)
			return
		}
		products = append(products, product)
	}
	if err := cursor.Err(); err != nil {
		http.Error(w, "Error reading products", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"products": products,
		"count":    total,
	})
}

// GetProductsByCategory retrieves one category page. Pages are one-based
// on this route.
func (pc *ProductController) GetProductsByCategory(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	q := r.URL.Query()
	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.ParseInt(q.Get("size"), 10, 64)
	if size <= 0 {
		size = 10
	}

	opts := options.Find().SetSkip(categorySkip(page, size)).SetLimit(size)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	cursor, err := pc.Collection.Find(ctx, bson.M{"category": params["category"]}, opts)
	if err != nil {
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var products []models.Product
	for cursor.Next(ctx) {
		var product models.Product
		if err := cursor.Decode(&product); err != nil {
			http.Error(w, "Error decoding product", http.StatusInternalServerError)
			return
		}
		products = append(products, product)
	}
	if err := cursor.Err(); err != nil {
		http.Error(w, "Error reading products", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// GetProductByID retrieves a single product by ID
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var product models.Product
	err = pc.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

// GetSellerProducts retrieves the products owned by a seller (Seller only)
func (pc *ProductController) GetSellerProducts(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	cursor, err := pc.Collection.Find(ctx, bson.M{"seller_email": params["email"]})
	if err != nil {
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var products []models.Product
	for cursor.Next(ctx) {
		var product models.Product
		if err := cursor.Decode(&product); err != nil {
			http.Error(w, "Error decoding product", http.StatusInternalServerError)
			return
		}
		products = append(products, product)
	}
	if err := cursor.Err(); err != nil {
		http.Error(w, "Error reading products", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// GetAllProducts retrieves the full catalog without pagination (Admin only)
func (pc *ProductController) GetAllProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	cursor, err := pc.Collection.Find(ctx, bson.M{})
	if err != nil {
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var products []models.Product
	for cursor.Next(ctx) {
		var product models.Product
		if err := cursor.Decode(&product); err != nil {
			http.Error(w, "Error decoding product", http.StatusInternalServerError)
			return
		}
		products = append(products, product)
	}
	if err := cursor.Err(); err != nil {
		http.Error(w, "Error reading products", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// productUpdateRequest carries the patchable product fields. Price and
// quantity are pointers so an explicit zero (out of stock, free sample)
// can be distinguished from an omission.
type productUpdateRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Company     string   `json:"company"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
}

// productUpdate builds the partial $set document for a product patch.
// Only the enumerated fields are ever touched.
func productUpdate(req productUpdateRequest) bson.M {
	set := bson.M{}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Category != "" {
		set["category"] = req.Category
	}
	if req.Company != "" {
		set["company"] = req.Company
	}
	if req.Description != "" {
		set["description"] = req.Description
	}
	if req.Image != "" {
		set["image"] = req.Image
	}
	if req.Price != nil {
		set["price"] = *req.Price
	}
	if req.Quantity != nil {
		set["quantity"] = *req.Quantity
	}
	return set
}

// UpdateProduct patches a product's enumerated fields (Seller only)
func (pc *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	var req productUpdateRequest
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	set := productUpdate(req)
	if len(set) == 0 {
		http.Error(w, "No updatable fields provided", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := pc.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		http.Error(w, "Error updating product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// DeleteProduct removes a product (Seller only). Orders referencing the
// product are left untouched.
func (pc *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := pc.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		http.Error(w, "Error deleting product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// AdjustQuantity applies a signed increment to a product's stock.
// Quantity may go negative; the order lifecycle owns the bookkeeping.
func (pc *ProductController) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	var body struct {
		Quantity int    `json:"quantity"`
		Status   string `json:"status"`
	}
	err = json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := pc.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{"quantity": quantityDelta(body.Status, body.Quantity)},
	})
	if err != nil {
		http.Error(w, "Error updating quantity", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
