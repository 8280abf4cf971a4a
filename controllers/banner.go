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

// BannerController handles storefront banner requests
type BannerController struct {
	Collection *mongo.Collection
}

// NewBannerController creates a new BannerController
func NewBannerController(client *mongo.Client) *BannerController {
	collection := client.Database("mediHub-store").Collection("banners")
	return &BannerController{
		Collection: collection,
	}
}

// CreateBanner adds a promotional banner (Admin only)
func (bc *BannerController) CreateBanner(w http.ResponseWriter, r *http.Request) {
	var banner models.Banner
	err := json.NewDecoder(r.Body).Decode(&banner)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := bc.Collection.InsertOne(ctx, banner)
	if err != nil {
		http.Error(w, "Error creating banner", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// GetBanners retrieves all banners
func (bc *BannerController) GetBanners(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cursor, err := bc.Collection.Find(ctx, bson.M{})
	if err != nil {
		http.Error(w, "Error fetching banners", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var banners []models.Banner
	for cursor.Next(ctx) {
		var banner models.Banner
		if err := cursor.Decode(&banner); err != nil {
			http.Error(w, "Error decoding banner", http.StatusInternalServerError)
			return
		}
		banners = append(banners, banner)
	}
	if err := cursor.Err(); err != nil {
		http.Error(w, "Error reading banners", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(banners)
}

// DeleteBanner removes a banner (Admin only)
func (bc *BannerController) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid banner ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := bc.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		http.Error(w, "Error deleting banner", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
