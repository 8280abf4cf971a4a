// controllers/payment.go
package controllers

import (
	"context"
	"encoding/json"
	"log"
	"medihub-api/models"
	"medihub-api/utils"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// paymentStore and orderStore are the slices of the two collections the
// settlement path touches. *mongo.Collection satisfies both; tests
// substitute doubles.
type paymentStore interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

type orderStore interface {
	DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

// receiptSender is satisfied by *utils.EmailService.
type receiptSender interface {
	SendPaymentReceipt(toEmail string, payment models.Payment) error
}

// PaymentController bridges checkout to the payment processor and records
// settlements
type PaymentController struct {
	PaymentCollection *mongo.Collection
	OrderCollection   *mongo.Collection
	Processor         *utils.PaymentClient

	payments paymentStore
	orders   orderStore
	mailer   receiptSender
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(client *mongo.Client, processor *utils.PaymentClient, emailService *utils.EmailService) *PaymentController {
	db := client.Database("mediHub-store")
	paymentCollection := db.Collection("payments")
	orderCollection := db.Collection("orders")
	return &PaymentController{
		PaymentCollection: paymentCollection,
		OrderCollection:   orderCollection,
		Processor:         processor,
		payments:          paymentCollection,
		orders:            orderCollection,
		mailer:            emailService,
	}
}

// CreatePaymentIntent forwards the checkout amount to the processor and
// returns the client secret for the storefront
func (pc *PaymentController) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Price float64 `json:"price"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil || body.Price <= 0 {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	clientSecret, err := pc.Processor.CreateIntent(body.Price)
	if err != nil {
		log.Printf("payment intent failed: %v", err)
		http.Error(w, "Error creating payment intent", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"clientSecret": clientSecret})
}

// RecordPayment settles a checkout: it inserts the payment record, then
// deletes every covered order. The two writes run sequentially with no
// transaction; a delete failure leaves the payment recorded while its
// orders still exist.
func (pc *PaymentController) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var payment models.Payment
	err := json.NewDecoder(r.Body).Decode(&payment)
	if err != nil || payment.Email == "" || len(payment.OrderIDs) == 0 {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	// Validate the order ids up front so a malformed id cannot strand a
	// half-finished settlement.
	orderIDs := make([]primitive.ObjectID, 0, len(payment.OrderIDs))
	for _, hex := range payment.OrderIDs {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			http.Error(w, "Invalid order ID in payment", http.StatusBadRequest)
			return
		}
		orderIDs = append(orderIDs, id)
	}
	payment.PaidAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	insertResult, err := pc.payments.InsertOne(ctx, payment)
	if err != nil {
		http.Error(w, "Error recording payment", http.StatusInternalServerError)
		return
	}

	deleteResult, err := pc.orders.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": orderIDs}})
	if err != nil {
		log.Printf("payment %v recorded but order cleanup failed: %v", insertResult.InsertedID, err)
		http.Error(w, "Payment recorded but orders were not removed", http.StatusInternalServerError)
		return
	}

	// Receipt goes out asynchronously; settlement does not wait on mail.
	go func(toEmail string, p models.Payment) {
		if err := pc.mailer.SendPaymentReceipt(toEmail, p); err != nil {
			log.Printf("Failed to send receipt to %s: %v", toEmail, err)
		}
	}(payment.Email, payment)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"insertResult": insertResult,
		"deleteResult": deleteResult,
	})
}

// GetPayments retrieves a payer's settlement history
func (pc *PaymentController) GetPayments(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	cursor, err := pc.PaymentCollection.Find(ctx, bson.M{"email": params["email"]})
	if err != nil {
		http.Error(w, "Error fetching payments", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	for cursor.Next(ctx) {
		var payment models.Payment
		if err := cursor.Decode(&payment); err != nil {
			http.Error(w, "Error decoding payment", http.StatusInternalServerError)
			return
		}
		payments = append(payments, payment)
	}
	if err := cursor.Err(); err != nil {
		http.Error(w, "Error reading payments", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payments)
}
