// utils/stripe.go
package utils

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

// PaymentClient talks to the Stripe payment-intent API.
type PaymentClient struct {
	client  *resty.Client
	baseURL string
}

// NewPaymentClient builds a client authorized with the processor secret key.
func NewPaymentClient() *PaymentClient {
	secretKey := os.Getenv("STRIPE_SECRET_KEY")
	client := resty.New().
		SetTimeout(20 * time.Second).
		SetAuthToken(secretKey)
	return &PaymentClient{
		client:  client,
		baseURL: "https://api.stripe.com",
	}
}

// MinorUnits converts a price in major currency units to the integer
// minor units the processor expects.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

type intentResponse struct {
	ClientSecret string `json:"client_secret"`
	Error        struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreateIntent requests a payment intent for the given price and returns
// the client-visible secret. Settlement happens out-of-band; the caller
// only hands the secret to the storefront.
func (pc *PaymentClient) CreateIntent(price float64) (string, error) {
	var result intentResponse
	resp, err := pc.client.R().
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormData(map[string]string{
			"amount":                 fmt.Sprintf("%d", MinorUnits(price)),
			"currency":               "usd",
			"payment_method_types[]": "card",
		}).
		SetResult(&result).
		SetError(&result).
		Post(pc.baseURL + "/v1/payment_intents")
	if err != nil {
		return "", fmt.Errorf("payment intent request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		if result.Error.Message != "" {
			return "", fmt.Errorf("payment processor rejected intent (status %d): %s", resp.StatusCode(), result.Error.Message)
		}
		return "", fmt.Errorf("payment processor rejected intent (status %d): %s", resp.StatusCode(), resp.String())
	}
	if result.ClientSecret == "" {
		return "", fmt.Errorf("payment processor returned no client secret")
	}
	return result.ClientSecret, nil
}
