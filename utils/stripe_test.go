package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1999), MinorUnits(19.99))
	assert.Equal(t, int64(100), MinorUnits(1))
	assert.Equal(t, int64(0), MinorUnits(0))
	assert.Equal(t, int64(1000), MinorUnits(9.999))
}

func TestCreateIntent(t *testing.T) {
	var gotAmount, gotCurrency, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/payment_intents", r.URL.Path)
		require.NoError(t, r.ParseForm())
		gotAmount = r.PostFormValue("amount")
		gotCurrency = r.PostFormValue("currency")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"client_secret":"pi_123_secret_456"}`))
	}))
	defer srv.Close()

	pc := &PaymentClient{client: resty.New().SetAuthToken("sk_test_abc"), baseURL: srv.URL}
	secret, err := pc.CreateIntent(19.99)
	require.NoError(t, err)

	assert.Equal(t, "pi_123_secret_456", secret)
	assert.Equal(t, "1999", gotAmount)
	assert.Equal(t, "usd", gotCurrency)
	assert.Equal(t, "Bearer sk_test_abc", gotAuth)
}

func TestCreateIntentProcessorError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"message":"Your card was declined."}}`))
	}))
	defer srv.Close()

	pc := &PaymentClient{client: resty.New(), baseURL: srv.URL}
	_, err := pc.CreateIntent(5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declined")
}

func TestCreateIntentMissingSecret(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	pc := &PaymentClient{client: resty.New(), baseURL: srv.URL}
	_, err := pc.CreateIntent(5)
	assert.Error(t, err)
}
