package controllers

import (
	"context"
	"encoding/json"
	"medihub-api/models"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fakeUserStore counts what it holds, so a second create with the same
// email sees a non-zero count.
type fakeUserStore struct {
	count    int64
	inserted []models.User
}

func (f *fakeUserStore) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return f.count, nil
}

func (f *fakeUserStore) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	f.inserted = append(f.inserted, document.(models.User))
	f.count++
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

// First write wins on the email: the second create inserts nothing and
// reports the sentinel.
func TestCreateUserDuplicateEmailInsertsNothing(t *testing.T) {
	store := &fakeUserStore{}
	uc := &UserController{store: store}
	body := `{"email":"alice@example.com","name":"Alice"}`

	rr := httptest.NewRecorder()
	uc.CreateUser(rr, httptest.NewRequest("POST", "/users", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rr.Code)
	require.Len(t, store.inserted, 1)
	assert.Equal(t, models.RoleCustomer, store.inserted[0].Role)
	assert.False(t, store.inserted[0].CreatedAt.IsZero())

	rr = httptest.NewRecorder()
	uc.CreateUser(rr, httptest.NewRequest("POST", "/users", strings.NewReader(body)))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, store.inserted, 1, "duplicate create must not insert")

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "user already exists", resp["message"])
	assert.Nil(t, resp["insertedId"])
}

func TestProfileUpdateTouchesOnlyGivenFields(t *testing.T) {
	assert.Equal(t, bson.M{"name": "Alice"}, profileUpdate("Alice", ""))
	assert.Equal(t, bson.M{"image": "a.png"}, profileUpdate("", "a.png"))
	assert.Equal(t, bson.M{"name": "Alice", "image": "a.png"}, profileUpdate("Alice", "a.png"))
	assert.Empty(t, profileUpdate("", ""))
}
