package middleware

import (
	"context"
	"errors"
	"medihub-api/models"
	"medihub-api/utils"
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Key type for context
type contextKey string

const UserContextKey = contextKey("user")

// Authenticate is the first gate stage: it verifies the Bearer token and
// attaches its claims to the request context. A request with a missing or
// invalid token is rejected here, before any store access.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header missing", http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, "Invalid Authorization header format", http.StatusUnauthorized)
			return
		}

		claims := &utils.Claims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			return utils.JwtKey, nil
		})
		if err != nil || !token.Valid {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ErrNoUser is returned by a RoleFinder when the principal has no user document.
var ErrNoUser = errors.New("user not found")

// RoleFinder resolves a principal's current role from the user store.
type RoleFinder interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// UserRoles is the Mongo-backed RoleFinder.
type UserRoles struct {
	Collection *mongo.Collection
}

// NewUserRoles creates a RoleFinder over the users collection.
func NewUserRoles(client *mongo.Client) *UserRoles {
	return &UserRoles{Collection: client.Database("mediHub-store").Collection("users")}
}

// RoleByEmail performs a point lookup of the user's stored role.
func (ur *UserRoles) RoleByEmail(ctx context.Context, email string) (string, error) {
	var user models.User
	err := ur.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return "", ErrNoUser
	}
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// RequireRole is the second gate stage. The role is looked up fresh on
// every request, so a role change takes effect immediately.
func RequireRole(roles RoleFinder, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(UserContextKey).(*utils.Claims)
			if !ok {
				http.Error(w, "Could not parse user from context", http.StatusUnauthorized)
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
			defer cancel()
			stored, err := roles.RoleByEmail(ctx, claims.Email)
			if err == ErrNoUser {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			if err != nil {
				http.Error(w, "Database error", http.StatusInternalServerError)
				return
			}
			if stored != role {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
