package middleware

import (
	"context"
	"medihub-api/models"
	"medihub-api/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRoles records lookups so tests can assert when the store is hit.
type fakeRoles struct {
	role  string
	err   error
	calls int
}

func (f *fakeRoles) RoleByEmail(ctx context.Context, email string) (string, error) {
	f.calls++
	return f.role, f.err
}

func signedToken(t *testing.T, email string) string {
	t.Helper()
	utils.JwtKey = []byte("test-secret")
	token, err := utils.GenerateJWT(email)
	require.NoError(t, err)
	return token
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateMissingHeader(t *testing.T) {
	roles := &fakeRoles{role: models.RoleAdmin}
	var called bool
	handler := Authenticate(RequireRole(roles, models.RoleAdmin)(okHandler(&called)))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/admin/chart", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, called)
	assert.Zero(t, roles.calls, "store must not be consulted before authentication")
}

func TestAuthenticateBadScheme(t *testing.T) {
	var called bool
	handler := Authenticate(okHandler(&called))

	req := httptest.NewRequest("GET", "/orders/a@b.com", nil)
	req.Header.Set("Authorization", "Token abcdef")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, called)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	utils.JwtKey = []byte("test-secret")
	var called bool
	handler := Authenticate(okHandler(&called))

	req := httptest.NewRequest("GET", "/orders/a@b.com", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, called)
}

func TestAuthenticateAttachesClaims(t *testing.T) {
	token := signedToken(t, "alice@example.com")

	var gotEmail string
	handler := Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(UserContextKey).(*utils.Claims)
		require.True(t, ok)
		gotEmail = claims.Email
	}))

	req := httptest.NewRequest("GET", "/orders/alice@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "alice@example.com", gotEmail)
}

func TestRequireRoleMismatch(t *testing.T) {
	token := signedToken(t, "alice@example.com")
	roles := &fakeRoles{role: models.RoleCustomer}
	var called bool
	handler := Authenticate(RequireRole(roles, models.RoleAdmin)(okHandler(&called)))

	req := httptest.NewRequest("GET", "/admin/chart", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.False(t, called)
	assert.Equal(t, 1, roles.calls)
}

func TestRequireRoleMissingUser(t *testing.T) {
	token := signedToken(t, "ghost@example.com")
	roles := &fakeRoles{err: ErrNoUser}
	var called bool
	handler := Authenticate(RequireRole(roles, models.RoleSeller)(okHandler(&called)))

	req := httptest.NewRequest("GET", "/seller/chart/ghost@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.False(t, called)
}

// A role change between two requests flips the outcome: the role is read
// from the store on every call, never from the token.
func TestRequireRoleFreshLookup(t *testing.T) {
	token := signedToken(t, "bob@example.com")
	roles := &fakeRoles{role: models.RoleCustomer}
	var called bool
	handler := Authenticate(RequireRole(roles, models.RoleAdmin)(okHandler(&called)))

	req := httptest.NewRequest("GET", "/admin/chart", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.False(t, called)

	roles.role = models.RoleAdmin

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, called)
	assert.Equal(t, 2, roles.calls)
}
