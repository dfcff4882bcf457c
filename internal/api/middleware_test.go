package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"droply/internal/auth"

	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	var seenClaims *auth.AppClaims
	handler := testServer.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenClaims = GetUserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	// No header.
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/v1/me", nil))
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	// Malformed header.
	req := httptest.NewRequest("GET", "/api/v1/me", nil)
	req.Header.Set("Authorization", "NotBearer xyz")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	// Garbage token.
	req = httptest.NewRequest("GET", "/api/v1/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	// A provider-issued token passes and lands in the context.
	token, err := auth.GenerateToken("user_mw_test", "mw@example.com", testServer.config.Auth.JWTSecret)
	require.NoError(t, err)
	req = httptest.NewRequest("GET", "/api/v1/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, seenClaims)
	require.Equal(t, "user_mw_test", seenClaims.UserID)
}

func TestMatchesCaller(t *testing.T) {
	claims := &auth.AppClaims{UserID: "user_guard"}

	require.True(t, matchesCaller(claims, "user_guard"))
	require.False(t, matchesCaller(claims, "someone_else"))
	require.False(t, matchesCaller(claims, ""))
	require.False(t, matchesCaller(nil, "user_guard"))
}
