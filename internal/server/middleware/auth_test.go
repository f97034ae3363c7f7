package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	tokens map[string]uuid.UUID
}

func newStubValidator() *stubValidator {
	return &stubValidator{tokens: make(map[string]uuid.UUID)}
}

func (v *stubValidator) ValidateToken(tokenString string) (UserIDGetter, error) {
	userID, ok := v.tokens[tokenString]
	if !ok {
		return nil, fmt.Errorf("invalid token")
	}
	return stubClaims{userID: userID}, nil
}

type stubClaims struct {
	userID uuid.UUID
}

func (c stubClaims) GetUserID() uuid.UUID { return c.userID }

func runAuthRequest(t *testing.T, validator TokenValidator, authHeader string) (*httptest.ResponseRecorder, bool, uuid.UUID) {
	t.Helper()

	handlerCalled := false
	var contextUserID uuid.UUID
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		userID, err := GetUserID(r)
		require.NoError(t, err)
		contextUserID = userID
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()

	AuthMiddleware(validator)(handler).ServeHTTP(w, req)
	return w, handlerCalled, contextUserID
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	validator := newStubValidator()
	userID := uuid.New()
	validator.tokens["valid-test-token"] = userID

	w, called, contextUserID := runAuthRequest(t, validator, "Bearer valid-test-token")

	assert.True(t, called, "handler should run for a valid token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, contextUserID)
}

func TestAuthMiddleware_CaseInsensitiveBearer(t *testing.T) {
	validator := newStubValidator()
	userID := uuid.New()
	validator.tokens["valid-test-token"] = userID

	for _, prefix := range []string{"bearer", "BEARER", "BeArEr"} {
		w, called, _ := runAuthRequest(t, validator, prefix+" valid-test-token")
		assert.True(t, called, "prefix %q should be accepted", prefix)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	w, called, _ := runAuthRequest(t, newStubValidator(), "")

	assert.False(t, called, "handler should not run without a header")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "no Bearer prefix", header: "token123"},
		{name: "Bearer without token", header: "Bearer"},
		{name: "trailing space only", header: "Bearer "},
		{name: "too many parts", header: "Bearer token one more"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, called, _ := runAuthRequest(t, newStubValidator(), tt.header)
			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	w, called, _ := runAuthRequest(t, newStubValidator(), "Bearer unknown-token")

	assert.False(t, called, "handler should not run for a rejected token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetUserID_Success(t *testing.T) {
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(context.WithValue(req.Context(), userIDKey, userID))

	extracted, err := GetUserID(req)
	require.NoError(t, err)
	assert.Equal(t, userID, extracted)
}

func TestGetUserID_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	userID, err := GetUserID(req)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, userID)
}

func TestGetUserID_WrongType(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(context.WithValue(req.Context(), userIDKey, "not-a-uuid"))

	userID, err := GetUserID(req)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, userID)
}
