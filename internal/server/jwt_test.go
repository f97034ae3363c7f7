package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/therrshan/resume-feedback/internal/config"
)

func newTestJWTService(t *testing.T, secret string) *JWTService {
	t.Helper()
	t.Setenv("JWT_SECRET", secret)
	cfg, err := config.NewJWTConfig()
	require.NoError(t, err)
	return NewJWTService(cfg)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestJWTService(t, "round-trip-secret")
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestJWTService_EmptyToken(t *testing.T) {
	svc := newTestJWTService(t, "some-secret")

	_, err := svc.ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := newTestJWTService(t, "issuer-secret")
	token, err := issuer.GenerateToken(uuid.New())
	require.NoError(t, err)

	verifier := newTestJWTService(t, "different-secret")
	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := newTestJWTService(t, "some-secret")

	_, err := svc.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}
