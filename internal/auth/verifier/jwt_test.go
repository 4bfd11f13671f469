package verifier

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJWTVerifierValidToken(t *testing.T) {
	v := NewJWTVerifier(testSecret)
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	userID, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestJWTVerifierWrongSecret(t *testing.T) {
	v := NewJWTVerifier(testSecret)
	token := signToken(t, "some-other-secret", jwt.MapClaims{"sub": "user-123"})

	_, err := v.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTVerifierExpiredToken(t *testing.T) {
	v := NewJWTVerifier(testSecret)
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := v.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTVerifierMissingSubject(t *testing.T) {
	v := NewJWTVerifier(testSecret)
	token := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := v.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTVerifierGarbage(t *testing.T) {
	v := NewJWTVerifier(testSecret)

	_, err := v.Verify(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
