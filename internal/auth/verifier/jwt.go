package verifier

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// jwtVerifier verifies HS256 tokens signed with a shared secret. Used when no
// Firebase credentials are configured (local development and tests).
type jwtVerifier struct {
	secret []byte
}

// NewJWTVerifier creates a TokenVerifier over a shared HS256 secret
func NewJWTVerifier(secret string) TokenVerifier {
	return &jwtVerifier{secret: []byte(secret)}
}

func (v *jwtVerifier) Verify(_ context.Context, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}
