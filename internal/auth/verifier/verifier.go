package verifier

import (
	"context"
	"errors"
)

// ErrInvalidToken is returned for any token that fails verification. Callers
// surface a generic message only; verification internals are never leaked.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenVerifier resolves a bearer token to an authenticated user identifier.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (userID string, err error)
}
