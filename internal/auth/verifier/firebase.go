package verifier

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// firebaseVerifier verifies Firebase ID tokens via the Admin SDK
type firebaseVerifier struct {
	client *auth.Client
}

// NewFirebaseVerifier wraps a Firebase auth client as a TokenVerifier
func NewFirebaseVerifier(client *auth.Client) TokenVerifier {
	return &firebaseVerifier{client: client}
}

func (v *firebaseVerifier) Verify(ctx context.Context, token string) (string, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", ErrInvalidToken
	}
	return decoded.UID, nil
}
