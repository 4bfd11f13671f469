package delivery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"greenur-backend/internal/auth/verifier"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubVerifier struct {
	userID string
	err    error
}

func (s *stubVerifier) Verify(_ context.Context, _ string) (string, error) {
	return s.userID, s.err
}

func newTestRouter(v verifier.TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(v), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("userID")})
	})
	return r
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r := newTestRouter(&stubVerifier{userID: "u1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	r := newTestRouter(&stubVerifier{userID: "u1"})

	for _, header := range []string{"Bearer", "Basic abc", "Bearer a b"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	r := newTestRouter(&stubVerifier{err: verifier.ErrInvalidToken})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired token")
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	r := newTestRouter(&stubVerifier{userID: "user-42"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
}
