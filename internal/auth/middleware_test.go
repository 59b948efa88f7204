package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(tokens *TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", RequireAuth(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": UsernameFromContext(c)})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	tokens := NewTokenService([]byte(testSecret), time.Hour)
	valid, err := tokens.Generate("alice")
	require.NoError(t, err)

	expiredSvc := NewTokenService([]byte(testSecret), -time.Hour)
	expired, err := expiredSvc.Generate("alice")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"missing header", "", http.StatusUnauthorized, "no token provided"},
		{"header without scheme", valid, http.StatusForbidden, "invalid or expired token"},
		{"garbage token", "Bearer garbage", http.StatusForbidden, "invalid or expired token"},
		{"expired token", "Bearer " + expired, http.StatusForbidden, "invalid or expired token"},
		{"valid token", "Bearer " + valid, http.StatusOK, "alice"},
	}

	r := newProtectedRouter(tokens)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
