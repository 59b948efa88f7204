package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const contextKeyUsername = "username"

// UsernameFromContext returns the principal set by RequireAuth. Empty if not set.
func UsernameFromContext(c *gin.Context) string {
	v, ok := c.Get(contextKeyUsername)
	if !ok {
		return ""
	}
	username, ok := v.(string)
	if !ok {
		return ""
	}
	return username
}

// RequireAuth returns a middleware that extracts a bearer token from the
// Authorization header and sets the verified username in context. A missing
// header is 401; a present but unverifiable token (malformed, tampered or
// expired, not distinguished to the caller) is 403.
func RequireAuth(tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no token provided"})
			return
		}
		username, err := tokens.Validate(bearerToken(header))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set(contextKeyUsername, username)
		c.Next()
	}
}

// bearerToken strips the scheme prefix from an Authorization header value.
// A header with no scheme yields "" and fails verification downstream.
func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}
