package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminContextKey marks requests that passed the admin check.
const AdminContextKey = "admin"

// AdminAuthorizer validates back-office session tokens.
type AdminAuthorizer interface {
	Enabled() bool
	Authorize(token string) error
}

// AdminRequired rejects requests without a valid admin bearer token. When
// admin protection is disabled every request passes.
func AdminRequired(authorizer AdminAuthorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authorizer.Enabled() {
			c.Next()
			return
		}

		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authorization required"})
			return
		}
		if err := authorizer.Authorize(token); err != nil {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			return
		}

		c.Set(AdminContextKey, true)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
