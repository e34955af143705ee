package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"anukriti-backend/internal/core"
)

const identityKey = "identity"

// Middleware verifies the Bearer token and stores the resolved identity on
// the gin context for handlers to pass into the core.
func Middleware(tm *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(401, gin.H{"error": "missing token"})
			return
		}
		claims, err := tm.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "invalid token"})
			return
		}
		c.Set(identityKey, core.Identity{UserID: claims.UserID, IsAdmin: IsAdmin(claims.Role)})
		c.Next()
	}
}

// RequireAdmin aborts requests whose identity lacks the admin role. Must run
// after Middleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IdentityFrom(c).IsAdmin {
			c.AbortWithStatusJSON(403, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the identity set by Middleware.
func IdentityFrom(c *gin.Context) core.Identity {
	id, _ := c.Get(identityKey)
	identity, _ := id.(core.Identity)
	return identity
}
