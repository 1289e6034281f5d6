package middleware

import (
	"net/http"
	"strings"

	"agronomy-services-api-server/internal/auth"

	"github.com/gin-gonic/gin"
)

// Context keys populated by Authenticate.
const (
	CtxUserID   = "user_id"
	CtxUserRole = "user_role"
	CtxUserName = "user_name"
	CtxUserMail = "user_email"
)

// Authenticate verifies the bearer token and puts the decoded principal into
// the request context. Missing, malformed, tampered and expired tokens are
// all rejected with 401 before any handler runs.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Access token required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid token format"})
			return
		}

		claims, err := auth.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or expired token"})
			return
		}

		c.Set(CtxUserID, claims.ID)
		c.Set(CtxUserRole, claims.Role)
		c.Set(CtxUserName, claims.Name)
		c.Set(CtxUserMail, claims.Email)

		c.Next()
	}
}

// Authorize is a middleware factory that rejects principals whose role is not
// in the allowed set. It must run after Authenticate.
func Authorize(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRoleValue, exists := c.Get(CtxUserRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
			return
		}

		userRole, ok := userRoleValue.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "User role has an invalid type"})
			return
		}

		for _, role := range allowedRoles {
			if role == userRole {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "Insufficient permissions"})
	}
}
