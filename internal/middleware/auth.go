package middleware

import (
	"net/http"
	"strings"

	"restaurant_ordering/internal/auth"

	"github.com/gin-gonic/gin"
)

const roleKey = "role"

// RequireAdmin rejects requests that do not carry a valid admin bearer token.
func RequireAdmin(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, http.StatusUnauthorized, "missing authorization header")
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, http.StatusUnauthorized, "invalid authorization header")
			return
		}

		claims, err := jwtManager.Validate(parts[1])
		if err != nil {
			abortUnauthorized(c, http.StatusUnauthorized, auth.ErrInvalidToken.Error())
			return
		}
		if claims.Role != auth.RoleAdmin {
			abortUnauthorized(c, http.StatusForbidden, "admin role required")
			return
		}

		c.Set(roleKey, claims.Role)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": message})
}
