package middleware

import (
	"net/http"
	"strings"

	userRepo "careconnect/database/repository/user"
	"careconnect/models"
	"careconnect/utils"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// JWTAuthMiddleware validates the bearer token, confirms the account is still
// active, and stores the caller principal in the request context.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, role, err := utils.ExtractClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// Deactivation takes effect on the next authenticated request,
		// regardless of token expiry.
		u, err := users.GetByID(subject)
		if err != nil || u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account not found"})
			return
		}
		if !u.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account has been deactivated"})
			return
		}

		c.Set(principalKey, models.Principal{ID: u.ID, Role: role})
		c.Next()
	}
}

// AdminOnly rejects callers whose token does not carry the admin role. It must
// run after JWTAuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok || !principal.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// GetPrincipal extracts the authenticated caller from the request context.
func GetPrincipal(c *gin.Context) (models.Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return models.Principal{}, false
	}
	principal, ok := v.(models.Principal)
	return principal, ok
}
