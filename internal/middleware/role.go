package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourbook/internal/domain"
	"tourbook/internal/pkg/response"
)

// RequireRole ensures the authenticated user has one of the listed roles.
func RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := SessionFrom(c)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "No session")
			c.Abort()
			return
		}

		for _, r := range roles {
			if sess.Role == r {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
		c.Abort()
	}
}

// AdminOnly requires the admin role.
func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}

// OperatorOrAdmin allows tour operators and admins.
func OperatorOrAdmin() gin.HandlerFunc {
	return RequireRole(domain.RoleTourOperator, domain.RoleAdmin)
}
