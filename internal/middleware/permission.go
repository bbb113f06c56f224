package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"tourbook/internal/domain"
	"tourbook/internal/pkg/response"
	"tourbook/internal/policy"
)

// SettingsSource supplies the live permission table.
type SettingsSource interface {
	Get(ctx context.Context) (*domain.SystemSettings, error)
}

// Permission checks the requested action against the stored role table, so
// an admin edit to permissions takes effect without a restart.
func Permission(source SettingsSource, action policy.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := SessionFrom(c)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "No session")
			c.Abort()
			return
		}

		cfg, err := source.Get(c.Request.Context())
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load permissions")
			c.Abort()
			return
		}

		if !policy.Can(cfg.Permissions, sess.Role, action) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
