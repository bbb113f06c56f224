package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tourbook/internal/domain"
	jwtsvc "tourbook/internal/pkg/jwt"
	"tourbook/internal/pkg/response"
)

const sessionKey = "session"

// Session is the authenticated caller, derived from token claims once per
// request and passed explicitly to whoever needs it. Handlers never reach
// into ambient storage for the user id.
type Session struct {
	UserID int64
	Role   domain.UserRole
}

// Auth validates the bearer token and stores the session on the context.
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		c.Set(sessionKey, Session{
			UserID: claims.UserID,
			Role:   claims.Role,
		})

		c.Next()
	}
}

// SessionFrom returns the session set by Auth. The bool is false on routes
// that skipped the middleware.
func SessionFrom(c *gin.Context) (Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return Session{}, false
	}
	s, ok := v.(Session)
	return s, ok
}
