package middleware

import (
	"net/http"
	"strings"

	"tourdesk/internal/domain"
	"tourdesk/internal/services"

	"github.com/gin-gonic/gin"
)

const requestContextKey = "request_context"

// RequireAuth validates the bearer token and stores the operator's request
// context for handlers further down the chain.
func RequireAuth(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "missing bearer token",
				"request_id": GetRequestID(c),
			})
			return
		}

		rc, err := auth.ParseToken(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "invalid or expired token",
				"request_id": GetRequestID(c),
			})
			return
		}

		c.Set(requestContextKey, rc)
		c.Next()
	}
}

// GetRequestContext returns the authenticated operator context, zero when the
// route is unauthenticated.
func GetRequestContext(c *gin.Context) domain.RequestContext {
	if v, ok := c.Get(requestContextKey); ok {
		if rc, ok := v.(domain.RequestContext); ok {
			return rc
		}
	}
	return domain.RequestContext{}
}
