// Package middleware provides gin middleware for the stub endpoint: API key
// gating, request IDs, request logging and Prometheus instrumentation.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/awsrest/internal/protocol"
	"github.com/jroosing/awsrest/internal/stub/models"
)

// HeaderAPIKey carries the shared secret checked by RequireAPIKey.
const HeaderAPIKey = "X-API-Key"

// RequireAPIKey enforces a simple shared-secret API key. An empty expected
// key disables the check.
func RequireAPIKey(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader(HeaderAPIKey)
		if expected == "" || got == expected {
			c.Next()
			return
		}
		c.Header(protocol.HeaderErrorType, "UnauthorizedException")
		c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Message: "unauthorized"})
	}
}
