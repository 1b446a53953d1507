package middleware

import (
	"github.com/SscSPs/backoffice_governance/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// APIKeyHeader is the header carrying a machine API token.
const APIKeyHeader = "x-api-key"

// APITokenAuth is a middleware that authenticates requests using API tokens.
// An invalid or missing key leaves the request to the JWT middleware.
func APITokenAuth(tokenSvc services.APITokenSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isPublicRoute(c.Request.URL.Path) {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		token, err := tokenSvc.ValidateToken(c.Request.Context(), key)
		if err != nil {
			GetLoggerFromCtx(c.Request.Context()).Warn("API token rejected", "error", err)
			c.Next()
			return
		}

		setPrincipal(c, token.UserID, token.TenantID, AuthMethodAPIToken)
		c.Next()
	}
}

// isPublicRoute checks if the given path is a public route that doesn't require authentication
func isPublicRoute(path string) bool {
	publicRoutes := []string{
		"/health",
		"/api/v1/health",
	}

	for _, route := range publicRoutes {
		if path == route {
			return true
		}
	}

	return false
}
