package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey     = contextKey("userID")
	tenantIDKey   = contextKey("tenantID")
	authMethodKey = contextKey("authMethod")
)

// Authentication methods recorded in the context.
const (
	AuthMethodJWT      = "jwt"
	AuthMethodAPIToken = "api_token"
)

// WithPrincipal stores the authenticated user and tenant in ctx.
func WithPrincipal(ctx context.Context, userID, tenantID string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, tenantIDKey, tenantID)
}

// setPrincipal stores the principal in both the request context and the gin context.
func setPrincipal(c *gin.Context, userID, tenantID, method string) {
	ctx := WithPrincipal(c.Request.Context(), userID, tenantID)
	ctx = context.WithValue(ctx, authMethodKey, method)
	ctx = WithLogger(ctx, GetLoggerFromCtx(ctx).With("user_id", userID, "tenant_id", tenantID))
	c.Request = c.Request.WithContext(ctx)
	c.Set(string(userIDKey), userID)
	c.Set(string(tenantIDKey), tenantID)
	c.Set(string(authMethodKey), method)
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return stringFromContext(c, userIDKey)
}

// GetTenantIDFromContext retrieves the tenant the authenticated user acts within.
func GetTenantIDFromContext(c *gin.Context) (string, bool) {
	return stringFromContext(c, tenantIDKey)
}

func stringFromContext(c *gin.Context, key contextKey) (string, bool) {
	if v, exists := c.Get(string(key)); exists {
		s, ok := v.(string)
		return s, ok && s != ""
	}
	// check in the request context as well
	if s, ok := c.Request.Context().Value(key).(string); ok && s != "" {
		return s, true
	}
	return "", false
}

func isAuthenticated(c *gin.Context) bool {
	_, exists := c.Get(string(authMethodKey))
	return exists
}
