package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const ctxUserID = "userID"

// TokenStore resolves an opaque bearer token to a user id. Token issuance is
// handled by the external auth service; this side only reads the shared store.
type TokenStore interface {
	UserIDByToken(ctx context.Context, token string) (uint64, error)
}

// AuthRequired resolves the request identity from the Authorization header.
// Requests without a resolvable identity are rejected with 401. Roles and
// profile data are loaded by the services that need them.
func AuthRequired(tokens TokenStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		userID, err := tokens.UserIDByToken(c.Request.Context(), token)
		if err != nil {
			logger.Debug("Token lookup failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ctxUserID, userID)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id set by AuthRequired.
func CurrentUserID(c *gin.Context) (uint64, bool) {
	v, exists := c.Get(ctxUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
