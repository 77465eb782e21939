package middleware

import (
	"github.com/SscSPs/comandas_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is a custom type so keys set by this package cannot collide with others.
type contextKey string

const (
	identityKey  = contextKey("identity")
	requestIDKey = contextKey("requestID")
)

// GetIdentity retrieves the authenticated identity from the Gin context.
func GetIdentity(c *gin.Context) (*domain.Identity, bool) {
	val, exists := c.Get(string(identityKey))
	if !exists {
		return nil, false
	}
	identity, ok := val.(*domain.Identity)
	return identity, ok && identity != nil
}

// GetUserIDFromContext retrieves the authenticated personal ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	identity, ok := GetIdentity(c)
	if !ok {
		return "", false
	}
	return identity.PersonalID, true
}

// GetRequestID returns the id assigned by RequestLogger.
func GetRequestID(c *gin.Context) string {
	return c.GetString(string(requestIDKey))
}
