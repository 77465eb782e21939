package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/SscSPs/comandas_backend/internal/apperrors"
	"github.com/SscSPs/comandas_backend/internal/core/domain"
	portssvc "github.com/SscSPs/comandas_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates a Gin middleware handler that resolves the bearer token to an
// active personnel identity. Only the Authorization header is consulted.
func AuthMiddleware(validator portssvc.TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLogger(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug().Msg("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
			logger.Debug().Msg("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		identity, err := validator.ValidateToken(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			if errors.Is(err, apperrors.ErrUnauthorized) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
				return
			}
			logger.Error().Err(err).Msg("Token validation failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		enriched := logger.With().Str("user_id", identity.PersonalID).Logger()
		c.Request = c.Request.WithContext(enriched.WithContext(c.Request.Context()))
		c.Set(string(identityKey), identity)

		c.Next()
	}
}

// RequireRole aborts with 403 unless the authenticated identity holds one of roles.
// It must run after AuthMiddleware.
func RequireRole(roles ...domain.Rol) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !identity.HasRole(roles...) {
			GetLogger(c).Warn().Str("rol", string(identity.Rol)).Msg("Role not allowed")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
