package handlers

import (
	"net/http"
	"strconv"

	"github.com/SscSPs/comandas_backend/internal/apperrors"
	"github.com/SscSPs/comandas_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps err to its HTTP status. Internal errors are logged and never echoed to
// the client; authentication failures always get the same message.
func respondError(c *gin.Context, err error, action string) {
	status := apperrors.StatusCode(err)
	switch {
	case status == http.StatusUnauthorized:
		c.JSON(status, ErrorResponse{Error: "Invalid credentials"})
	case status >= http.StatusInternalServerError:
		middleware.GetLogger(c).Error().Err(err).Msg("Failed to " + action)
		c.JSON(status, ErrorResponse{Error: "Failed to " + action})
	default:
		middleware.GetLogger(c).Debug().Err(err).Int("status", status).Msg("Request rejected")
		c.JSON(status, ErrorResponse{Error: err.Error()})
	}
}

func respondBindError(c *gin.Context, err error) {
	middleware.GetLogger(c).Debug().Err(err).Msg("Failed to bind request")
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
}

// actorID returns the authenticated personal id. AuthMiddleware guarantees it on protected routes.
func actorID(c *gin.Context) (string, bool) {
	id, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}
	return id, ok
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}
