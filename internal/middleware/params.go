package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequireUUIDParams aborts with 400 when any of the named path parameters is present
// but is not a UUID. Routes without the parameter pass through.
func RequireUUIDParams(names ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, name := range names {
			v := c.Param(name)
			if v == "" {
				continue
			}
			if _, err := uuid.Parse(v); err != nil {
				GetLogger(c).Debug().Str("param", name).Str("value", v).Msg("Path parameter is not a UUID")
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + ": must be a UUID"})
				return
			}
		}
		c.Next()
	}
}
