package handlers

import (
	"net/http"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
	portssvc "github.com/SscSPs/comandas_backend/internal/core/ports/services"
	"github.com/SscSPs/comandas_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

func registerAuditRoutes(rg *gin.RouterGroup, as portssvc.AuditSvcFacade) {
	h := &auditHandler{auditService: as}
	rg.GET("/audit-logs", middleware.RequireRole(domain.RolAdmin), h.listAuditLogs)
}

// listAuditLogs godoc
// @Summary List audit entries
// @Tags audit
// @Produce json
// @Param entity query string false "Entity name, e.g. comanda"
// @Param entityID query string false "Entity ID"
// @Param limit query int false "Page size" default(50)
// @Success 200 {array} domain.AuditLog
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *auditHandler) listAuditLogs(c *gin.Context) {
	logs, err := h.auditService.ListAuditLogs(c.Request.Context(), c.Query("entity"), c.Query("entityID"), queryInt(c, "limit", 50))
	if err != nil {
		respondError(c, err, "list audit logs")
		return
	}
	c.JSON(http.StatusOK, logs)
}
