package handlers

import (
	"context"
	"net/http"

	"github.com/SscSPs/comandas_backend/internal/audit"
	"github.com/SscSPs/comandas_backend/internal/core/domain"
	portssvc "github.com/SscSPs/comandas_backend/internal/core/ports/services"
	"github.com/SscSPs/comandas_backend/internal/dto"
	"github.com/SscSPs/comandas_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type movimientoHandler struct {
	movimientoService portssvc.MovimientoSvcFacade
}

// registerMovimientoRoutes registers the manual cash movement routes. Listing lives under /cajas.
func registerMovimientoRoutes(rg *gin.RouterGroup, ms portssvc.MovimientoSvcFacade, recorder audit.Recorder) {
	h := &movimientoHandler{movimientoService: ms}

	movimientos := rg.Group("/movimientos")
	{
		movimientos.GET("/:id", h.getMovimiento)
		movimientos.POST("",
			audit.Track(audit.Descriptor{Action: audit.ActionCreate, Entity: "movimiento", CaptureRelations: true}, recorder, nil),
			h.createMovimiento)
		movimientos.DELETE("/:id", middleware.RequireRole(domain.RolAdmin),
			audit.Track(audit.Descriptor{Action: audit.ActionDelete, Entity: "movimiento", CaptureBefore: true, CaptureRelations: true}, recorder, h.loadSnapshot),
			h.deleteMovimiento)
	}
}

func (h *movimientoHandler) loadSnapshot(ctx context.Context, id string) (map[string]any, []string, error) {
	m, err := h.movimientoService.GetMovimiento(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	snap, err := audit.Snapshot(m)
	return snap, []string{m.CajaID}, err
}

// createMovimiento godoc
// @Summary Record a manual cash movement
// @Tags movimientos
// @Accept json
// @Produce json
// @Param movimiento body dto.CreateMovimientoRequest true "Movimiento"
// @Success 201 {object} domain.Movimiento
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Caja inactive"
// @Security BearerAuth
// @Router /movimientos [post]
func (h *movimientoHandler) createMovimiento(c *gin.Context) {
	creatorID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.CreateMovimientoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	m, err := h.movimientoService.CreateMovimiento(c.Request.Context(), req, creatorID)
	if err != nil {
		respondError(c, err, "create movimiento")
		return
	}
	audit.SetEntityID(c, m.MovimientoID)
	audit.AddRelated(c, m.CajaID)
	c.JSON(http.StatusCreated, m)
}

// getMovimiento godoc
// @Summary Get a movimiento
// @Tags movimientos
// @Produce json
// @Param id path string true "Movimiento ID"
// @Success 200 {object} domain.Movimiento
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /movimientos/{id} [get]
func (h *movimientoHandler) getMovimiento(c *gin.Context) {
	m, err := h.movimientoService.GetMovimiento(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "get movimiento")
		return
	}
	c.JSON(http.StatusOK, m)
}

// deleteMovimiento godoc
// @Summary Delete a movimiento
// @Tags movimientos
// @Param id path string true "Movimiento ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /movimientos/{id} [delete]
func (h *movimientoHandler) deleteMovimiento(c *gin.Context) {
	deleterID, ok := actorID(c)
	if !ok {
		return
	}
	if err := h.movimientoService.DeleteMovimiento(c.Request.Context(), c.Param("id"), deleterID); err != nil {
		respondError(c, err, "delete movimiento")
		return
	}
	c.Status(http.StatusNoContent)
}
