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

// comandaHandler handles HTTP requests for comandas.
type comandaHandler struct {
	comandaService portssvc.ComandaSvcFacade
}

func newComandaHandler(cs portssvc.ComandaSvcFacade) *comandaHandler {
	return &comandaHandler{comandaService: cs}
}

// registerComandaRoutes registers all comanda routes.
func registerComandaRoutes(rg *gin.RouterGroup, cs portssvc.ComandaSvcFacade, recorder audit.Recorder) {
	h := newComandaHandler(cs)

	comandas := rg.Group("/comandas")
	{
		comandas.GET("", h.listComandas)
		comandas.GET("/comisiones", h.resumenComisiones)
		comandas.GET("/:id", h.getComanda)
		comandas.POST("",
			audit.Track(audit.Descriptor{Action: audit.ActionCreate, Entity: "comanda", CaptureRelations: true}, recorder, nil),
			h.createComanda)
		comandas.PUT("/:id",
			audit.Track(audit.Descriptor{Action: audit.ActionUpdate, Entity: "comanda", CaptureBefore: true, CaptureRelations: true}, recorder, h.loadSnapshot),
			h.updateComanda)
		comandas.DELETE("/:id", middleware.RequireRole(domain.RolAdmin),
			audit.Track(audit.Descriptor{Action: audit.ActionDelete, Entity: "comanda", CaptureBefore: true, CaptureRelations: true}, recorder, h.loadSnapshot),
			h.deleteComanda)
	}
}

func (h *comandaHandler) loadSnapshot(ctx context.Context, id string) (map[string]any, []string, error) {
	cm, err := h.comandaService.GetComanda(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	snap, err := audit.Snapshot(cm)
	return snap, comandaRelations(cm), err
}

func comandaRelations(cm *domain.Comanda) []string {
	related := []string{cm.ClienteID, cm.PersonalID, cm.CajaID}
	if cm.PrepagoARSID != nil {
		related = append(related, *cm.PrepagoARSID)
	}
	if cm.PrepagoUSDID != nil {
		related = append(related, *cm.PrepagoUSDID)
	}
	return related
}

// createComanda godoc
// @Summary Register a comanda
// @Description Snapshots the latest dollar rate unless valorDolar is given and applies the saved prepagos referenced by the request.
// @Tags comandas
// @Accept json
// @Produce json
// @Param comanda body dto.CreateComandaRequest true "Comanda"
// @Success 201 {object} domain.Comanda
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Prepago already used or caja inactive"
// @Security BearerAuth
// @Router /comandas [post]
func (h *comandaHandler) createComanda(c *gin.Context) {
	creatorID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.CreateComandaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	cm, err := h.comandaService.CreateComanda(c.Request.Context(), req, creatorID)
	if err != nil {
		respondError(c, err, "create comanda")
		return
	}
	audit.SetEntityID(c, cm.ComandaID)
	audit.AddRelated(c, comandaRelations(cm)...)
	c.JSON(http.StatusCreated, cm)
}

// getComanda godoc
// @Summary Get a comanda
// @Tags comandas
// @Produce json
// @Param id path string true "Comanda ID"
// @Success 200 {object} domain.Comanda
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /comandas/{id} [get]
func (h *comandaHandler) getComanda(c *gin.Context) {
	cm, err := h.comandaService.GetComanda(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "get comanda")
		return
	}
	c.JSON(http.StatusOK, cm)
}

// listComandas godoc
// @Summary List comandas
// @Tags comandas
// @Produce json
// @Param desde query string false "From (RFC3339, inclusive)"
// @Param hasta query string false "To (RFC3339, exclusive)"
// @Param personalID query string false "Filter by personal"
// @Param cajaID query string false "Filter by caja"
// @Param clienteID query string false "Filter by cliente"
// @Param estado query string false "pendiente|pagada|anulada"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} domain.Comanda
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /comandas [get]
func (h *comandaHandler) listComandas(c *gin.Context) {
	var params dto.ListComandasParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	list, err := h.comandaService.ListComandas(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "list comandas")
		return
	}
	c.JSON(http.StatusOK, list)
}

// resumenComisiones godoc
// @Summary Commission summary of a member of the staff
// @Description Totals pagada comandas of the period at the current commission percentage. Managers can query anyone; everyone else only themselves.
// @Tags comandas
// @Produce json
// @Param personalID query string true "Personal ID"
// @Param desde query string false "From (RFC3339, inclusive)"
// @Param hasta query string false "To (RFC3339, exclusive)"
// @Success 200 {object} domain.ComisionResumen
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /comandas/comisiones [get]
func (h *comandaHandler) resumenComisiones(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	var params dto.ComisionesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	if params.PersonalID != identity.PersonalID && !identity.HasRole(domain.RolAdmin, domain.RolEncargado) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Insufficient permissions"})
		return
	}
	resumen, err := h.comandaService.ResumenComisiones(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "compute comisiones")
		return
	}
	c.JSON(http.StatusOK, resumen)
}

// updateComanda godoc
// @Summary Update a comanda
// @Description Only the description and the estado can change. Anulada is final.
// @Tags comandas
// @Accept json
// @Produce json
// @Param id path string true "Comanda ID"
// @Param comanda body dto.UpdateComandaRequest true "Fields to update"
// @Success 200 {object} domain.Comanda
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Transition not allowed"
// @Security BearerAuth
// @Router /comandas/{id} [put]
func (h *comandaHandler) updateComanda(c *gin.Context) {
	updaterID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.UpdateComandaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	cm, err := h.comandaService.UpdateComanda(c.Request.Context(), c.Param("id"), req, updaterID)
	if err != nil {
		respondError(c, err, "update comanda")
		return
	}
	c.JSON(http.StatusOK, cm)
}

// deleteComanda godoc
// @Summary Delete a comanda
// @Tags comandas
// @Param id path string true "Comanda ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /comandas/{id} [delete]
func (h *comandaHandler) deleteComanda(c *gin.Context) {
	deleterID, ok := actorID(c)
	if !ok {
		return
	}
	if err := h.comandaService.DeleteComanda(c.Request.Context(), c.Param("id"), deleterID); err != nil {
		respondError(c, err, "delete comanda")
		return
	}
	c.Status(http.StatusNoContent)
}
