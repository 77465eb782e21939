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

// personalHandler handles HTTP requests related to personnel.
type personalHandler struct {
	personalService portssvc.PersonalSvcFacade
}

func newPersonalHandler(ps portssvc.PersonalSvcFacade) *personalHandler {
	return &personalHandler{personalService: ps}
}

// registerPersonalRoutes registers all personnel routes.
func registerPersonalRoutes(rg *gin.RouterGroup, ps portssvc.PersonalSvcFacade, recorder audit.Recorder) {
	h := newPersonalHandler(ps)
	load := h.loadSnapshot
	adminOnly := middleware.RequireRole(domain.RolAdmin)
	managers := middleware.RequireRole(domain.RolAdmin, domain.RolEncargado)

	personal := rg.Group("/personal")
	{
		personal.GET("", managers, h.listPersonal)
		personal.GET("/:id", managers, h.getPersonal)
		personal.POST("", adminOnly,
			audit.Track(audit.Descriptor{Action: audit.ActionCreate, Entity: "personal"}, recorder, nil),
			h.createPersonal)
		personal.PUT("/:id", adminOnly,
			audit.Track(audit.Descriptor{Action: audit.ActionUpdate, Entity: "personal", CaptureBefore: true}, recorder, load),
			h.updatePersonal)
		personal.PUT("/:id/password",
			audit.Track(audit.Descriptor{Action: audit.ActionUpdate, Entity: "personal"}, recorder, nil),
			h.setPassword)
		personal.DELETE("/:id", adminOnly,
			audit.Track(audit.Descriptor{Action: audit.ActionDelete, Entity: "personal", CaptureBefore: true}, recorder, load),
			h.deactivatePersonal)
	}
}

func (h *personalHandler) loadSnapshot(ctx context.Context, id string) (map[string]any, []string, error) {
	p, err := h.personalService.GetPersonal(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	snap, err := audit.Snapshot(dto.ToPersonalResponse(p))
	return snap, nil, err
}

// createPersonal godoc
// @Summary Create a member of the staff
// @Tags personal
// @Accept json
// @Produce json
// @Param personal body dto.CreatePersonalRequest true "Personal details"
// @Success 201 {object} dto.PersonalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Security BearerAuth
// @Router /personal [post]
func (h *personalHandler) createPersonal(c *gin.Context) {
	creatorID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.CreatePersonalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	p, err := h.personalService.CreatePersonal(c.Request.Context(), req, creatorID)
	if err != nil {
		respondError(c, err, "create personal")
		return
	}
	audit.SetEntityID(c, p.PersonalID)
	c.JSON(http.StatusCreated, dto.ToPersonalResponse(p))
}

// getPersonal godoc
// @Summary Get a member of the staff
// @Tags personal
// @Produce json
// @Param id path string true "Personal ID"
// @Success 200 {object} dto.PersonalResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /personal/{id} [get]
func (h *personalHandler) getPersonal(c *gin.Context) {
	p, err := h.personalService.GetPersonal(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "get personal")
		return
	}
	c.JSON(http.StatusOK, dto.ToPersonalResponse(p))
}

// listPersonal godoc
// @Summary List the staff
// @Tags personal
// @Produce json
// @Param includeInactive query bool false "Include deactivated records"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.PersonalResponse
// @Security BearerAuth
// @Router /personal [get]
func (h *personalHandler) listPersonal(c *gin.Context) {
	var params dto.ListPersonalParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	list, err := h.personalService.ListPersonal(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "list personal")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPersonalResponse(list))
}

// updatePersonal godoc
// @Summary Update a member of the staff
// @Tags personal
// @Accept json
// @Produce json
// @Param id path string true "Personal ID"
// @Param personal body dto.UpdatePersonalRequest true "Fields to update"
// @Success 200 {object} dto.PersonalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /personal/{id} [put]
func (h *personalHandler) updatePersonal(c *gin.Context) {
	updaterID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.UpdatePersonalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	p, err := h.personalService.UpdatePersonal(c.Request.Context(), c.Param("id"), req, updaterID)
	if err != nil {
		respondError(c, err, "update personal")
		return
	}
	c.JSON(http.StatusOK, dto.ToPersonalResponse(p))
}

// setPassword godoc
// @Summary Replace a password
// @Description Admins can set any password; everyone else only their own.
// @Tags personal
// @Accept json
// @Param id path string true "Personal ID"
// @Param body body dto.SetPasswordRequest true "New password"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /personal/{id}/password [put]
func (h *personalHandler) setPassword(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	id := c.Param("id")
	if identity.PersonalID != id && !identity.HasRole(domain.RolAdmin) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Insufficient permissions"})
		return
	}
	var req dto.SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.personalService.SetPassword(c.Request.Context(), id, req, identity.PersonalID); err != nil {
		respondError(c, err, "set password")
		return
	}
	c.Status(http.StatusNoContent)
}

// deactivatePersonal godoc
// @Summary Deactivate a member of the staff
// @Description Deactivated personnel can no longer authenticate; issued tokens stop working.
// @Tags personal
// @Param id path string true "Personal ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Cannot deactivate yourself"
// @Security BearerAuth
// @Router /personal/{id} [delete]
func (h *personalHandler) deactivatePersonal(c *gin.Context) {
	deleterID, ok := actorID(c)
	if !ok {
		return
	}
	if err := h.personalService.DeactivatePersonal(c.Request.Context(), c.Param("id"), deleterID); err != nil {
		respondError(c, err, "deactivate personal")
		return
	}
	c.Status(http.StatusNoContent)
}
