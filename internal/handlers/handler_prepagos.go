package handlers

import (
	"net/http"

	"github.com/SscSPs/comandas_backend/internal/audit"
	portssvc "github.com/SscSPs/comandas_backend/internal/core/ports/services"
	"github.com/SscSPs/comandas_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type prepagoHandler struct {
	prepagoService portssvc.PrepagoSvcFacade
}

func registerPrepagoRoutes(rg *gin.RouterGroup, ps portssvc.PrepagoSvcFacade, recorder audit.Recorder) {
	h := &prepagoHandler{prepagoService: ps}

	prepagos := rg.Group("/prepagos")
	{
		prepagos.GET("/:id", h.getPrepago)
		prepagos.POST("",
			audit.Track(audit.Descriptor{Action: audit.ActionCreate, Entity: "prepago", CaptureRelations: true}, recorder, nil),
			h.createPrepago)
	}
}

// createPrepago godoc
// @Summary Record a prepago
// @Description With guardar=true the deposit is kept for a later comanda of the same cliente.
// @Tags prepagos
// @Accept json
// @Produce json
// @Param prepago body dto.CreatePrepagoRequest true "Prepago"
// @Success 201 {object} dto.PrepagoResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /prepagos [post]
func (h *prepagoHandler) createPrepago(c *gin.Context) {
	creatorID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.CreatePrepagoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	resp, err := h.prepagoService.CreatePrepago(c.Request.Context(), req, creatorID)
	if err != nil {
		respondError(c, err, "create prepago")
		return
	}
	audit.SetEntityID(c, resp.Prepago.PrepagoID)
	audit.AddRelated(c, resp.Prepago.ClienteID, resp.Prepago.CajaID)
	if resp.Guardado != nil {
		audit.AddRelated(c, resp.Guardado.PrepagoGuardadoID)
	}
	c.JSON(http.StatusCreated, resp)
}

// getPrepago godoc
// @Summary Get a prepago
// @Tags prepagos
// @Produce json
// @Param id path string true "Prepago ID"
// @Success 200 {object} domain.Prepago
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /prepagos/{id} [get]
func (h *prepagoHandler) getPrepago(c *gin.Context) {
	p, err := h.prepagoService.GetPrepago(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "get prepago")
		return
	}
	c.JSON(http.StatusOK, p)
}
