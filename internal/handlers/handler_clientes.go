package handlers

import (
	"context"
	"net/http"

	"github.com/SscSPs/comandas_backend/internal/audit"
	portssvc "github.com/SscSPs/comandas_backend/internal/core/ports/services"
	"github.com/SscSPs/comandas_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type clienteHandler struct {
	clienteService portssvc.ClienteSvcFacade
	prepagoService portssvc.PrepagoSvcFacade
}

// registerClienteRoutes registers the cliente routes, including each cliente's prepagos.
func registerClienteRoutes(rg *gin.RouterGroup, cs portssvc.ClienteSvcFacade, ps portssvc.PrepagoSvcFacade, recorder audit.Recorder) {
	h := &clienteHandler{clienteService: cs, prepagoService: ps}

	clientes := rg.Group("/clientes")
	{
		clientes.GET("", h.listClientes)
		clientes.GET("/:id", h.getCliente)
		clientes.GET("/:id/prepagos", h.listPrepagos)
		clientes.GET("/:id/prepagos/disponibles", h.listPrepagosDisponibles)
		clientes.POST("",
			audit.Track(audit.Descriptor{Action: audit.ActionCreate, Entity: "cliente"}, recorder, nil),
			h.createCliente)
		clientes.PUT("/:id",
			audit.Track(audit.Descriptor{Action: audit.ActionUpdate, Entity: "cliente", CaptureBefore: true}, recorder, h.loadSnapshot),
			h.updateCliente)
	}
}

func (h *clienteHandler) loadSnapshot(ctx context.Context, id string) (map[string]any, []string, error) {
	cl, err := h.clienteService.GetCliente(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	snap, err := audit.Snapshot(cl)
	return snap, nil, err
}

// createCliente godoc
// @Summary Register a cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Param cliente body dto.CreateClienteRequest true "Cliente"
// @Success 201 {object} domain.Cliente
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /clientes [post]
func (h *clienteHandler) createCliente(c *gin.Context) {
	creatorID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.CreateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	cl, err := h.clienteService.CreateCliente(c.Request.Context(), req, creatorID)
	if err != nil {
		respondError(c, err, "create cliente")
		return
	}
	audit.SetEntityID(c, cl.ClienteID)
	c.JSON(http.StatusCreated, cl)
}

// getCliente godoc
// @Summary Get a cliente
// @Tags clientes
// @Produce json
// @Param id path string true "Cliente ID"
// @Success 200 {object} domain.Cliente
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clientes/{id} [get]
func (h *clienteHandler) getCliente(c *gin.Context) {
	cl, err := h.clienteService.GetCliente(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "get cliente")
		return
	}
	c.JSON(http.StatusOK, cl)
}

// listClientes godoc
// @Summary List clientes
// @Tags clientes
// @Produce json
// @Param q query string false "Name search"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} domain.Cliente
// @Security BearerAuth
// @Router /clientes [get]
func (h *clienteHandler) listClientes(c *gin.Context) {
	var params dto.ListClientesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	list, err := h.clienteService.ListClientes(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "list clientes")
		return
	}
	c.JSON(http.StatusOK, list)
}

// updateCliente godoc
// @Summary Update a cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Param id path string true "Cliente ID"
// @Param cliente body dto.UpdateClienteRequest true "Fields to update"
// @Success 200 {object} domain.Cliente
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clientes/{id} [put]
func (h *clienteHandler) updateCliente(c *gin.Context) {
	updaterID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.UpdateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	cl, err := h.clienteService.UpdateCliente(c.Request.Context(), c.Param("id"), req, updaterID)
	if err != nil {
		respondError(c, err, "update cliente")
		return
	}
	c.JSON(http.StatusOK, cl)
}

// listPrepagos godoc
// @Summary List the prepagos of a cliente
// @Tags clientes
// @Produce json
// @Param id path string true "Cliente ID"
// @Success 200 {array} domain.Prepago
// @Security BearerAuth
// @Router /clientes/{id}/prepagos [get]
func (h *clienteHandler) listPrepagos(c *gin.Context) {
	list, err := h.prepagoService.ListPrepagosByCliente(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "list prepagos")
		return
	}
	c.JSON(http.StatusOK, list)
}

// listPrepagosDisponibles godoc
// @Summary List the saved prepagos a cliente can still apply
// @Tags clientes
// @Produce json
// @Param id path string true "Cliente ID"
// @Success 200 {array} domain.PrepagoGuardado
// @Security BearerAuth
// @Router /clientes/{id}/prepagos/disponibles [get]
func (h *clienteHandler) listPrepagosDisponibles(c *gin.Context) {
	list, err := h.prepagoService.ListPrepagosDisponibles(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "list saved prepagos")
		return
	}
	c.JSON(http.StatusOK, list)
}
