package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/comandas_backend/internal/core/ports/services"
	"github.com/SscSPs/comandas_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

type cajaHandler struct {
	cajaService       portssvc.CajaSvcFacade
	movimientoService portssvc.MovimientoSvcFacade
}

// registerCajaRoutes registers the cash register routes, including each caja's movimientos.
func registerCajaRoutes(rg *gin.RouterGroup, cs portssvc.CajaSvcFacade, ms portssvc.MovimientoSvcFacade) {
	h := &cajaHandler{cajaService: cs, movimientoService: ms}

	cajas := rg.Group("/cajas")
	{
		cajas.GET("", h.listCajas)
		cajas.GET("/:id", h.getCaja)
		cajas.GET("/:id/balance", h.getBalance)
		cajas.GET("/:id/movimientos", h.listMovimientos)
	}
}

// listCajas godoc
// @Summary List cash registers
// @Tags cajas
// @Produce json
// @Success 200 {array} domain.Caja
// @Security BearerAuth
// @Router /cajas [get]
func (h *cajaHandler) listCajas(c *gin.Context) {
	cajas, err := h.cajaService.ListCajas(c.Request.Context())
	if err != nil {
		respondError(c, err, "list cajas")
		return
	}
	c.JSON(http.StatusOK, cajas)
}

// getCaja godoc
// @Summary Get a cash register
// @Tags cajas
// @Produce json
// @Param id path string true "Caja ID"
// @Success 200 {object} domain.Caja
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cajas/{id} [get]
func (h *cajaHandler) getCaja(c *gin.Context) {
	caja, err := h.cajaService.GetCaja(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "get caja")
		return
	}
	c.JSON(http.StatusOK, caja)
}

// getBalance godoc
// @Summary Balance of a cash register
// @Description Sums ingresos and egresos per currency over [desde, hasta).
// @Tags cajas
// @Produce json
// @Param id path string true "Caja ID"
// @Param desde query string false "RFC3339 lower bound"
// @Param hasta query string false "RFC3339 upper bound (exclusive)"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cajas/{id}/balance [get]
func (h *cajaHandler) getBalance(c *gin.Context) {
	var params dto.BalanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	b, err := h.cajaService.GetBalance(c.Request.Context(), c.Param("id"), params.Desde, params.Hasta)
	if err != nil {
		respondError(c, err, "compute balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceResponse(b))
}

// listMovimientos godoc
// @Summary List the movimientos of a cash register
// @Description Newest first. Pass nextPageToken back as pageToken to continue.
// @Tags cajas
// @Produce json
// @Param id path string true "Caja ID"
// @Param desde query string false "RFC3339 lower bound"
// @Param hasta query string false "RFC3339 upper bound (exclusive)"
// @Param limit query int false "Page size" default(50)
// @Param pageToken query string false "Token from a previous page"
// @Success 200 {object} domain.MovimientoPage
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /cajas/{id}/movimientos [get]
func (h *cajaHandler) listMovimientos(c *gin.Context) {
	var params dto.ListMovimientosParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	page, err := h.movimientoService.ListMovimientos(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		respondError(c, err, "list movimientos")
		return
	}
	c.JSON(http.StatusOK, page)
}
