package handlers

import (
	"net/http"

	"github.com/SscSPs/comandas_backend/internal/audit"
	"github.com/SscSPs/comandas_backend/internal/core/domain"
	portssvc "github.com/SscSPs/comandas_backend/internal/core/ports/services"
	"github.com/SscSPs/comandas_backend/internal/dto"
	"github.com/SscSPs/comandas_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type cotizacionHandler struct {
	cotizacionService portssvc.CotizacionSvcFacade
}

// registerCotizacionRoutes registers the dollar rate routes.
func registerCotizacionRoutes(rg *gin.RouterGroup, cs portssvc.CotizacionSvcFacade, recorder audit.Recorder) {
	h := &cotizacionHandler{cotizacionService: cs}

	cotizaciones := rg.Group("/cotizaciones")
	{
		cotizaciones.GET("", h.listCotizaciones)
		cotizaciones.GET("/latest", h.getLatest)
		cotizaciones.GET("/convert", h.convert)
		cotizaciones.POST("", middleware.RequireRole(domain.RolAdmin, domain.RolEncargado),
			audit.Track(audit.Descriptor{Action: audit.ActionCreate, Entity: "cotizacion_dolar"}, recorder, nil),
			h.createCotizacion)
	}
}

// createCotizacion godoc
// @Summary Record a dollar rate
// @Tags cotizaciones
// @Accept json
// @Produce json
// @Param cotizacion body dto.CreateCotizacionRequest true "Rates"
// @Success 201 {object} domain.CotizacionDolar
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /cotizaciones [post]
func (h *cotizacionHandler) createCotizacion(c *gin.Context) {
	creatorID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.CreateCotizacionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	cot, err := h.cotizacionService.CreateCotizacion(c.Request.Context(), req, creatorID)
	if err != nil {
		respondError(c, err, "create cotizacion")
		return
	}
	audit.SetEntityID(c, cot.CotizacionID)
	c.JSON(http.StatusCreated, cot)
}

// getLatest godoc
// @Summary Latest dollar rate
// @Tags cotizaciones
// @Produce json
// @Success 200 {object} domain.CotizacionDolar
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cotizaciones/latest [get]
func (h *cotizacionHandler) getLatest(c *gin.Context) {
	cot, err := h.cotizacionService.GetLatestCotizacion(c.Request.Context())
	if err != nil {
		respondError(c, err, "get latest cotizacion")
		return
	}
	c.JSON(http.StatusOK, cot)
}

// listCotizaciones godoc
// @Summary List dollar rates
// @Tags cotizaciones
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} domain.CotizacionDolar
// @Security BearerAuth
// @Router /cotizaciones [get]
func (h *cotizacionHandler) listCotizaciones(c *gin.Context) {
	var params dto.ListCotizacionesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	list, err := h.cotizacionService.ListCotizaciones(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "list cotizaciones")
		return
	}
	c.JSON(http.StatusOK, list)
}

// convert godoc
// @Summary Convert an amount at the latest rate
// @Tags cotizaciones
// @Produce json
// @Param monto query string true "Amount"
// @Param de query string true "Source currency (pesos|dolares)"
// @Param a query string true "Target currency (pesos|dolares)"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No rate recorded"
// @Security BearerAuth
// @Router /cotizaciones/convert [get]
func (h *cotizacionHandler) convert(c *gin.Context) {
	var params dto.ConvertParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	resp, err := h.cotizacionService.Convert(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "convert amount")
		return
	}
	c.JSON(http.StatusOK, resp)
}
