package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovimientoRequest records an income or expense against a caja.
type CreateMovimientoRequest struct {
	CajaID     string          `json:"cajaID" binding:"required,uuid"`
	PersonalID *string         `json:"personalID" binding:"omitempty,uuid"`
	MontoARS   decimal.Decimal `json:"montoARS" binding:"decimal_gte0"`
	MontoUSD   decimal.Decimal `json:"montoUSD" binding:"decimal_gte0"`
	EsIngreso  *bool           `json:"esIngreso" binding:"required"`
	MetodoPago string          `json:"metodoPago" binding:"required,metodo_pago"`
	Comentario string          `json:"comentario" binding:"max=1000"`
	Fecha      *time.Time      `json:"fecha"`
}

// ListMovimientosParams defines query parameters for listing movimientos of a caja.
type ListMovimientosParams struct {
	Desde     *time.Time `form:"desde" time_format:"2006-01-02T15:04:05Z07:00"`
	Hasta     *time.Time `form:"hasta" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit     int        `form:"limit,default=50" binding:"min=0,max=200"`
	PageToken string     `form:"pageToken"`
}
