package dto

import (
	"time"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCotizacionRequest records a new dollar rate snapshot.
type CreateCotizacionRequest struct {
	Compra decimal.Decimal `json:"compra" binding:"decimal_gt0"`
	Venta  decimal.Decimal `json:"venta" binding:"decimal_gt0"`
	Fuente string          `json:"fuente" binding:"required,max=100"`
	Fecha  *time.Time      `json:"fecha"`
}

// ListCotizacionesParams defines query parameters for listing snapshots.
type ListCotizacionesParams struct {
	Limit  int `form:"limit,default=20" binding:"min=0,max=200"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ConvertParams asks for an amount converted at the latest snapshot.
type ConvertParams struct {
	Monto decimal.Decimal `form:"monto" binding:"decimal_gte0"`
	De    string          `form:"de" binding:"required,moneda"`
	A     string          `form:"a" binding:"required,moneda"`
}

// ConvertResponse is the result of a conversion.
type ConvertResponse struct {
	Monto      decimal.Decimal        `json:"monto"`
	De         domain.Moneda          `json:"de"`
	A          domain.Moneda          `json:"a"`
	Resultado  decimal.Decimal        `json:"resultado"`
	Cotizacion domain.CotizacionDolar `json:"cotizacion"`
}
