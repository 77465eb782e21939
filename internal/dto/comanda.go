package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateComandaRequest defines the body for opening a comanda.
// ValorDolar defaults to the latest venta rate. Numero defaults to the next free number.
type CreateComandaRequest struct {
	Numero       *int64           `json:"numero" binding:"omitempty,min=1"`
	Fecha        *time.Time       `json:"fecha"`
	ClienteID    string           `json:"clienteID" binding:"required,uuid"`
	PersonalID   string           `json:"personalID" binding:"required,uuid"`
	CajaID       string           `json:"cajaID" binding:"required,uuid"`
	Moneda       string           `json:"moneda" binding:"required,moneda"`
	ValorDolar   *decimal.Decimal `json:"valorDolar" binding:"omitempty,decimal_gt0"`
	Total        decimal.Decimal  `json:"total" binding:"decimal_gte0"`
	MetodoPago   string           `json:"metodoPago" binding:"required,metodo_pago"`
	Descripcion  string           `json:"descripcion" binding:"max=2000"`
	PrepagoARSID *string          `json:"prepagoARSID" binding:"omitempty,uuid"`
	PrepagoUSDID *string          `json:"prepagoUSDID" binding:"omitempty,uuid"`
}

// UpdateComandaRequest defines the data allowed for updating a comanda.
type UpdateComandaRequest struct {
	Descripcion *string `json:"descripcion" binding:"omitempty,max=2000"`
	Estado      *string `json:"estado" binding:"omitempty,estado_comanda"`
}

// ListComandasParams defines query parameters for listing comandas.
type ListComandasParams struct {
	Desde      *time.Time `form:"desde" time_format:"2006-01-02T15:04:05Z07:00"`
	Hasta      *time.Time `form:"hasta" time_format:"2006-01-02T15:04:05Z07:00"`
	PersonalID string     `form:"personalID" binding:"omitempty,uuid"`
	CajaID     string     `form:"cajaID" binding:"omitempty,uuid"`
	ClienteID  string     `form:"clienteID" binding:"omitempty,uuid"`
	Estado     string     `form:"estado" binding:"omitempty,estado_comanda"`
	Limit      int        `form:"limit,default=50" binding:"min=0,max=200"`
	Offset     int        `form:"offset,default=0" binding:"min=0"`
}

// ComisionesParams defines query parameters for a personal commission summary.
type ComisionesParams struct {
	PersonalID string     `form:"personalID" binding:"required,uuid"`
	Desde      *time.Time `form:"desde" time_format:"2006-01-02T15:04:05Z07:00"`
	Hasta      *time.Time `form:"hasta" time_format:"2006-01-02T15:04:05Z07:00"`
}
