package dto

import (
	"time"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePrepagoRequest records a deposit. Guardar keeps it available for a later comanda.
type CreatePrepagoRequest struct {
	ClienteID  string          `json:"clienteID" binding:"required,uuid"`
	CajaID     string          `json:"cajaID" binding:"required,uuid"`
	Monto      decimal.Decimal `json:"monto" binding:"decimal_gt0"`
	Moneda     string          `json:"moneda" binding:"required,moneda"`
	MetodoPago string          `json:"metodoPago" binding:"required,metodo_pago"`
	Comentario string          `json:"comentario" binding:"max=1000"`
	Fecha      *time.Time      `json:"fecha"`
	Guardar    bool            `json:"guardar"`
}

// PrepagoResponse is a prepago plus its saved counterpart when it was kept.
type PrepagoResponse struct {
	Prepago  domain.Prepago          `json:"prepago"`
	Guardado *domain.PrepagoGuardado `json:"guardado,omitempty"`
}
