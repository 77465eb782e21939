package dto

import (
	"time"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceParams bounds a balance query. Both ends are optional.
type BalanceParams struct {
	Desde *time.Time `form:"desde" time_format:"2006-01-02T15:04:05Z07:00"`
	Hasta *time.Time `form:"hasta" time_format:"2006-01-02T15:04:05Z07:00"`
}

// BalanceResponse is the per-currency reconciliation of a caja.
type BalanceResponse struct {
	CajaID      string          `json:"cajaID"`
	Desde       *time.Time      `json:"desde,omitempty"`
	Hasta       *time.Time      `json:"hasta,omitempty"`
	IngresosARS decimal.Decimal `json:"ingresosARS"`
	EgresosARS  decimal.Decimal `json:"egresosARS"`
	SaldoARS    decimal.Decimal `json:"saldoARS"`
	IngresosUSD decimal.Decimal `json:"ingresosUSD"`
	EgresosUSD  decimal.Decimal `json:"egresosUSD"`
	SaldoUSD    decimal.Decimal `json:"saldoUSD"`
}

// ToBalanceResponse converts a domain.CajaBalance to BalanceResponse DTO
func ToBalanceResponse(b *domain.CajaBalance) BalanceResponse {
	return BalanceResponse{
		CajaID:      b.CajaID,
		Desde:       b.Desde,
		Hasta:       b.Hasta,
		IngresosARS: b.IngresosARS,
		EgresosARS:  b.EgresosARS,
		SaldoARS:    b.SaldoARS(),
		IngresosUSD: b.IngresosUSD,
		EgresosUSD:  b.EgresosUSD,
		SaldoUSD:    b.SaldoUSD(),
	}
}
