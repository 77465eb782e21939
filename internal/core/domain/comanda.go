package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/comandas_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// EstadoComanda is the lifecycle state of a comanda.
type EstadoComanda string

const (
	ComandaPendiente EstadoComanda = "pendiente"
	ComandaPagada    EstadoComanda = "pagada"
	ComandaAnulada   EstadoComanda = "anulada"
)

// Valid reports whether e is a known state.
func (e EstadoComanda) Valid() bool {
	return e == ComandaPendiente || e == ComandaPagada || e == ComandaAnulada
}

// Comanda is a service order for a cliente. Numero is not unique.
type Comanda struct {
	ComandaID    string          `json:"comandaID"`
	Numero       int64           `json:"numero"`
	Fecha        time.Time       `json:"fecha"`
	ClienteID    string          `json:"clienteID"`
	PersonalID   string          `json:"personalID"`
	CajaID       string          `json:"cajaID"`
	Moneda       Moneda          `json:"moneda"`
	ValorDolar   decimal.Decimal `json:"valorDolar"`
	Total        decimal.Decimal `json:"total"`
	Saldo        decimal.Decimal `json:"saldo"`
	MetodoPago   MetodoPago      `json:"metodoPago"`
	Descripcion  string          `json:"descripcion,omitempty"`
	Estado       EstadoComanda   `json:"estado"`
	PrepagoARSID *string         `json:"prepagoARSID,omitempty"`
	PrepagoUSDID *string         `json:"prepagoUSDID,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// Validate checks the fields a comanda needs before being persisted.
func (c *Comanda) Validate() error {
	if !c.Moneda.Valid() {
		return fmt.Errorf("%w: unknown moneda %q", apperrors.ErrValidation, c.Moneda)
	}
	if !c.MetodoPago.Valid() {
		return fmt.Errorf("%w: unknown metodo de pago %q", apperrors.ErrValidation, c.MetodoPago)
	}
	if c.Total.IsNegative() {
		return fmt.Errorf("%w: total cannot be negative", apperrors.ErrValidation)
	}
	if !c.ValorDolar.IsPositive() {
		return fmt.Errorf("%w: valor dolar must be positive", apperrors.ErrValidation)
	}
	return nil
}

// ApplyPrepagos computes Saldo from Total minus the given saved prepagos, each converted
// into the comanda currency at ValorDolar. Saldo never goes below zero. A pendiente
// comanda becomes pagada only when an applied prepago settles it.
func (c *Comanda) ApplyPrepagos(prepagos ...*PrepagoGuardado) {
	rate := CotizacionDolar{Compra: c.ValorDolar, Venta: c.ValorDolar}
	saldo := c.Total
	applied := false
	for _, p := range prepagos {
		if p == nil {
			continue
		}
		applied = true
		saldo = saldo.Sub(rate.Convert(p.Monto, p.Moneda, c.Moneda))
		switch p.Moneda {
		case MonedaPesos:
			c.PrepagoARSID = &p.PrepagoGuardadoID
		case MonedaDolares:
			c.PrepagoUSDID = &p.PrepagoGuardadoID
		}
	}
	if saldo.IsNegative() {
		saldo = decimal.Zero
	}
	c.Saldo = saldo
	if applied && c.Saldo.IsZero() && c.Estado == ComandaPendiente {
		c.Estado = ComandaPagada
	}
}

// ComisionPersonal returns the commission owed to p for this comanda.
func (c *Comanda) ComisionPersonal(p *Personal) decimal.Decimal {
	return p.Comision(c.Total)
}

// ComisionResumen totals the commission a member of the staff earned on pagada comandas.
// Amounts stay in the currency each comanda was charged in.
type ComisionResumen struct {
	PersonalID  string          `json:"personalID"`
	Porcentaje  decimal.Decimal `json:"porcentaje"`
	Desde       *time.Time      `json:"desde,omitempty"`
	Hasta       *time.Time      `json:"hasta,omitempty"`
	Comandas    int             `json:"comandas"`
	TotalARS    decimal.Decimal `json:"totalARS"`
	TotalUSD    decimal.Decimal `json:"totalUSD"`
	ComisionARS decimal.Decimal `json:"comisionARS"`
	ComisionUSD decimal.Decimal `json:"comisionUSD"`
}

// Add counts c towards the summary at p's commission percentage. Only pagada comandas count.
func (r *ComisionResumen) Add(c *Comanda, p *Personal) {
	if c.Estado != ComandaPagada || c.PersonalID != p.PersonalID {
		return
	}
	r.Comandas++
	comision := c.ComisionPersonal(p)
	switch c.Moneda {
	case MonedaPesos:
		r.TotalARS = r.TotalARS.Add(c.Total)
		r.ComisionARS = r.ComisionARS.Add(comision)
	case MonedaDolares:
		r.TotalUSD = r.TotalUSD.Add(c.Total)
		r.ComisionUSD = r.ComisionUSD.Add(comision)
	}
}
