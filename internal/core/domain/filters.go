package domain

import "time"

// PersonalFilter narrows personnel listings.
type PersonalFilter struct {
	IncludeInactive bool
	Limit           int
	Offset          int
}

// ClienteFilter narrows cliente listings. Search matches the name case-insensitively.
type ClienteFilter struct {
	Search string
	Limit  int
	Offset int
}

// ComandaFilter narrows comanda listings. Zero values mean "any".
type ComandaFilter struct {
	Desde      *time.Time
	Hasta      *time.Time
	PersonalID string
	CajaID     string
	ClienteID  string
	Estado     EstadoComanda
	Limit      int
	Offset     int
}

// MovimientoFilter narrows movimiento listings of one caja. Results are ordered by
// (fecha DESC, movimiento_id DESC) and AfterFecha/AfterID continue from a previous page.
type MovimientoFilter struct {
	CajaID     string
	Desde      *time.Time
	Hasta      *time.Time
	AfterFecha *time.Time
	AfterID    string
	Limit      int
}

// MovimientoPage is one page of movimientos plus the token for the next page, if any.
type MovimientoPage struct {
	Movimientos   []Movimiento `json:"movimientos"`
	NextPageToken string       `json:"nextPageToken,omitempty"`
}
