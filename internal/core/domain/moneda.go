package domain

// Moneda is the currency a comanda, prepago or movimiento is expressed in.
type Moneda string

const (
	MonedaPesos   Moneda = "pesos"
	MonedaDolares Moneda = "dolares"
)

// Valid reports whether m is a supported currency.
func (m Moneda) Valid() bool {
	return m == MonedaPesos || m == MonedaDolares
}

// MetodoPago is the payment type used for a comanda, prepago or movimiento.
type MetodoPago string

const (
	MetodoEfectivo      MetodoPago = "efectivo"
	MetodoTarjeta       MetodoPago = "tarjeta"
	MetodoTransferencia MetodoPago = "transferencia"
	MetodoCheque        MetodoPago = "cheque"
	MetodoQR            MetodoPago = "qr"
	MetodoGiftCard      MetodoPago = "gift_card"
)

// MetodosPago lists every supported payment type, in the order they were introduced.
var MetodosPago = []MetodoPago{
	MetodoEfectivo, MetodoTarjeta, MetodoTransferencia, MetodoCheque, MetodoQR, MetodoGiftCard,
}

// Valid reports whether m is a supported payment type.
func (m MetodoPago) Valid() bool {
	for _, v := range MetodosPago {
		if v == m {
			return true
		}
	}
	return false
}
