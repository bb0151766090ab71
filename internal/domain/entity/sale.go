package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago. "cash" es el default; se aceptan otros strings del caller.
const PaymentMethodCash = "cash"

// Sale representa la cabecera de una venta. Inmutable una vez confirmada:
// no hay flujo de edición ni cancelación.
type Sale struct {
	ID            int64
	CustomerID    *int64 // nil = venta de mostrador sin cliente registrado
	CustomerName  string // solo en listados (JOIN con customers); vacío si no hay cliente
	TotalAmount   decimal.Decimal
	PaymentMethod string
	SaleDate      time.Time
}
