package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto de la panadería.
// Stock se muta solo dentro de transacciones con bloqueo de fila:
// las ventas lo descuentan (rechazando si no alcanza) y los ajustes
// manuales lo corrigen (con piso en cero). Nunca queda negativo confirmado.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, no negativo
	Stock       int
	Category    string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
