package entity

import "github.com/shopspring/decimal"

// SaleItem representa una línea de una venta. Se crea solo junto a su cabecera.
// UnitPrice es una foto del precio al momento de la venta: no cambia si el
// producto cambia de precio después.
type SaleItem struct {
	ID          int64
	SaleID      int64
	ProductID   int64
	ProductName string // solo en listados (JOIN con products)
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}
