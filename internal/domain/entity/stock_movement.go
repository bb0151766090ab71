package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeSale       = "SALE"       // descuento por venta confirmada
	MovementTypeAdjustment = "ADJUSTMENT" // corrección manual (reposición, merma)
)

// StockMovement es el registro de auditoría de cada mutación de stock confirmada.
// TransactionID agrupa los movimientos de una misma venta (UUID por transacción).
// Quantity es el delta aplicado con signo; StockAfter el stock resultante.
type StockMovement struct {
	ID            int64
	TransactionID string
	ProductID     int64
	Type          string
	Quantity      int
	StockAfter    int
	CreatedBy     *int64 // usuario que originó el movimiento; nil en ventas sin auth
	CreatedAt     time.Time
}
