package repository

import (
	"context"

	"github.com/jhoicas/panaderia-api/internal/domain/entity"
)

// StockMovementRepository puerto del registro de auditoría de stock.
// Create se llama en la misma transacción que la mutación que documenta.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	ListByProduct(ctx context.Context, productID int64, limit int) ([]*entity.StockMovement, error)
}
