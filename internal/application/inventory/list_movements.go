package inventory

import (
	"context"

	"github.com/jhoicas/panaderia-api/internal/application/dto"
	"github.com/jhoicas/panaderia-api/internal/domain/repository"
)

const defaultMovementsLimit = 50

// ListMovementsUseCase consulta el historial de movimientos de stock de un
// producto: ventas y ajustes, más recientes primero.
type ListMovementsUseCase struct {
	movRepo repository.StockMovementRepository
}

// NewListMovementsUseCase construye el caso de uso.
func NewListMovementsUseCase(movRepo repository.StockMovementRepository) *ListMovementsUseCase {
	return &ListMovementsUseCase{movRepo: movRepo}
}

// ListByProduct devuelve los últimos movimientos del producto.
func (uc *ListMovementsUseCase) ListByProduct(ctx context.Context, productID int64, limit int) ([]dto.StockMovementResponse, error) {
	if limit <= 0 || limit > 500 {
		limit = defaultMovementsLimit
	}
	movements, err := uc.movRepo.ListByProduct(ctx, productID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.StockMovementResponse{
			ID:            m.ID,
			TransactionID: m.TransactionID,
			ProductID:     m.ProductID,
			Type:          m.Type,
			Quantity:      m.Quantity,
			StockAfter:    m.StockAfter,
			CreatedBy:     m.CreatedBy,
			CreatedAt:     m.CreatedAt,
		})
	}
	return out, nil
}
