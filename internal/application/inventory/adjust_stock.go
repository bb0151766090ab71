package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/panaderia-api/internal/application/dto"
	"github.com/jhoicas/panaderia-api/internal/domain"
	"github.com/jhoicas/panaderia-api/internal/domain/entity"
	"github.com/jhoicas/panaderia-api/internal/domain/repository"
)

// AdjustStockUseCase aplica correcciones manuales de stock (reposición, merma)
// en su propia transacción con bloqueo de fila. A diferencia de la venta, un
// delta que dejaría el stock negativo no falla: se aplica con piso en cero.
// Una venta y un ajuste concurrentes sobre el mismo producto se serializan por
// el mismo bloqueo de fila.
type AdjustStockUseCase struct {
	txRunner TxRunner
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner}
}

// AdjustStock bloquea la fila del producto, escribe max(0, actual+delta) y
// registra el movimiento con el delta efectivamente aplicado. Devuelve el
// stock resultante. userID puede ser nil.
func (uc *AdjustStockUseCase) AdjustStock(ctx context.Context, userID *int64, in dto.UpdateStockRequest) (int, error) {
	if in.ProductID <= 0 {
		return 0, &domain.ValidationError{Field: "product_id"}
	}

	now := time.Now()
	var newStock int

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error {
		current, err := productRepo.GetStockForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		newStock = current + in.StockChange
		if newStock < 0 {
			newStock = 0
		}
		if err := productRepo.UpdateStock(ctx, in.ProductID, newStock); err != nil {
			return err
		}
		return movRepo.Create(ctx, &entity.StockMovement{
			TransactionID: uuid.New().String(),
			ProductID:     in.ProductID,
			Type:          entity.MovementTypeAdjustment,
			Quantity:      newStock - current, // delta aplicado, ya con el piso
			StockAfter:    newStock,
			CreatedBy:     userID,
			CreatedAt:     now,
		})
	})
	if err != nil {
		return 0, err
	}
	return newStock, nil
}
