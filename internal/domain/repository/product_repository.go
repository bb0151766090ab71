package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/panaderia-api/internal/domain/entity"
)

// ProductUpdate conjunto tipado de campos opcionales para actualización parcial.
// Solo los campos no-nil se incluyen en el UPDATE (el adaptador arma la query
// parametrizada); un request que no menciona un campo no lo toca.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	Category    *string
	ImageURL    *string
}

// IsEmpty indica si no hay ningún campo por actualizar.
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil &&
		u.Stock == nil && u.Category == nil && u.ImageURL == nil
}

// ProductRepository puerto de persistencia de productos.
//
// GetStockForUpdate y UpdateStock solo tienen sentido dentro de una transacción
// (repositorio atado a la tx vía TxRunner): el bloqueo de fila que adquiere
// GetStockForUpdate se libera en el Commit/Rollback de esa transacción.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	ListLowStock(ctx context.Context, threshold int) ([]*entity.Product, error)
	UpdatePartial(ctx context.Context, id int64, update ProductUpdate) error

	// GetStockForUpdate bloquea la fila del producto (SELECT ... FOR UPDATE) y
	// devuelve el stock actual. Retorna *domain.ProductNotFoundError si no existe.
	GetStockForUpdate(ctx context.Context, id int64) (int, error)
	// UpdateStock escribe el nuevo stock; debe llamarse con la fila ya bloqueada.
	UpdateStock(ctx context.Context, id int64, stock int) error
}
