package repository

import (
	"context"

	"github.com/jhoicas/panaderia-api/internal/domain/entity"
)

// SaleRepository puerto de persistencia de ventas.
// Create y CreateItem se usan siempre dentro de la transacción de venta
// (repositorio atado a la tx); List y GetByID son de solo lectura sobre el pool.
type SaleRepository interface {
	// Create inserta la cabecera y devuelve el ID generado.
	Create(ctx context.Context, sale *entity.Sale) (int64, error)
	CreateItem(ctx context.Context, item *entity.SaleItem) error

	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	// List devuelve las ventas con el nombre del cliente, más recientes primero.
	List(ctx context.Context) ([]*entity.Sale, error)
	// ListItems devuelve las líneas de una venta con el nombre del producto.
	ListItems(ctx context.Context, saleID int64) ([]*entity.SaleItem, error)
}
