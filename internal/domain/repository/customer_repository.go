package repository

import (
	"context"

	"github.com/jhoicas/panaderia-api/internal/domain/entity"
)

// CustomerRepository puerto de persistencia de clientes.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	// List devuelve todos los clientes ordenados por nombre.
	List(ctx context.Context) ([]*entity.Customer, error)
	// ListLatest devuelve los clientes más recientes (para el reporte).
	ListLatest(ctx context.Context, limit int) ([]*entity.Customer, error)
	Count(ctx context.Context) (int64, error)
}
