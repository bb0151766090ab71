package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// TodayStats agregados de las ventas del día.
type TodayStats struct {
	SaleCount int64
	Revenue   decimal.Decimal
}

// DashboardRepository consultas de solo lectura para el dashboard.
// Siempre va directo a la base: no hay caché de stock en proceso.
type DashboardRepository interface {
	GetTodayStats(ctx context.Context) (*TodayStats, error)
	CountLowStock(ctx context.Context, threshold int) (int64, error)
	CountProducts(ctx context.Context) (int64, error)
	CountCustomers(ctx context.Context) (int64, error)
}
