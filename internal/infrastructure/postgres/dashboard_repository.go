package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/panaderia-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para los agregados del dashboard.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador de dashboard.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// GetTodayStats cuenta las ventas del día y suma sus ingresos.
func (r *DashboardRepo) GetTodayStats(ctx context.Context) (*repository.TodayStats, error) {
	const query = `
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM sales
		WHERE sale_date::date = CURRENT_DATE`
	var stats repository.TodayStats
	if err := r.pool.QueryRow(ctx, query).Scan(&stats.SaleCount, &stats.Revenue); err != nil {
		return nil, fmt.Errorf("dashboard.GetTodayStats: %w", err)
	}
	return &stats, nil
}

// CountLowStock cuenta los productos con stock bajo el umbral.
func (r *DashboardRepo) CountLowStock(ctx context.Context, threshold int) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE stock < $1`, threshold).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("dashboard.CountLowStock: %w", err)
	}
	return count, nil
}

// CountProducts cuenta el total de productos.
func (r *DashboardRepo) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("dashboard.CountProducts: %w", err)
	}
	return count, nil
}

// CountCustomers cuenta el total de clientes.
func (r *DashboardRepo) CountCustomers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count); err != nil {
		return 0, fmt.Errorf("dashboard.CountCustomers: %w", err)
	}
	return count, nil
}
