package usecase

import (
	"context"

	"github.com/jhoicas/panaderia-api/internal/application/dto"
	"github.com/jhoicas/panaderia-api/internal/domain/repository"
)

// lowStockThreshold umbral por defecto de stock bajo en el dashboard.
const lowStockThreshold = 10

// DashboardUseCase agregados de la pantalla principal. Solo lectura, sin caché:
// cada consulta va fresca a la base.
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo}
}

// GetDashboard arma los agregados del día: ventas, ingresos, stock bajo y totales.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	today, err := uc.dashboardRepo.GetTodayStats(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.dashboardRepo.CountLowStock(ctx, lowStockThreshold)
	if err != nil {
		return nil, err
	}
	totalProducts, err := uc.dashboardRepo.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	totalCustomers, err := uc.dashboardRepo.CountCustomers(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		TodaySales:     today.SaleCount,
		TodayRevenue:   today.Revenue,
		LowStock:       lowStock,
		TotalProducts:  totalProducts,
		TotalCustomers: totalCustomers,
	}, nil
}
