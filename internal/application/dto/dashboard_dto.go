package dto

import "github.com/shopspring/decimal"

// DashboardResponse agregados para la pantalla principal y el dashboard de reportes.
type DashboardResponse struct {
	TodaySales     int64           `json:"today_sales"`
	TodayRevenue   decimal.Decimal `json:"today_revenue"`
	LowStock       int64           `json:"low_stock"`
	TotalProducts  int64           `json:"total_products"`
	TotalCustomers int64           `json:"total_customers"`
}
