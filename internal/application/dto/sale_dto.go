package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest body para POST /api/sales.
// customer_id es opcional (venta de mostrador). total_amount y los subtotales
// por línea los declara el caller; el backend los persiste tal cual.
type CreateSaleRequest struct {
	CustomerID    *int64            `json:"customer_id"`
	TotalAmount   decimal.Decimal   `json:"total_amount"`
	PaymentMethod string            `json:"payment_method"`
	Items         []SaleItemRequest `json:"items"`
}

// SaleItemRequest línea de venta (producto, cantidad, precio foto, subtotal).
type SaleItemRequest struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CreateSaleResponse respuesta de una venta confirmada.
type CreateSaleResponse struct {
	SaleID int64 `json:"sale_id"`
}

// SaleResponse venta con líneas para GET /api/sales.
type SaleResponse struct {
	ID            int64              `json:"id"`
	CustomerID    *int64             `json:"customer_id"`
	CustomerName  string             `json:"customer_name,omitempty"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	PaymentMethod string             `json:"payment_method"`
	SaleDate      time.Time          `json:"sale_date"`
	Items         []SaleItemResponse `json:"items"`
}

// SaleItemResponse línea en la respuesta.
type SaleItemResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleListResponse listado de ventas.
type SaleListResponse struct {
	Data  []SaleResponse `json:"data"`
	Count int            `json:"count"`
}
