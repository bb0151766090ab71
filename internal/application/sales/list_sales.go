package sales

import (
	"context"

	"github.com/jhoicas/panaderia-api/internal/application/dto"
	"github.com/jhoicas/panaderia-api/internal/domain/entity"
	"github.com/jhoicas/panaderia-api/internal/domain/repository"
)

// ListSalesUseCase listado de ventas con sus líneas (solo lectura).
type ListSalesUseCase struct {
	saleRepo repository.SaleRepository
}

// NewListSalesUseCase construye el caso de uso.
func NewListSalesUseCase(saleRepo repository.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{saleRepo: saleRepo}
}

// ListSales devuelve todas las ventas, más recientes primero, con sus líneas.
func (uc *ListSalesUseCase) ListSales(ctx context.Context) (*dto.SaleListResponse, error) {
	sales, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, sale := range sales {
		items, err := uc.saleRepo.ListItems(ctx, sale.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, toSaleResponse(sale, items))
	}
	return &dto.SaleListResponse{Data: out, Count: len(out)}, nil
}

func toSaleResponse(sale *entity.Sale, items []*entity.SaleItem) dto.SaleResponse {
	resp := dto.SaleResponse{
		ID:            sale.ID,
		CustomerID:    sale.CustomerID,
		CustomerName:  sale.CustomerName,
		TotalAmount:   sale.TotalAmount,
		PaymentMethod: sale.PaymentMethod,
		SaleDate:      sale.SaleDate,
		Items:         make([]dto.SaleItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}
	return resp
}
