package sales

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/panaderia-api/internal/application/dto"
	"github.com/jhoicas/panaderia-api/internal/domain"
	"github.com/jhoicas/panaderia-api/internal/domain/entity"
	"github.com/jhoicas/panaderia-api/internal/domain/repository"
)

// CreateSaleUseCase registra una venta como unidad atómica: cabecera, líneas y
// descuento de stock con bloqueo de fila (SELECT FOR UPDATE) en una sola
// transacción. Cualquier falla (producto inexistente, stock insuficiente,
// rechazo de la BD) revierte todo; nunca queda una venta parcial visible.
type CreateSaleUseCase struct {
	txRunner TxRunner
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(txRunner TxRunner) *CreateSaleUseCase {
	return &CreateSaleUseCase{txRunner: txRunner}
}

// stockDemand cantidad total pedida de un producto en la venta (las líneas
// que repiten producto se suman para bloquear y descontar una sola vez).
type stockDemand struct {
	productID int64
	quantity  int
}

// CreateSale valida el payload, abre la transacción y confirma la venta.
// Devuelve el ID generado de la venta. userID puede ser nil (venta sin sesión).
//
// total_amount y los subtotales se persisten tal como los declara el caller
// tras validar su forma: unit_price es una foto del precio al momento de la
// venta y no se recalcula contra el precio vigente del producto. Una lista de
// líneas vacía se acepta como venta degenerada sin ítems.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, userID *int64, in dto.CreateSaleRequest) (int64, error) {
	if in.TotalAmount.IsNegative() {
		return 0, &domain.ValidationError{Field: "total_amount"}
	}
	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = entity.PaymentMethodCash
	}
	for _, item := range in.Items {
		switch {
		case item.ProductID <= 0:
			return 0, &domain.ValidationError{Field: "items.product_id"}
		case item.Quantity < 1:
			return 0, &domain.ValidationError{Field: "items.quantity"}
		case item.UnitPrice.IsNegative():
			return 0, &domain.ValidationError{Field: "items.unit_price"}
		case item.Subtotal.IsNegative():
			return 0, &domain.ValidationError{Field: "items.subtotal"}
		}
	}

	demands := lockPlan(in.Items)

	now := time.Now()
	txID := uuid.New().String() // agrupa los movimientos de stock de esta venta
	var saleID int64

	err := uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error {
		sale := &entity.Sale{
			CustomerID:    in.CustomerID,
			TotalAmount:   in.TotalAmount,
			PaymentMethod: paymentMethod,
			SaleDate:      now,
		}
		id, err := saleRepo.Create(ctx, sale)
		if err != nil {
			return err
		}
		saleID = id

		// Bloqueos en orden canónico ascendente de producto, ANTES de insertar
		// las líneas: dos ventas concurrentes sobre los mismos productos piden
		// las filas en el mismo orden y no pueden quedar en deadlock cruzado.
		// El orden importa porque el INSERT de cada línea ya toma un lock de
		// validación de FK sobre la fila del producto; si corriera primero,
		// esos locks quedarían fuera del orden canónico y dos ventas podrían
		// cruzarse al subir a FOR UPDATE. De paso, un producto inexistente
		// sale de aquí como ProductNotFoundError, no como violación de FK.
		for _, d := range demands {
			available, err := productRepo.GetStockForUpdate(ctx, d.productID)
			if err != nil {
				return err
			}
			if available < d.quantity {
				return &domain.InsufficientStockError{
					ProductID: d.productID,
					Requested: d.quantity,
					Available: available,
				}
			}
			newStock := available - d.quantity
			if err := productRepo.UpdateStock(ctx, d.productID, newStock); err != nil {
				return err
			}
			if err := movRepo.Create(ctx, &entity.StockMovement{
				TransactionID: txID,
				ProductID:     d.productID,
				Type:          entity.MovementTypeSale,
				Quantity:      -d.quantity,
				StockAfter:    newStock,
				CreatedBy:     userID,
				CreatedAt:     now,
			}); err != nil {
				return err
			}
		}

		// Líneas en el orden recibido, con las filas de producto ya bloqueadas
		// en exclusiva por esta transacción.
		for _, item := range in.Items {
			if err := saleRepo.CreateItem(ctx, &entity.SaleItem{
				SaleID:    saleID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				Subtotal:  item.Subtotal,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return saleID, nil
}

// lockPlan agrega las cantidades por producto y ordena por ID ascendente.
func lockPlan(items []dto.SaleItemRequest) []stockDemand {
	byProduct := make(map[int64]int, len(items))
	for _, item := range items {
		byProduct[item.ProductID] += item.Quantity
	}
	demands := make([]stockDemand, 0, len(byProduct))
	for productID, quantity := range byProduct {
		demands = append(demands, stockDemand{productID: productID, quantity: quantity})
	}
	sort.Slice(demands, func(i, j int) bool { return demands[i].productID < demands[j].productID })
	return demands
}

// SumSubtotals suma los subtotales declarados de las líneas. El caso de uso no
// fuerza que coincida con total_amount (el total lo declara el caller), pero la
// suma nunca se altera al persistir.
func SumSubtotals(items []dto.SaleItemRequest) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal)
	}
	return total
}
