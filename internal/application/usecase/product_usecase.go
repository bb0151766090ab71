package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/panaderia-api/internal/application/dto"
	"github.com/jhoicas/panaderia-api/internal/domain"
	"github.com/jhoicas/panaderia-api/internal/domain/entity"
	"github.com/jhoicas/panaderia-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos. El stock solo se crea aquí; sus mutaciones
// posteriores pasan por la venta o por el ajuste manual (transaccionales).
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Create valida y persiste un producto nuevo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &domain.ValidationError{Field: "name"}
	}
	if in.Price.IsNegative() {
		return nil, &domain.ValidationError{Field: "price"}
	}
	if in.Stock < 0 {
		return nil, &domain.ValidationError{Field: "stock"}
	}
	now := time.Now()
	product := &entity.Product{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    strings.TrimSpace(in.Category),
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	id, err := uc.productRepo.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	product.ID = id
	return toProductResponse(product), nil
}

// GetByID obtiene un producto; ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List devuelve todos los productos, más recientes primero.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// ListLowStock devuelve los productos con stock por debajo del umbral.
func (uc *ProductUseCase) ListLowStock(ctx context.Context, threshold int) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.ListLowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// Update aplica una actualización parcial: solo toca los campos presentes.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) error {
	existing, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	update := repository.ProductUpdate{
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return &domain.ValidationError{Field: "name"}
		}
		update.Name = &name
	}
	if in.Category != nil {
		category := strings.TrimSpace(*in.Category)
		update.Category = &category
	}
	if in.Price != nil && in.Price.IsNegative() {
		return &domain.ValidationError{Field: "price"}
	}
	if in.Stock != nil && *in.Stock < 0 {
		return &domain.ValidationError{Field: "stock"}
	}
	if update.IsEmpty() {
		return domain.ErrInvalidInput
	}
	return uc.productRepo.UpdatePartial(ctx, id, update)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductResponses(products []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out
}
