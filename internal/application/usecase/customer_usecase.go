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

// latestCustomersLimit tamaño del listado de clientes recientes en el reporte.
const latestCustomersLimit = 20

// CustomerUseCase CRUD y reporte de clientes.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customerRepo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo}
}

// Create valida y persiste un cliente nuevo.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &domain.ValidationError{Field: "name"}
	}
	customer := &entity.Customer{
		Name:      name,
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Address:   strings.TrimSpace(in.Address),
		CreatedAt: time.Now(),
	}
	id, err := uc.customerRepo.Create(ctx, customer)
	if err != nil {
		return nil, err
	}
	customer.ID = id
	return toCustomerResponse(customer), nil
}

// List devuelve todos los clientes ordenados por nombre.
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := uc.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

// Report arma el reporte: total de clientes y los más recientes.
func (uc *CustomerUseCase) Report(ctx context.Context) (*dto.CustomerReportResponse, error) {
	total, err := uc.customerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	latest, err := uc.customerRepo.ListLatest(ctx, latestCustomersLimit)
	if err != nil {
		return nil, err
	}
	report := &dto.CustomerReportResponse{
		TotalCustomers:  total,
		LatestCustomers: make([]dto.CustomerResponse, 0, len(latest)),
	}
	for _, c := range latest {
		report.LatestCustomers = append(report.LatestCustomers, *toCustomerResponse(c))
	}
	return report, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}
