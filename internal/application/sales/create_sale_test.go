package sales_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panaderia-api/internal/application/dto"
	"github.com/jhoicas/panaderia-api/internal/application/sales"
	"github.com/jhoicas/panaderia-api/internal/domain"
	"github.com/jhoicas/panaderia-api/internal/domain/entity"
	"github.com/jhoicas/panaderia-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// fakeStore emula la semántica transaccional de la BD: el TxRunner toma un
// snapshot del estado antes de ejecutar el callback y lo restaura si falla.
// Las "transacciones" se serializan con un mutex, igual que lo harían dos
// conexiones compitiendo por los mismos bloqueos de fila.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	mu        sync.Mutex
	stocks    map[int64]int
	nextSale  int64
	sales     map[int64]*entity.Sale
	items     []*entity.SaleItem
	movements []*entity.StockMovement
	ops       []string // traza de operaciones ("lock:N", "item:N"); no se revierte con la tx
}

func newFakeStore(stocks map[int64]int) *fakeStore {
	s := &fakeStore{
		stocks:   make(map[int64]int, len(stocks)),
		nextSale: 1,
		sales:    make(map[int64]*entity.Sale),
	}
	for id, stock := range stocks {
		s.stocks[id] = stock
	}
	return s
}

type storeSnapshot struct {
	stocks    map[int64]int
	nextSale  int64
	saleIDs   []int64
	items     int
	movements int
}

func (s *fakeStore) snapshot() storeSnapshot {
	snap := storeSnapshot{
		stocks:    make(map[int64]int, len(s.stocks)),
		nextSale:  s.nextSale,
		items:     len(s.items),
		movements: len(s.movements),
	}
	for id, stock := range s.stocks {
		snap.stocks[id] = stock
	}
	for id := range s.sales {
		snap.saleIDs = append(snap.saleIDs, id)
	}
	return snap
}

func (s *fakeStore) restore(snap storeSnapshot) {
	s.stocks = snap.stocks
	s.nextSale = snap.nextSale
	keep := make(map[int64]bool, len(snap.saleIDs))
	for _, id := range snap.saleIDs {
		keep[id] = true
	}
	for id := range s.sales {
		if !keep[id] {
			delete(s.sales, id)
		}
	}
	s.items = s.items[:snap.items]
	s.movements = s.movements[:snap.movements]
}

// fakeTxRunner implementa sales.TxRunner con semántica commit/rollback.
type fakeTxRunner struct {
	store *fakeStore
}

func (r *fakeTxRunner) RunSale(_ context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	snap := r.store.snapshot()
	if err := fn(&fakeSaleRepo{store: r.store}, &fakeProductRepo{store: r.store}, &fakeMovementRepo{store: r.store}); err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}

type fakeSaleRepo struct{ store *fakeStore }

func (r *fakeSaleRepo) Create(_ context.Context, sale *entity.Sale) (int64, error) {
	id := r.store.nextSale
	r.store.nextSale++
	sale.ID = id
	r.store.sales[id] = sale
	return id, nil
}

// CreateItem emula la FK sale_items.product_id -> products: insertar una línea
// de un producto inexistente es un rechazo de la base, no un not-found.
func (r *fakeSaleRepo) CreateItem(_ context.Context, item *entity.SaleItem) error {
	r.store.ops = append(r.store.ops, fmt.Sprintf("item:%d", item.ProductID))
	if _, ok := r.store.stocks[item.ProductID]; !ok {
		return domain.ErrConstraint
	}
	r.store.items = append(r.store.items, item)
	return nil
}

func (r *fakeSaleRepo) GetByID(_ context.Context, id int64) (*entity.Sale, error) {
	return r.store.sales[id], nil
}

func (r *fakeSaleRepo) List(_ context.Context) ([]*entity.Sale, error) { return nil, nil }

func (r *fakeSaleRepo) ListItems(_ context.Context, saleID int64) ([]*entity.SaleItem, error) {
	var out []*entity.SaleItem
	for _, item := range r.store.items {
		if item.SaleID == saleID {
			out = append(out, item)
		}
	}
	return out, nil
}

type fakeProductRepo struct{ store *fakeStore }

func (r *fakeProductRepo) GetStockForUpdate(_ context.Context, id int64) (int, error) {
	r.store.ops = append(r.store.ops, fmt.Sprintf("lock:%d", id))
	stock, ok := r.store.stocks[id]
	if !ok {
		return 0, &domain.ProductNotFoundError{ProductID: id}
	}
	return stock, nil
}

func (r *fakeProductRepo) UpdateStock(_ context.Context, id int64, stock int) error {
	if _, ok := r.store.stocks[id]; !ok {
		return &domain.ProductNotFoundError{ProductID: id}
	}
	r.store.stocks[id] = stock
	return nil
}

func (r *fakeProductRepo) Create(_ context.Context, _ *entity.Product) (int64, error) {
	panic("no usado en estos tests")
}
func (r *fakeProductRepo) GetByID(_ context.Context, _ int64) (*entity.Product, error) {
	panic("no usado en estos tests")
}
func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	panic("no usado en estos tests")
}
func (r *fakeProductRepo) ListLowStock(_ context.Context, _ int) ([]*entity.Product, error) {
	panic("no usado en estos tests")
}
func (r *fakeProductRepo) UpdatePartial(_ context.Context, _ int64, _ repository.ProductUpdate) error {
	panic("no usado en estos tests")
}

type fakeMovementRepo struct{ store *fakeStore }

func (r *fakeMovementRepo) Create(_ context.Context, movement *entity.StockMovement) error {
	r.store.movements = append(r.store.movements, movement)
	return nil
}

func (r *fakeMovementRepo) ListByProduct(_ context.Context, _ int64, _ int) ([]*entity.StockMovement, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newUseCase(stocks map[int64]int) (*sales.CreateSaleUseCase, *fakeStore) {
	store := newFakeStore(stocks)
	return sales.NewCreateSaleUseCase(&fakeTxRunner{store: store}), store
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func item(productID int64, qty int, unitPrice string) dto.SaleItemRequest {
	price := dec(unitPrice)
	return dto.SaleItemRequest{
		ProductID: productID,
		Quantity:  qty,
		UnitPrice: price,
		Subtotal:  price.Mul(decimal.NewFromInt(int64(qty))),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_DescuentaStockYPersisteTodo(t *testing.T) {
	uc, store := newUseCase(map[int64]int{1: 10})
	userID := int64(7)

	saleID, err := uc.CreateSale(context.Background(), &userID, dto.CreateSaleRequest{
		TotalAmount: dec("13500.00"),
		Items:       []dto.SaleItemRequest{item(1, 3, "4500.00")},
	})
	require.NoError(t, err)
	require.NotZero(t, saleID)

	assert.Equal(t, 7, store.stocks[1], "stock 10 menos 3 vendidos debe quedar en 7")

	sale := store.sales[saleID]
	require.NotNil(t, sale, "la cabecera debe quedar persistida")
	assert.Equal(t, entity.PaymentMethodCash, sale.PaymentMethod, "sin método explícito se asume efectivo")
	assert.True(t, dec("13500.00").Equal(sale.TotalAmount))

	require.Len(t, store.items, 1)
	assert.Equal(t, saleID, store.items[0].SaleID)

	require.Len(t, store.movements, 1)
	mov := store.movements[0]
	assert.Equal(t, entity.MovementTypeSale, mov.Type)
	assert.Equal(t, -3, mov.Quantity, "el movimiento registra el delta negativo")
	assert.Equal(t, 7, mov.StockAfter)
	assert.NotEmpty(t, mov.TransactionID)
	require.NotNil(t, mov.CreatedBy)
	assert.Equal(t, userID, *mov.CreatedBy)
}

func TestCreateSale_StockInsuficiente_RechazaConDetalle(t *testing.T) {
	uc, store := newUseCase(map[int64]int{1: 2})

	_, err := uc.CreateSale(context.Background(), nil, dto.CreateSaleRequest{
		TotalAmount: dec("13500.00"),
		Items:       []dto.SaleItemRequest{item(1, 3, "4500.00")},
	})

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(1), stockErr.ProductID)
	assert.Equal(t, 3, stockErr.Requested)
	assert.Equal(t, 2, stockErr.Available)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 2, store.stocks[1], "el stock no debe tocarse")
}

// La venta es todo-o-nada: si la segunda de tres líneas no alcanza stock,
// ni la cabecera, ni las líneas, ni los descuentos previos quedan visibles.
func TestCreateSale_FallaIntermedia_ReviertaTodo(t *testing.T) {
	uc, store := newUseCase(map[int64]int{1: 10, 2: 1, 3: 10})

	_, err := uc.CreateSale(context.Background(), nil, dto.CreateSaleRequest{
		TotalAmount: dec("30000.00"),
		Items: []dto.SaleItemRequest{
			item(1, 2, "1000.00"),
			item(2, 5, "1000.00"), // insuficiente: hay 1
			item(3, 2, "1000.00"),
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 10, store.stocks[1], "el descuento del producto 1 debe revertirse")
	assert.Equal(t, 1, store.stocks[2])
	assert.Equal(t, 10, store.stocks[3])
	assert.Empty(t, store.sales, "la cabecera no debe quedar persistida")
	assert.Empty(t, store.items)
	assert.Empty(t, store.movements)
}

// Un producto inexistente debe salir del pase de bloqueo como ProductNotFoundError,
// nunca llegar al INSERT de la línea y manifestarse como violación de FK.
func TestCreateSale_ProductoInexistente_ReviertaTodo(t *testing.T) {
	uc, store := newUseCase(map[int64]int{1: 10})

	_, err := uc.CreateSale(context.Background(), nil, dto.CreateSaleRequest{
		TotalAmount: dec("2000.00"),
		Items: []dto.SaleItemRequest{
			item(1, 2, "500.00"),
			item(99, 1, "1000.00"),
		},
	})

	var nfErr *domain.ProductNotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, int64(99), nfErr.ProductID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, 10, store.stocks[1])
	assert.Empty(t, store.sales)
}

// El INSERT de cada línea toma un lock de validación de FK sobre la fila del
// producto. Para que todos los locks se adquieran en el orden canónico, el
// pase FOR UPDATE debe completarse antes de insertar la primera línea.
func TestCreateSale_BloqueaStockAntesDeInsertarLineas(t *testing.T) {
	uc, store := newUseCase(map[int64]int{1: 10, 2: 10, 3: 10})

	_, err := uc.CreateSale(context.Background(), nil, dto.CreateSaleRequest{
		TotalAmount: dec("3000.00"),
		Items: []dto.SaleItemRequest{
			item(3, 1, "1000.00"),
			item(1, 1, "1000.00"),
			item(2, 1, "1000.00"),
		},
	})
	require.NoError(t, err)

	require.Equal(t, []string{
		"lock:1", "lock:2", "lock:3",
		"item:3", "item:1", "item:2",
	}, store.ops, "todos los locks, en orden ascendente, antes de la primera línea")
}

// Dos ventas concurrentes sobre el mismo producto con stock para una sola:
// exactamente una confirma y la otra recibe stock insuficiente.
func TestCreateSale_VentasConcurrentes_SoloUnaConfirma(t *testing.T) {
	uc, store := newUseCase(map[int64]int{1: 3})

	req := dto.CreateSaleRequest{
		TotalAmount: dec("2000.00"),
		Items:       []dto.SaleItemRequest{item(1, 2, "1000.00")},
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.CreateSale(context.Background(), nil, req)
		}(i)
	}
	wg.Wait()

	var okCount, stockErrCount int
	for _, err := range errs {
		switch {
		case err == nil:
			okCount++
		default:
			require.ErrorIs(t, err, domain.ErrInsufficientStock)
			stockErrCount++
		}
	}
	assert.Equal(t, 1, okCount, "exactamente una venta debe confirmar")
	assert.Equal(t, 1, stockErrCount)
	assert.Equal(t, 1, store.stocks[1], "3 menos los 2 de la venta ganadora")
	assert.Len(t, store.sales, 1)
}

// Líneas que repiten producto se agregan: el stock se verifica contra la suma,
// no línea por línea.
func TestCreateSale_LineasRepetidas_VerificaSumaAgregada(t *testing.T) {
	uc, store := newUseCase(map[int64]int{1: 3})

	_, err := uc.CreateSale(context.Background(), nil, dto.CreateSaleRequest{
		TotalAmount: dec("4000.00"),
		Items: []dto.SaleItemRequest{
			item(1, 2, "1000.00"),
			item(1, 2, "1000.00"), // 2+2=4 > 3 disponible, aunque cada línea cabe
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 3, store.stocks[1])

	// Con stock suficiente las dos líneas se persisten pero el descuento es uno.
	uc, store = newUseCase(map[int64]int{1: 5})
	saleID, err := uc.CreateSale(context.Background(), nil, dto.CreateSaleRequest{
		TotalAmount: dec("4000.00"),
		Items: []dto.SaleItemRequest{
			item(1, 2, "1000.00"),
			item(1, 2, "1000.00"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, store.stocks[1])

	items, _ := (&fakeSaleRepo{store: store}).ListItems(context.Background(), saleID)
	assert.Len(t, items, 2, "cada línea se persiste por separado")
	require.Len(t, store.movements, 1, "un solo movimiento por producto")
	assert.Equal(t, -4, store.movements[0].Quantity)
}

func TestCreateSale_SinLineas_SeAcepta(t *testing.T) {
	uc, store := newUseCase(nil)

	saleID, err := uc.CreateSale(context.Background(), nil, dto.CreateSaleRequest{
		TotalAmount: dec("0"),
	})
	require.NoError(t, err)
	assert.NotZero(t, saleID)
	assert.Len(t, store.sales, 1)
	assert.Empty(t, store.items)
	assert.Empty(t, store.movements)
}

func TestCreateSale_Validaciones(t *testing.T) {
	cases := []struct {
		name  string
		in    dto.CreateSaleRequest
		field string
	}{
		{
			name:  "total negativo",
			in:    dto.CreateSaleRequest{TotalAmount: dec("-1")},
			field: "total_amount",
		},
		{
			name: "product_id cero",
			in: dto.CreateSaleRequest{
				TotalAmount: dec("100"),
				Items:       []dto.SaleItemRequest{{ProductID: 0, Quantity: 1}},
			},
			field: "items.product_id",
		},
		{
			name: "cantidad cero",
			in: dto.CreateSaleRequest{
				TotalAmount: dec("100"),
				Items:       []dto.SaleItemRequest{{ProductID: 1, Quantity: 0}},
			},
			field: "items.quantity",
		},
		{
			name: "precio negativo",
			in: dto.CreateSaleRequest{
				TotalAmount: dec("100"),
				Items:       []dto.SaleItemRequest{{ProductID: 1, Quantity: 1, UnitPrice: dec("-5")}},
			},
			field: "items.unit_price",
		},
		{
			name: "subtotal negativo",
			in: dto.CreateSaleRequest{
				TotalAmount: dec("100"),
				Items:       []dto.SaleItemRequest{{ProductID: 1, Quantity: 1, Subtotal: dec("-5")}},
			},
			field: "items.subtotal",
		},
	}

	uc, store := newUseCase(map[int64]int{1: 100})
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreateSale(context.Background(), nil, tc.in)
			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, store.sales, "ninguna validación fallida debe abrir transacción")
}

// Los subtotales declarados se persisten tal cual: la suma de lo guardado
// coincide con la suma de lo enviado.
func TestCreateSale_SubtotalesSePersistenSinAlterar(t *testing.T) {
	uc, store := newUseCase(map[int64]int{1: 10, 2: 10})

	in := dto.CreateSaleRequest{
		TotalAmount: dec("9999.99"), // el total declarado no se recalcula
		Items: []dto.SaleItemRequest{
			item(1, 3, "1250.50"),
			item(2, 1, "990.00"),
		},
	}
	_, err := uc.CreateSale(context.Background(), nil, in)
	require.NoError(t, err)

	declared := sales.SumSubtotals(in.Items)
	persisted := decimal.Zero
	for _, it := range store.items {
		persisted = persisted.Add(it.Subtotal)
	}
	assert.True(t, declared.Equal(persisted),
		"la suma de subtotales persistidos debe igualar la declarada: %s vs %s", declared, persisted)
}
