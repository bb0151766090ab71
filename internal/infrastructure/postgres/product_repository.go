package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/panaderia-api/internal/domain"
	"github.com/jhoicas/panaderia-api/internal/domain/entity"
	"github.com/jhoicas/panaderia-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, description, price, stock, category, image_url, created_at, updated_at`

// Create persiste un nuevo producto y devuelve el ID generado.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) (int64, error) {
	query := `
		INSERT INTO products (name, description, price, stock, category, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.Stock,
		product.Category, product.ImageURL, product.CreatedAt, product.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		if isConstraintViolation(err) {
			return 0, domain.ErrConstraint
		}
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List devuelve todos los productos, más recientes primero.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// ListLowStock devuelve los productos con stock bajo el umbral, más escasos primero.
func (r *ProductRepo) ListLowStock(ctx context.Context, threshold int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE stock < $1 ORDER BY stock ASC`
	rows, err := r.q.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// UpdatePartial aplica una actualización parcial: arma un UPDATE parametrizado
// solo con los campos presentes, más updated_at.
func (r *ProductRepo) UpdatePartial(ctx context.Context, id int64, update repository.ProductUpdate) error {
	if update.IsEmpty() {
		return domain.ErrInvalidInput
	}
	query, args := buildProductUpdate(id, update)
	cmd, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		if isConstraintViolation(err) {
			return domain.ErrConstraint
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return &domain.ProductNotFoundError{ProductID: id}
	}
	return nil
}

// buildProductUpdate traduce el conjunto tipado de campos opcionales a un
// UPDATE parametrizado. El orden de columnas es fijo para que sea determinista.
func buildProductUpdate(id int64, update repository.ProductUpdate) (string, []any) {
	sets := make([]string, 0, 7)
	args := []any{id}
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if update.Name != nil {
		add("name", *update.Name)
	}
	if update.Description != nil {
		add("description", *update.Description)
	}
	if update.Price != nil {
		add("price", *update.Price)
	}
	if update.Stock != nil {
		add("stock", *update.Stock)
	}
	if update.Category != nil {
		add("category", *update.Category)
	}
	if update.ImageURL != nil {
		add("image_url", *update.ImageURL)
	}
	sets = append(sets, "updated_at = now()")
	query := fmt.Sprintf("UPDATE products SET %s WHERE id = $1", strings.Join(sets, ", "))
	return query, args
}

// GetStockForUpdate bloquea la fila del producto (SELECT ... FOR UPDATE) dentro
// de la transacción del caller y devuelve el stock actual. El bloqueo se
// mantiene hasta el Commit/Rollback; otros lockers de la misma fila esperan.
func (r *ProductRepo) GetStockForUpdate(ctx context.Context, id int64) (int, error) {
	var stock int
	err := r.q.QueryRow(ctx, `SELECT stock FROM products WHERE id = $1 FOR UPDATE`, id).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.ProductNotFoundError{ProductID: id}
		}
		return 0, fmt.Errorf("get stock for update: %w", err)
	}
	return stock, nil
}

// UpdateStock escribe el nuevo stock. Se asume la fila ya bloqueada por
// GetStockForUpdate en la misma transacción.
func (r *ProductRepo) UpdateStock(ctx context.Context, id int64, stock int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`,
		id, stock,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return domain.ErrConstraint
		}
		return fmt.Errorf("update stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return &domain.ProductNotFoundError{ProductID: id}
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
		&p.Category, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
