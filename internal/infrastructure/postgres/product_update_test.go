package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/panaderia-api/internal/domain/repository"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// El builder del UPDATE parcial debe generar columnas en orden estable y
// posiciones de parámetros consistentes con los args ($1 siempre es el id).
func TestBuildProductUpdate_TodosLosCampos(t *testing.T) {
	price := decimal.RequireFromString("4500.00")
	query, args := buildProductUpdate(7, repository.ProductUpdate{
		Name:        strPtr("Pan de masa madre"),
		Description: strPtr("hogaza de 750g"),
		Price:       &price,
		Stock:       intPtr(12),
		Category:    strPtr("panes"),
		ImageURL:    strPtr("https://cdn.example/pan.jpg"),
	})

	assert.Equal(t,
		"UPDATE products SET name = $2, description = $3, price = $4, stock = $5, "+
			"category = $6, image_url = $7, updated_at = now() WHERE id = $1",
		query)
	assert.Equal(t, []any{
		int64(7), "Pan de masa madre", "hogaza de 750g", price, 12, "panes",
		"https://cdn.example/pan.jpg",
	}, args)
}

func TestBuildProductUpdate_SoloAlgunosCampos(t *testing.T) {
	query, args := buildProductUpdate(3, repository.ProductUpdate{
		Stock:    intPtr(0),
		Category: strPtr("bollería"),
	})

	assert.Equal(t,
		"UPDATE products SET stock = $2, category = $3, updated_at = now() WHERE id = $1",
		query)
	assert.Equal(t, []any{int64(3), 0, "bollería"}, args)
}

func TestBuildProductUpdate_SinCampos_SoloTocaUpdatedAt(t *testing.T) {
	// El caso de uso rechaza updates vacíos antes de llegar aquí; si llegara,
	// la query solo refrescaría updated_at.
	query, args := buildProductUpdate(1, repository.ProductUpdate{})

	assert.Equal(t, "UPDATE products SET updated_at = now() WHERE id = $1", query)
	assert.Equal(t, []any{int64(1)}, args)
}
