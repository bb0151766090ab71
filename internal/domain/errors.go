package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConstraint         = errors.New("la base de datos rechazó la escritura")
	ErrStoreUnavailable   = errors.New("base de datos no disponible")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)

// ProductNotFoundError señala que un producto referenciado no existe.
// Envuelve ErrNotFound para que errors.Is siga funcionando en los handlers.
type ProductNotFoundError struct {
	ProductID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("producto %d no encontrado", e.ProductID)
}

func (e *ProductNotFoundError) Unwrap() error { return ErrNotFound }

// InsufficientStockError señala que una venta pediría más unidades de las disponibles.
// Lleva los datos que el caller necesita para armar la respuesta; envuelve ErrInsufficientStock.
type InsufficientStockError struct {
	ProductID int64
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para producto %d: pedido %d, disponible %d",
		e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// ValidationError señala qué campo del request es inválido; envuelve ErrInvalidInput.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("campo inválido: %s", e.Field)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
